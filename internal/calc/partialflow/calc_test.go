package partialflow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_DepthMode_HalfFull(t *testing.T) {
	// half the full-pipe capacity runs at exactly half depth
	res, err := Calculate(Input{
		Mode:      ModeDepth,
		Diameter:  0.3,
		FlowRate:  0.04835037926677806,
		Roughness: 0.013,
		Slope:     0.01,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, res.DepthRatio, 1e-6)
	assert.InDelta(t, math.Pi, res.ThetaRad, 1e-4)
	assert.InDelta(t, 50.0, res.CapacityUsedPct, 1e-6)
	assert.InDelta(t, 0.09670075853355611, res.CapacityM3S, 1e-12)
	assert.False(t, res.AtCapacity)
}

func TestCalculate_DepthMode_OverCapacityClamps(t *testing.T) {
	res, err := Calculate(Input{
		Mode:      ModeDepth,
		Diameter:  0.3,
		FlowRate:  1.0,
		Roughness: 0.013,
		Slope:     0.01,
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.DepthRatio)
	assert.Equal(t, 2*math.Pi, res.ThetaRad)
	assert.True(t, res.AtCapacity)
	assert.Greater(t, res.CapacityUsedPct, 100.0)
}

func TestCalculate_SizeMode(t *testing.T) {
	res, err := Calculate(Input{
		Mode:       ModeSize,
		FlowRate:   0.13428312385103033,
		Roughness:  0.013,
		Slope:      5,
		SlopeUnit:  "permille",
		DepthRatio: 0.75,
	})
	require.NoError(t, err)
	assert.InEpsilon(t, 0.4, res.DiameterM, 1e-4)
	assert.InEpsilon(t, 400.0, res.DiameterMM, 1e-4)
	assert.Equal(t, 0.75, res.DepthRatio)
}

func TestCalculate_Invalid(t *testing.T) {
	_, err := Calculate(Input{Mode: ModeDepth, Diameter: 0.3, FlowRate: 0, Slope: 0.01})
	assert.Error(t, err)

	_, err = Calculate(Input{Mode: ModeDepth, Diameter: 0, FlowRate: 0.01, Slope: 0.01})
	assert.Error(t, err)

	_, err = Calculate(Input{Mode: ModeSize, FlowRate: 0.01, Slope: 0.01, DepthRatio: 0})
	assert.Error(t, err)

	_, err = Calculate(Input{Mode: "wrong", Diameter: 0.3, FlowRate: 0.01, Slope: 0.01})
	assert.Error(t, err)
}
