package pressure

import (
	"testing"

	hydro "Hydraulics/internal/hydro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_KnownDiameter(t *testing.T) {
	res, err := Calculate(Input{
		FlowRate:      0.02,
		FlowUnit:      "m3s",
		Diameter:      0.2,
		DiameterUnit:  "m",
		Length:        1000,
		LengthUnit:    "m",
		HWCoefficient: 130,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.6366197723675813, res.VelocityMS, 1e-9)
	assert.InDelta(t, 2.351428480362509, res.FrictionHeadM, 1e-9)
	assert.InDelta(t, 2.351428480362509, res.TotalHeadM, 1e-9)
	assert.Equal(t, 200.0, res.DiameterDisplay)
}

func TestCalculate_FullPumpHead(t *testing.T) {
	res, err := Calculate(Input{
		FlowRate:      0.02,
		Diameter:      0.2,
		Length:        1000,
		HWCoefficient: 130,
		Fittings: []hydro.Fitting{
			{Name: "elbow 90", Quantity: 4, KFactor: 0.9},
			{Name: "check valve", Quantity: 1, KFactor: 1.4},
		},
		SourceElevationM:    100,
		HighPointElevationM: 112.5,
	})
	require.NoError(t, err)
	assert.InDelta(t, 2.351428480362509, res.FrictionHeadM, 1e-9)
	assert.InDelta(t, 0.10331885367820584, res.MinorLossM, 1e-9)
	assert.InDelta(t, 12.5, res.StaticHeadM, 1e-12)
	assert.InDelta(t, 14.954747334040714, res.TotalHeadM, 1e-9)
}

func TestCalculate_SizesDiameterForVelocity(t *testing.T) {
	res, err := Calculate(Input{
		FlowRate:       50,
		FlowUnit:       "lps",
		TargetVelocity: 1.5,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.20601290774570113, res.DiameterM, 1e-9)
	assert.InDelta(t, 1.5, res.VelocityMS, 1e-9)
	assert.Zero(t, res.FrictionHeadM)
}

func TestCalculate_ParallelPipesShareFlow(t *testing.T) {
	single, err := Calculate(Input{
		FlowRate:      0.02,
		Diameter:      0.2,
		Length:        1000,
		HWCoefficient: 130,
	})
	require.NoError(t, err)

	// two identical pipes carrying double the total: same per-pipe flow,
	// same system headloss
	twin, err := Calculate(Input{
		FlowRate:      0.04,
		PipeCount:     2,
		Diameter:      0.2,
		Length:        1000,
		HWCoefficient: 130,
	})
	require.NoError(t, err)
	assert.InDelta(t, single.PerPipeFlowM3S, twin.PerPipeFlowM3S, 1e-15)
	assert.InDelta(t, single.FrictionHeadM, twin.FrictionHeadM, 1e-12)
}

func TestCalculate_MinorLossPercentMode(t *testing.T) {
	res, err := Calculate(Input{
		FlowRate:         0.02,
		Diameter:         0.2,
		Length:           1000,
		HWCoefficient:    130,
		MinorLossPercent: 10,
	})
	require.NoError(t, err)
	assert.InDelta(t, res.FrictionHeadM*0.10, res.MinorLossM, 1e-12)
}

func TestCalculate_StaticHeadNeverNegative(t *testing.T) {
	res, err := Calculate(Input{
		FlowRate:            0.02,
		Diameter:            0.2,
		SourceElevationM:    120,
		HighPointElevationM: 100,
	})
	require.NoError(t, err)
	assert.Zero(t, res.StaticHeadM)
}

func TestCalculate_Invalid(t *testing.T) {
	_, err := Calculate(Input{})
	assert.Error(t, err)

	_, err = Calculate(Input{FlowRate: -5, Diameter: 0.2})
	assert.Error(t, err)

	// flow given but neither diameter nor velocity
	_, err = Calculate(Input{FlowRate: 0.02})
	assert.Error(t, err)

	_, err = Calculate(Input{FlowRate: 0.02, FlowUnit: "buckets", Diameter: 0.2})
	assert.Error(t, err)
}
