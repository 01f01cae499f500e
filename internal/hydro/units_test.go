package hydro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertFlow(t *testing.T) {
	cases := []struct {
		unit string
		in   float64
		want float64
	}{
		{"m3s", 0.25, 0.25},
		{"", 0.25, 0.25},
		{"lps", 100, 0.1},
		{"lpm", 60000, 1.0},
		{"m3h", 3600, 1.0},
		{"usgpm", 500, 0.0315450982},
		{"cfs", 2, 0.056633693184},
	}
	for _, tc := range cases {
		got, err := ConvertFlow(tc.in, tc.unit)
		require.NoError(t, err, "unit %q", tc.unit)
		assert.InDelta(t, tc.want, got, 1e-15, "unit %q", tc.unit)
	}
}

func TestConvertVelocity(t *testing.T) {
	got, err := ConvertVelocity(10, "fps")
	require.NoError(t, err)
	assert.InDelta(t, 3.048, got, 1e-15)

	got, err = ConvertVelocity(1.5, "mps")
	require.NoError(t, err)
	assert.Equal(t, 1.5, got)
}

func TestConvertLength(t *testing.T) {
	cases := []struct {
		unit string
		in   float64
		want float64
	}{
		{"mm", 250, 0.25},
		{"in", 10, 0.254},
		{"ft", 3, 0.9144},
		{"km", 1.2, 1200},
		{"m", 7, 7},
	}
	for _, tc := range cases {
		got, err := ConvertLength(tc.in, tc.unit)
		require.NoError(t, err, "unit %q", tc.unit)
		assert.InDelta(t, tc.want, got, 1e-12, "unit %q", tc.unit)
	}
}

func TestConvertSlope(t *testing.T) {
	got, err := ConvertSlope(2, "percent")
	require.NoError(t, err)
	assert.InDelta(t, 0.02, got, 1e-15)

	got, err = ConvertSlope(5, "permille")
	require.NoError(t, err)
	assert.InDelta(t, 0.005, got, 1e-15)

	got, err = ConvertSlope(0.004, "mpm")
	require.NoError(t, err)
	assert.Equal(t, 0.004, got)
}

func TestConvert_Invalid(t *testing.T) {
	_, err := ConvertFlow(1, "gallons")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ConvertLength(math.NaN(), "m")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ConvertSlope(math.Inf(1), "percent")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseValue(t *testing.T) {
	got, err := ParseValue(" 100 ", "flow", "lps")
	require.NoError(t, err)
	assert.InDelta(t, 0.1, got, 1e-15)

	got, err = ParseValue("2", "slope", "percent")
	require.NoError(t, err)
	assert.InDelta(t, 0.02, got, 1e-15)

	_, err = ParseValue("abc", "flow", "lps")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParseValue("1.5", "pressure", "bar")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
