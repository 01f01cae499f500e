package hydro

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Conversion factors are bit-exact against the international yard/gallon
// definitions; do not "simplify" them.
var (
	flowFactors = map[string]float64{
		"m3s":   1.0,
		"lps":   1.0 / 1000.0,
		"lpm":   1.0 / 60000.0,
		"m3h":   1.0 / 3600.0,
		"usgpm": 0.003785411784 / 60.0,
		"cfs":   0.028316846592,
	}
	velocityFactors = map[string]float64{
		"mps": 1.0,
		"fps": 0.3048,
	}
	lengthFactors = map[string]float64{
		"m":  1.0,
		"mm": 1.0 / 1000.0,
		"in": 0.0254,
		"ft": 0.3048,
		"km": 1000.0,
	}
	slopeFactors = map[string]float64{
		"mpm":      1.0,
		"percent":  1.0 / 100.0,
		"permille": 1.0 / 1000.0,
	}
)

func convert(v float64, unit string, factors map[string]float64) (float64, error) {
	if !isFinite(v) {
		return 0, fmt.Errorf("%w: value not finite", ErrInvalidInput)
	}
	k, ok := factors[unit]
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidInput, unit)
	}
	return v * k, nil
}

// ConvertFlow maps a discharge in the given unit to m3/s. Empty unit means SI.
func ConvertFlow(v float64, unit string) (float64, error) {
	if unit == "" {
		unit = "m3s"
	}
	return convert(v, unit, flowFactors)
}

func ConvertVelocity(v float64, unit string) (float64, error) {
	if unit == "" {
		unit = "mps"
	}
	return convert(v, unit, velocityFactors)
}

func ConvertLength(v float64, unit string) (float64, error) {
	if unit == "" {
		unit = "m"
	}
	return convert(v, unit, lengthFactors)
}

func ConvertSlope(v float64, unit string) (float64, error) {
	if unit == "" {
		unit = "mpm"
	}
	return convert(v, unit, slopeFactors)
}

// ParseValue parses a raw string and converts it in one step. family is one
// of "flow", "velocity", "length", "slope". Used by the spreadsheet importer
// where cells arrive as text.
func ParseValue(s, family, unit string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q does not parse to a finite number", ErrInvalidInput, s)
	}
	switch family {
	case "flow":
		return ConvertFlow(v, unit)
	case "velocity":
		return ConvertVelocity(v, unit)
	case "length":
		return ConvertLength(v, unit)
	case "slope":
		return ConvertSlope(v, unit)
	}
	return 0, fmt.Errorf("%w: unknown unit family %q", ErrInvalidInput, family)
}
