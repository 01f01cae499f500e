// Package hydro is the numerical core of the service: pure hydraulic
// formulas and bisection solvers over circular conduits. Every function is
// stateless; invalid input comes back as an error, never NaN.
package hydro

import (
	"errors"
	"fmt"
	"math"
)

// Gravity is standard gravitational acceleration, m/s2.
const Gravity = 9.80665

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrOutOfRange means a bracket-growth loop exhausted its attempts
	// without covering the target discharge.
	ErrOutOfRange = errors.New("target outside search range")
)

// Fitting is one row of the caller-maintained minor-loss table.
type Fitting struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	KFactor  float64 `json:"k_factor"`
}

// Area returns the full cross-section area of a circular pipe.
func Area(d float64) float64 {
	return math.Pi * d * d / 4.0
}

func VelocityFromQD(q, d float64) (float64, error) {
	a := Area(d)
	if !isFinitePositive(a) {
		return 0, fmt.Errorf("%w: area must be positive", ErrInvalidInput)
	}
	v := q / a
	if !isFinite(v) {
		return 0, fmt.Errorf("%w: velocity not finite", ErrInvalidInput)
	}
	return v, nil
}

func DiameterFromQV(q, v float64) (float64, error) {
	if !isFinitePositive(q) || !isFinitePositive(v) {
		return 0, fmt.Errorf("%w: Q and V must be positive", ErrInvalidInput)
	}
	return math.Sqrt(4.0 * q / (math.Pi * v)), nil
}

// HazenWilliamsHeadloss returns the friction loss over one conduit, meters.
// hf = 10.67 L Q^1.852 / (C^1.852 D^4.871), SI units throughout.
func HazenWilliamsHeadloss(l, q, c, d float64) (float64, error) {
	if !isFinitePositive(l) || !isFinitePositive(q) || !isFinitePositive(c) || !isFinitePositive(d) {
		return 0, fmt.Errorf("%w: L, Q, C, D must be positive", ErrInvalidInput)
	}
	return 10.67 * l * math.Pow(q, 1.852) / (math.Pow(c, 1.852) * math.Pow(d, 4.871)), nil
}

// SumK sums quantity*K over the fitting table. Entries with non-finite or
// negative fields are skipped rather than poisoning the sum.
func SumK(fittings []Fitting) float64 {
	var sum float64
	for _, f := range fittings {
		if f.Quantity <= 0 || f.KFactor <= 0 {
			continue
		}
		if math.IsNaN(f.Quantity) || math.IsNaN(f.KFactor) ||
			math.IsInf(f.Quantity, 0) || math.IsInf(f.KFactor, 0) {
			continue
		}
		sum += f.Quantity * f.KFactor
	}
	return sum
}

// MinorLossFromK returns the fitting loss sumK*V^2/(2g), meters.
func MinorLossFromK(sumK, v float64) (float64, error) {
	if sumK < 0 || math.IsNaN(sumK) || math.IsInf(sumK, 0) ||
		math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: bad minor loss terms", ErrInvalidInput)
	}
	return sumK * v * v / (2.0 * Gravity), nil
}

// MinorLossPercent treats minor losses as a percentage of the friction loss.
func MinorLossPercent(friction, percent float64) (float64, error) {
	if percent < 0 || !isFinite(friction) || !isFinite(percent) {
		return 0, fmt.Errorf("%w: bad minor loss terms", ErrInvalidInput)
	}
	return friction * percent / 100.0, nil
}

// StaticHeadFromElevations is max(0, highPoint-source): a downhill run needs
// no lift, so the static term never goes negative.
func StaticHeadFromElevations(source, highPoint float64) float64 {
	h := highPoint - source
	if h < 0 || math.IsNaN(h) {
		return 0
	}
	return h
}

// RequiredPumpHead sums friction, minor and static head. Any non-finite term
// counts as zero in the sum; if every term is invalid the total is too.
func RequiredPumpHead(friction, minor, static float64) (float64, error) {
	valid := 0
	total := 0.0
	for _, h := range [3]float64{friction, minor, static} {
		if isFinite(h) {
			total += h
			valid++
		}
	}
	if valid == 0 {
		return 0, fmt.Errorf("%w: no valid head terms", ErrInvalidInput)
	}
	return total, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isFinitePositive(v float64) bool {
	return isFinite(v) && v > 0
}
