package hydro

import (
	"fmt"
	"math"
)

const (
	thetaIterations = 120
	thetaFloor      = 1e-6

	depthBracketLo   = 0.05
	depthBracketHi   = 5.0
	depthGrowFactor  = 1.35
	depthGrowCap     = 50
	depthDiameterMax = 50.0
	depthIterations  = 110
)

// WettedArea is the circular-segment flow area for wetted angle theta,
// (D^2/8)(theta - sin theta).
func WettedArea(d, theta float64) float64 {
	return d * d / 8.0 * (theta - math.Sin(theta))
}

// WettedPerimeter is the arc length in contact with water, (D/2) theta.
func WettedPerimeter(d, theta float64) float64 {
	return d / 2.0 * theta
}

// PartialFlowDischarge is the Manning discharge of a partially full circular
// pipe at wetted angle theta.
func PartialFlowDischarge(d, n, s, theta float64) (float64, error) {
	if !isFinitePositive(d) || !isFinitePositive(n) || !isFinitePositive(s) {
		return 0, fmt.Errorf("%w: D, n, S must be positive", ErrInvalidInput)
	}
	a := WettedArea(d, theta)
	p := WettedPerimeter(d, theta)
	if !isFinitePositive(a) || !isFinitePositive(p) {
		return 0, fmt.Errorf("%w: wetted section is empty", ErrInvalidInput)
	}
	r := a / p
	return (1.0 / n) * a * math.Pow(r, 2.0/3.0) * math.Sqrt(s), nil
}

// DepthRatio maps wetted angle to flow depth over diameter,
// (1 - cos(theta/2))/2. Bijective on [0, 2pi] <-> [0, 1].
func DepthRatio(theta float64) float64 {
	return (1.0 - math.Cos(theta/2.0)) / 2.0
}

// AngleFromDepthRatio inverts DepthRatio. A ratio at or above 1 means a full
// pipe and returns exactly 2pi; zero or below has no wetted section.
func AngleFromDepthRatio(yd float64) (float64, error) {
	if !isFinite(yd) || yd <= 0 {
		return 0, fmt.Errorf("%w: depth ratio must be in (0, 1]", ErrInvalidInput)
	}
	if yd >= 1 {
		return 2.0 * math.Pi, nil
	}
	x := 1.0 - 2.0*yd
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return 2.0 * math.Acos(x), nil
}

// PartialFlowResult is what SolveThetaForQ reports back.
type PartialFlowResult struct {
	Theta      float64
	DepthRatio float64
	WettedArea float64
	QFull      float64
}

// SolveThetaForQ finds the wetted angle at which a pipe of diameter d
// carries discharge q. A target at or above the full-pipe capacity clamps to
// a full pipe instead of failing: the caller still learns the capacity.
func SolveThetaForQ(d, q, n, s float64) (PartialFlowResult, error) {
	qfull, err := FullFlowDischarge(d, n, s)
	if err != nil {
		return PartialFlowResult{}, err
	}
	if !isFinitePositive(qfull) {
		return PartialFlowResult{}, fmt.Errorf("%w: full-pipe capacity not positive", ErrInvalidInput)
	}
	if q >= qfull {
		return PartialFlowResult{
			Theta:      2.0 * math.Pi,
			DepthRatio: 1.0,
			WettedArea: Area(d),
			QFull:      qfull,
		}, nil
	}
	if !isFinitePositive(q) {
		return PartialFlowResult{}, fmt.Errorf("%w: Q must be positive", ErrInvalidInput)
	}

	lo, hi := thetaFloor, 2.0*math.Pi
	for i := 0; i < thetaIterations; i++ {
		mid := (lo + hi) / 2.0
		qm, err := PartialFlowDischarge(d, n, s, mid)
		if err != nil {
			return PartialFlowResult{}, err
		}
		if qm < q {
			lo = mid
		} else {
			hi = mid
		}
	}
	theta := (lo + hi) / 2.0
	return PartialFlowResult{
		Theta:      theta,
		DepthRatio: DepthRatio(theta),
		WettedArea: WettedArea(d, theta),
		QFull:      qfull,
	}, nil
}

// SolveDiameterAtDepth sizes a pipe so that it carries q at the given design
// depth ratio: bisection on D with the wetted angle held fixed.
func SolveDiameterAtDepth(q, n, s, yd float64) (float64, error) {
	if !isFinitePositive(q) || !isFinitePositive(n) || !isFinitePositive(s) {
		return 0, fmt.Errorf("%w: Q, n, S must be positive", ErrInvalidInput)
	}
	if !isFinite(yd) || yd <= 0 || yd > 1 {
		return 0, fmt.Errorf("%w: depth ratio must be in (0, 1]", ErrInvalidInput)
	}
	theta, err := AngleFromDepthRatio(yd)
	if err != nil {
		return 0, err
	}
	if !isFinitePositive(theta) {
		return 0, fmt.Errorf("%w: wetted angle not positive", ErrInvalidInput)
	}

	lo, hi := depthBracketLo, depthBracketHi
	qhi, err := PartialFlowDischarge(hi, n, s, theta)
	if err != nil {
		return 0, err
	}
	for grow := 0; qhi < q; grow++ {
		if grow >= depthGrowCap || hi > depthDiameterMax {
			return 0, fmt.Errorf("%w: discharge %g m3/s needs D > %g m", ErrOutOfRange, q, hi)
		}
		hi *= depthGrowFactor
		qhi, err = PartialFlowDischarge(hi, n, s, theta)
		if err != nil {
			return 0, err
		}
	}

	for i := 0; i < depthIterations; i++ {
		mid := (lo + hi) / 2.0
		qm, err := PartialFlowDischarge(mid, n, s, theta)
		if err != nil {
			return 0, err
		}
		if qm < q {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2.0, nil
}
