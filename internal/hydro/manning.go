package hydro

import (
	"fmt"
	"math"
)

// Full-flow bracket and growth parameters. The iteration count is fixed on
// purpose: 80 halvings of a metre-scale bracket land far below engineering
// precision and the loop always terminates in bounded time.
const (
	fullFlowBracketLo   = 0.01
	fullFlowBracketHi   = 5.0
	fullFlowGrowFactor  = 1.4
	fullFlowGrowCap     = 40
	fullFlowDiameterMax = 50.0
	fullFlowIterations  = 80
)

// FullFlowDischarge is the Manning discharge of a circular pipe running
// full: Q = (1/n) A (D/4)^(2/3) sqrt(S).
func FullFlowDischarge(d, n, s float64) (float64, error) {
	if !isFinitePositive(d) || !isFinitePositive(n) || !isFinitePositive(s) {
		return 0, fmt.Errorf("%w: D, n, S must be positive", ErrInvalidInput)
	}
	return (1.0 / n) * Area(d) * math.Pow(d/4.0, 2.0/3.0) * math.Sqrt(s), nil
}

// DiameterForFullFlowDischarge inverts FullFlowDischarge by bisection on D,
// relying on discharge being strictly increasing in diameter.
func DiameterForFullFlowDischarge(q, n, s float64) (float64, error) {
	if !isFinitePositive(q) || !isFinitePositive(n) || !isFinitePositive(s) {
		return 0, fmt.Errorf("%w: Q, n, S must be positive", ErrInvalidInput)
	}

	lo, hi := fullFlowBracketLo, fullFlowBracketHi
	qhi, err := FullFlowDischarge(hi, n, s)
	if err != nil {
		return 0, err
	}
	for grow := 0; qhi < q; grow++ {
		if grow >= fullFlowGrowCap || hi > fullFlowDiameterMax {
			return 0, fmt.Errorf("%w: discharge %g m3/s needs D > %g m", ErrOutOfRange, q, hi)
		}
		hi *= fullFlowGrowFactor
		qhi, err = FullFlowDischarge(hi, n, s)
		if err != nil {
			return 0, err
		}
	}

	for i := 0; i < fullFlowIterations; i++ {
		mid := (lo + hi) / 2.0
		qm, err := FullFlowDischarge(mid, n, s)
		if err != nil {
			return 0, err
		}
		if !isFinite(qm) {
			return 0, fmt.Errorf("%w: discharge not finite at D=%g", ErrInvalidInput, mid)
		}
		if qm < q {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2.0, nil
}
