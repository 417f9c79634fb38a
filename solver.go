package cashflow

import (
	"math"

	"github.com/phuslu/log"
)

const (
	// DefaultGuess is the rate the solver starts from (10%).
	DefaultGuess = 0.1
	// DefaultTolerance is the largest rate step still considered converged.
	DefaultTolerance = 1e-10
	// DefaultMaxIterations bounds the number of Newton steps.
	DefaultMaxIterations = 100

	// residualTolerance bounds |PV| at the root, relative to the series magnitude.
	residualTolerance = 1e-9
)

// Solver finds the rate zeroing the present value of a series using
// Newton-Raphson with an analytic derivative.
type Solver struct {
	Guess         float64     // initial rate, as a fraction
	Tolerance     float64     // convergence threshold on the rate step
	MaxIterations int         // maximum number of Newton steps
	Logger        *log.Logger // optional, logs every step at debug level
}

// DefaultSolver returns a Solver seeded at 10% with the default tolerance and iteration bound.
func DefaultSolver() Solver {
	return Solver{
		Guess:         DefaultGuess,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Solution is a converged XIRR solve.
type Solution struct {
	Rate       float64 // as a fraction, 0.05 for 5%
	Iterations int
	Residual   float64 // present value at Rate
}

// SolveXIRR solves the XIRR of s with the DefaultSolver.
func SolveXIRR(s Series) (Solution, error) {
	return DefaultSolver().Solve(s)
}

// Solve returns a rate r such that PresentValue(r, s) is zero.
//
// The equation may have several roots, Solve returns the one Newton's method
// reaches from s.Guess. It returns a *NonConvergenceError if no root is
// reached within MaxIterations steps.
func (sv Solver) Solve(s Series) (Solution, error) {
	if s.Len() == 0 {
		return Solution{}, configErrorf("empty cashflow series")
	}
	if !s.HasSignChange() {
		return Solution{}, configErrorf("XIRR needs at least one positive and one negative cashflow")
	}
	if sv.MaxIterations < 1 {
		return Solution{}, configErrorf("solver max iterations must be positive, got %d", sv.MaxIterations)
	}
	if !(sv.Tolerance > 0) {
		return Solution{}, configErrorf("solver tolerance must be positive, got %v", sv.Tolerance)
	}
	if math.IsNaN(sv.Guess) || sv.Guess <= -1 {
		return Solution{}, domainErrorf("solver guess %v must be greater than -1", sv.Guess)
	}

	limit := residualTolerance * s.magnitude()
	rate := sv.Guess
	var value float64
	for i := 1; i <= sv.MaxIterations; i++ {
		var slope float64
		value, slope = valueAndSlope(rate, s)
		if sv.Logger != nil {
			sv.Logger.Debug().Int("iteration", i).Float64("rate", rate).Float64("value", value).Float64("slope", slope).Msg("newton step")
		}
		if value == 0 {
			return Solution{Rate: rate, Iterations: i, Residual: value}, nil
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return Solution{}, &NonConvergenceError{Iterations: i, Rate: rate, Residual: value, Reason: "present value is not finite"}
		}
		if slope == 0 || math.IsNaN(slope) || math.IsInf(slope, 0) {
			return Solution{}, &NonConvergenceError{Iterations: i, Rate: rate, Residual: value, Reason: "flat present value curve"}
		}

		next := rate - value/slope
		if next <= -1 {
			// stay in the domain: move half way towards -1 instead.
			next = (rate - 1) / 2
		}
		step := math.Abs(next - rate)
		rate = next
		if step <= sv.Tolerance*(1+math.Abs(rate)) {
			value, _ = valueAndSlope(rate, s)
			if math.Abs(value) > limit {
				return Solution{}, &NonConvergenceError{Iterations: i, Rate: rate, Residual: value, Reason: "stalled away from a root"}
			}
			if sv.Logger != nil {
				sv.Logger.Debug().Int("iterations", i).Float64("rate", rate).Float64("residual", value).Msg("converged")
			}
			return Solution{Rate: rate, Iterations: i, Residual: value}, nil
		}
	}
	return Solution{}, &NonConvergenceError{Iterations: sv.MaxIterations, Rate: rate, Residual: value, Reason: "iteration limit reached"}
}
