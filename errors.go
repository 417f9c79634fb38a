package cashflow

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration reports inconsistent or missing user input. Nothing is computed.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrNumericDomain reports a rate for which compounding is undefined (rate <= -100%).
	ErrNumericDomain = errors.New("rate outside numeric domain")
	// ErrNonConvergence reports a root-finder that did not reach its tolerance.
	ErrNonConvergence = errors.New("solver did not converge")
)

// NonConvergenceError describes a failed XIRR solve.
type NonConvergenceError struct {
	Iterations int     // number of iterations performed
	Rate       float64 // last iterate
	Residual   float64 // present value at the last iterate
	Reason     string
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("%v after %d iterations (rate %g, residual %g): %s", ErrNonConvergence, e.Iterations, e.Rate, e.Residual, e.Reason)
}

// Unwrap makes errors.Is(err, ErrNonConvergence) true.
func (e *NonConvergenceError) Unwrap() error { return ErrNonConvergence }

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

func domainErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNumericDomain, fmt.Sprintf(format, args...))
}
