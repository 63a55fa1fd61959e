package qstate

import "errors"

var (
	// ErrInvalidProbability is returned when a mixing probability lies
	// outside [0, 1]. It is raised before any matrix is allocated.
	ErrInvalidProbability = errors.New("probability must be in [0, 1]")

	// ErrInvalidCopyCount is returned by the multi-copy generator when the
	// requested copy count is not greater than one. A single copy is the
	// job of AveragedPhaseState, not of the copies variant.
	ErrInvalidCopyCount = errors.New("copy count must be greater than 1")

	// ErrInvalidDimension is returned by the primitive constructors when a
	// dimension or index is out of range.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrQuadratureDidNotConverge is returned by AdaptiveIntegrate when the
	// evaluation budget runs out before the tolerance is met. The best
	// estimate so far is still returned alongside it.
	ErrQuadratureDidNotConverge = errors.New("quadrature did not converge within the evaluation budget")
)
