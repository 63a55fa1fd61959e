// qstate.go
/*
Package qstate constructs quantum density matrices for standard two-party
test states: Bell states, Werner states, phase-mixed states, and
phase-averaged correlated states. It is meant as a source of canonical
example states for other numerical routines.

All constructors are pure functions: every output matrix is freshly
allocated, immutable once returned, and owned solely by the caller. Density
matrices are dense gonum complex matrices; state vectors are plain
[]complex128 slices in the computational basis.
*/
package qstate

import "math/cmplx"

/*
Probabilities returns the Born-rule measurement distribution of a state
vector in the computational basis: |vᵢ|² normalized to sum 1. A zero vector
yields nil.
*/
func Probabilities(v []complex128) []float64 {
	probs := make([]float64, len(v))
	var total float64
	for i, amplitude := range v {
		prob := cmplx.Abs(amplitude)
		prob *= prob
		probs[i] = prob
		total += prob
	}
	if total == 0 {
		return nil
	}
	for i := range probs {
		probs[i] /= total
	}
	return probs
}
