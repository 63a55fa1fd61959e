// average.go
package qstate

import (
	"fmt"
	"math"

	"github.com/theapemachine/errnie"
	"gonum.org/v1/gonum/mat"
)

/*
AveragedPhaseState returns the joint state of two phase-correlated pair
systems sharing one uniformly drawn phase,

	(1/2π) ∫₀²π PhaseState(p, φ) ⊗ PhaseState(p, φ) dφ,

as a 16×16 density matrix. The integral is evaluated with the default
adaptive quadrature budget; only its real part is kept, since the imaginary
part vanishes by symmetry over a full period.
*/
func AveragedPhaseState(p float64) (*mat.CDense, error) {
	if err := checkProbability(p); err != nil {
		return nil, fmt.Errorf("averaged phase state: %w", err)
	}
	out, err := averagedTensorPower(p, 2)
	if err != nil {
		return nil, fmt.Errorf("averaged phase state: %w", err)
	}
	return out, nil
}

/*
AveragedPhaseStateCopies returns n correlated copies of the phase state, all
sharing one uniformly drawn phase,

	(1/2π) ∫₀²π PhaseState(p, φ)^{⊗n} dφ,

as a 4ⁿ×4ⁿ density matrix. n must be greater than 1; for a single copy use
AveragedPhaseState. Output memory grows as 16ⁿ complex entries — see
CopiesSize before committing to a large n.
*/
func AveragedPhaseStateCopies(p float64, n int) (*mat.CDense, error) {
	if err := checkProbability(p); err != nil {
		return nil, fmt.Errorf("averaged phase state, %d copies: %w", n, err)
	}
	if n <= 1 {
		return nil, fmt.Errorf("averaged phase state, %d copies: %w", n, ErrInvalidCopyCount)
	}
	out, err := averagedTensorPower(p, n)
	if err != nil {
		return nil, fmt.Errorf("averaged phase state, %d copies: %w", n, err)
	}
	return out, nil
}

// averagedTensorPower integrates (1/2π)·PhaseState(p, φ)^{⊗n} over one full
// period. p has already been validated.
func averagedTensorPower(p float64, n int) (*mat.CDense, error) {
	dim := 1
	for i := 0; i < n; i++ {
		dim *= 4
	}
	weight := complex(1/(2*math.Pi), 0)

	f := func(phi float64) []complex128 {
		rho := phaseState(p, phi)
		pow := rho
		for i := 1; i < n; i++ {
			pow = Kron(pow, rho)
		}
		out := make([]complex128, dim*dim)
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				out[i*dim+j] = weight * pow.At(i, j)
			}
		}
		return out
	}

	cfg := NewConfig()
	res, err := AdaptiveIntegrate(f, 0, 2*math.Pi, cfg)
	if err != nil {
		return nil, err
	}
	if res.ImagResidue > cfg.RelTol*cfg.Norm(res.Value) {
		errnie.Info(
			"phase average discarding imaginary residue %v against estimate norm %v",
			res.ImagResidue,
			cfg.Norm(res.Value),
		)
	}

	out := mat.NewCDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			out.Set(i, j, complex(real(res.Value[i*dim+j]), 0))
		}
	}
	return out, nil
}

/*
CopiesSize reports the output dimension 4ⁿ of AveragedPhaseStateCopies and
its memory footprint in bytes, without allocating anything. It fails with
ErrInvalidCopyCount for n ≤ 1 and with ErrInvalidDimension when the footprint
does not fit in a uint64.
*/
func CopiesSize(n int) (dim int, bytes uint64, err error) {
	if n <= 1 {
		return 0, 0, fmt.Errorf("copies size for n = %d: %w", n, ErrInvalidCopyCount)
	}
	// dim² complex128 entries at 16 bytes each: 2^(4n+4) bytes total.
	if 4*n+4 >= 64 {
		return 0, 0, fmt.Errorf("copies size for n = %d overflows: %w", n, ErrInvalidDimension)
	}
	dim = 1 << (2 * n)
	bytes = uint64(1) << (4*n + 4)
	return dim, bytes, nil
}
