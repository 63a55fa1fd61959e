package qstate

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

/*
PhaseState returns the two-qubit density matrix

	p · |ψ(φ)⟩⟨ψ(φ)| + (1−p) · |00⟩⟨00|

where |ψ(φ)⟩ = (|01⟩ + e^{iφ}|10⟩)/√2 in the computational basis ordering
00, 01, 10, 11. p must lie in [0, 1]; φ is any real and is periodic with
period 2π.

For φ exactly 0 or exactly π the amplitude e^{iφ} is ±1 and the matrix is
built with purely real arithmetic, so these two calls carry no spurious
imaginary residue.
*/
func PhaseState(p, phi float64) (*mat.CDense, error) {
	if err := checkProbability(p); err != nil {
		return nil, fmt.Errorf("phase state: %w", err)
	}
	return phaseState(p, phi), nil
}

/*
PhaseStateDefault is PhaseState at φ = 0, the most common call.
*/
func PhaseStateDefault(p float64) (*mat.CDense, error) {
	return PhaseState(p, 0)
}

// phaseState builds the matrix without re-validating p. The 1/2
// normalization of |ψ(φ)⟩ is folded into the projector scale so the φ=0 and
// φ=π entries come out as exact products of p with machine halves.
func phaseState(p, phi float64) *mat.CDense {
	var amp complex128
	switch phi {
	case 0:
		amp = 1
	case math.Pi:
		amp = -1
	default:
		amp = cmplx.Exp(complex(0, phi))
	}
	// |01⟩ + e^{iφ}|10⟩, unnormalized.
	u := []complex128{0, 1, amp, 0}

	rho := mat.NewCDense(4, 4, nil)
	half := complex(p/2, 0)
	for i := 1; i <= 2; i++ {
		for j := 1; j <= 2; j++ {
			rho.Set(i, j, half*u[i]*cmplx.Conj(u[j]))
		}
	}
	rho.Set(0, 0, complex(1-p, 0))
	return rho
}

/*
PhaseMix returns the even two-term mixture of the φ=0 and φ=π phase states,

	½ · PhaseState(p, 0) + ½ · PhaseState(p, π),

the discrete counterpart of the continuous phase average. The result is an
exactly real matrix.
*/
func PhaseMix(p float64) (*mat.CDense, error) {
	if err := checkProbability(p); err != nil {
		return nil, fmt.Errorf("phase mix: %w", err)
	}
	a := phaseState(p, 0)
	b := phaseState(p, math.Pi)
	out := mat.NewCDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.Set(i, j, (a.At(i, j)+b.At(i, j))/2)
		}
	}
	return out, nil
}
