package qstate

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

const matrixTol = 1e-9

func complexNear(a, b complex128, eps float64) bool {
	return cmplx.Abs(a-b) <= eps
}

func matricesNear(a, b *mat.CDense, eps float64) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			if !complexNear(a.At(i, j), b.At(i, j), eps) {
				return false
			}
		}
	}
	return true
}

func isHermitian(m *mat.CDense, eps float64) bool {
	r, c := m.Dims()
	if r != c {
		return false
	}
	return matricesNear(m, Adjoint(m), eps)
}

func isExactlyReal(m *mat.CDense) bool {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if imag(m.At(i, j)) != 0 {
				return false
			}
		}
	}
	return true
}

// quadraticForm returns v†Mv, real for Hermitian M.
func quadraticForm(v []complex128, m *mat.CDense) float64 {
	var sum complex128
	for i := range v {
		for j := range v {
			sum += cmplx.Conj(v[i]) * m.At(i, j) * v[j]
		}
	}
	return real(sum)
}

// probeVectors yields a deterministic spread of unit vectors in dimension d
// for positive semi-definiteness checks.
func probeVectors(d int) [][]complex128 {
	vectors := make([][]complex128, 0, d+2)
	for i := 0; i < d; i++ {
		v := make([]complex128, d)
		v[i] = 1
		vectors = append(vectors, v)
	}
	flat := make([]complex128, d)
	alt := make([]complex128, d)
	amp := complex(1/math.Sqrt(float64(d)), 0)
	for i := 0; i < d; i++ {
		flat[i] = amp
		phase := 2 * math.Pi * float64(i) / float64(d)
		alt[i] = amp * cmplx.Exp(complex(0, phase))
	}
	return append(vectors, flat, alt)
}
