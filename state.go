package qstate

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

/*
Projector returns the outer product vv† of a state vector as a dense complex
matrix. The vector is not normalized first; callers that want a density
matrix pass a unit vector.
*/
func Projector(v []complex128) *mat.CDense {
	d := len(v)
	p := mat.NewCDense(d, d, nil)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			p.Set(i, j, v[i]*cmplx.Conj(v[j]))
		}
	}
	return p
}

/*
Adjoint returns the conjugate transpose of m as a freshly allocated matrix.
*/
func Adjoint(m *mat.CDense) *mat.CDense {
	r, c := m.Dims()
	a := mat.NewCDense(c, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			a.Set(j, i, cmplx.Conj(m.At(i, j)))
		}
	}
	return a
}

/*
Trace returns the trace of a square matrix.
*/
func Trace(m *mat.CDense) complex128 {
	r, _ := m.Dims()
	var t complex128
	for i := 0; i < r; i++ {
		t += m.At(i, i)
	}
	return t
}

// identity returns the d-dimensional identity matrix.
func identity(d int) *mat.CDense {
	m := mat.NewCDense(d, d, nil)
	for i := 0; i < d; i++ {
		m.Set(i, i, 1)
	}
	return m
}
