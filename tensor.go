package qstate

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

/*
Kron returns the Kronecker product a ⊗ b of two dense complex matrices.
For a of size (r,c) and b of size (s,t) the result has size (r·s, c·t).
*/
func Kron(a, b *mat.CDense) *mat.CDense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	out := mat.NewCDense(ar*br, ac*bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			aij := a.At(i, j)
			if aij == 0 {
				continue
			}
			for k := 0; k < br; k++ {
				for l := 0; l < bc; l++ {
					out.Set(i*br+k, j*bc+l, aij*b.At(k, l))
				}
			}
		}
	}
	return out
}

/*
KronVec returns the Kronecker product a ⊗ b of two state vectors.
*/
func KronVec(a, b []complex128) []complex128 {
	out := make([]complex128, len(a)*len(b))
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			out[i*len(b)+j] = ai * bj
		}
	}
	return out
}

/*
TensorPow returns the n-fold Kronecker self-product m ⊗ m ⊗ ... ⊗ m.
n must be at least 1; TensorPow(m, 1) is a copy of m. The result of a d×d
input has dimension dⁿ×dⁿ, so memory grows exponentially in n.
*/
func TensorPow(m *mat.CDense, n int) (*mat.CDense, error) {
	if n < 1 {
		return nil, fmt.Errorf("tensor power %d: %w", n, ErrInvalidDimension)
	}
	r, c := m.Dims()
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, m.At(i, j))
		}
	}
	for i := 1; i < n; i++ {
		out = Kron(out, m)
	}
	return out, nil
}
