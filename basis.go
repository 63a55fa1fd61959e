package qstate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

/*
BasisVector returns the index-th standard computational basis vector of the
given dimension: all entries zero except a 1 at index.
*/
func BasisVector(dim, index int) ([]complex128, error) {
	if dim < 1 {
		return nil, fmt.Errorf("basis vector of dimension %d: %w", dim, ErrInvalidDimension)
	}
	if index < 0 || index >= dim {
		return nil, fmt.Errorf("basis index %d out of range [0, %d): %w", index, dim, ErrInvalidDimension)
	}
	v := make([]complex128, dim)
	v[index] = 1
	return v, nil
}

/*
MaxEntangledVector returns the maximally entangled state vector on two
d-dimensional parties,

	(1/√d) · Σᵢ |i⟩⊗|i⟩,

as a vector of dimension d².
*/
func MaxEntangledVector(d int) ([]complex128, error) {
	if d < 1 {
		return nil, fmt.Errorf("maximally entangled vector of local dimension %d: %w", d, ErrInvalidDimension)
	}
	v := make([]complex128, d*d)
	amp := complex(1/math.Sqrt(float64(d)), 0)
	for i := 0; i < d; i++ {
		v[i*d+i] = amp
	}
	return v, nil
}

/*
MaxEntangledState returns the density matrix of the maximally entangled
state on two d-dimensional parties, the projector onto MaxEntangledVector.
*/
func MaxEntangledState(d int) (*mat.CDense, error) {
	v, err := MaxEntangledVector(d)
	if err != nil {
		return nil, err
	}
	return Projector(v), nil
}
