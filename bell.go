package qstate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Bell state indices, in the conventional order.
const (
	BellPhiPlus = iota
	BellPhiMinus
	BellPsiPlus
	BellPsiMinus
)

/*
BellVector returns the k-th Bell state vector on two qubits:

	k=0: (|00⟩+|11⟩)/√2   k=1: (|00⟩−|11⟩)/√2
	k=2: (|01⟩+|10⟩)/√2   k=3: (|01⟩−|10⟩)/√2
*/
func BellVector(k int) ([]complex128, error) {
	if k < 0 || k > 3 {
		return nil, fmt.Errorf("bell index %d out of range [0, 4): %w", k, ErrInvalidDimension)
	}
	amp := complex(1/math.Sqrt2, 0)
	v := make([]complex128, 4)
	switch k {
	case BellPhiPlus:
		v[0], v[3] = amp, amp
	case BellPhiMinus:
		v[0], v[3] = amp, -amp
	case BellPsiPlus:
		v[1], v[2] = amp, amp
	case BellPsiMinus:
		v[1], v[2] = amp, -amp
	}
	return v, nil
}

/*
BellState returns the density matrix of the k-th Bell state, the projector
onto BellVector(k).
*/
func BellState(k int) (*mat.CDense, error) {
	v, err := BellVector(k)
	if err != nil {
		return nil, err
	}
	return Projector(v), nil
}

/*
BellBasis returns the four Bell projectors in index order. Together they
resolve the identity on the two-qubit space.
*/
func BellBasis() []*mat.CDense {
	basis := make([]*mat.CDense, 4)
	for k := range basis {
		basis[k], _ = BellState(k)
	}
	return basis
}
