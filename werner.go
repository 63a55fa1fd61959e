package qstate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

/*
Werner returns the Werner state on two d-dimensional parties: the convex
mixture

	p · Φ_d + (1−p) · I/d²

of the maximally entangled state Φ_d with the maximally mixed state.
p must lie in [0, 1].
*/
func Werner(d int, p float64) (*mat.CDense, error) {
	if err := checkProbability(p); err != nil {
		return nil, fmt.Errorf("werner state: %w", err)
	}
	ent, err := MaxEntangledState(d)
	if err != nil {
		return nil, fmt.Errorf("werner state: %w", err)
	}
	dim := d * d
	mixed := 1 / float64(dim)
	out := mat.NewCDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			v := complex(p, 0) * ent.At(i, j)
			if i == j {
				v += complex((1-p)*mixed, 0)
			}
			out.Set(i, j, v)
		}
	}
	return out, nil
}

func checkProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("p = %v: %w", p, ErrInvalidProbability)
	}
	return nil
}
