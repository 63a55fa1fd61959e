// quadrature.go
package qstate

import (
	"container/heap"
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

/*
Integrand is a vector-valued complex function of one real variable. Matrix
integrands are flattened row-major into the vector; the length must be the
same at every point.
*/
type Integrand func(x float64) []complex128

/*
QuadResult carries the outcome of AdaptiveIntegrate.
*/
type QuadResult struct {
	// Value is the integral estimate, taken from the higher-order rule on
	// every segment.
	Value []complex128

	// ErrorEstimate is the summed per-segment error in the convergence
	// norm.
	ErrorEstimate float64

	// Evals is the number of integrand evaluations spent.
	Evals int

	// ImagResidue is the norm of the imaginary component of Value, for
	// callers that expect a real result and want to see what they are
	// about to discard.
	ImagResidue float64
}

/*
AdaptiveIntegrate integrates f over [a, b] by global adaptive bisection.

Each segment is estimated with paired Gauss–Legendre rules of order
cfg.Order and 2·cfg.Order+1; the segment error is cfg.Norm of the difference
between the two estimates, so the whole vector is judged at once rather than
entry by entry. The segment with the largest error is bisected until the
summed error drops below max(cfg.AbsTol, cfg.RelTol·Norm(integral)).

A nil cfg means NewConfig() defaults. When cfg.MaxEvals runs out first, the
best estimate so far is returned together with ErrQuadratureDidNotConverge;
the result is never silently inaccurate.

A point interval a == b integrates to zero; reversed bounds b < a flip the
sign of the result, following the usual orientation convention.
*/
func AdaptiveIntegrate(f Integrand, a, b float64, cfg *Config) (*QuadResult, error) {
	if a == b {
		// The Gauss rules need a proper interval; size the zero result
		// from a single evaluation instead.
		return &QuadResult{Value: make([]complex128, len(f(a))), Evals: 1}, nil
	}
	if b < a {
		res, err := AdaptiveIntegrate(f, b, a, cfg)
		if res != nil {
			for i := range res.Value {
				res.Value[i] = -res.Value[i]
			}
		}
		return res, err
	}
	if cfg == nil {
		cfg = NewConfig()
	}
	norm := cfg.Norm
	if norm == nil {
		norm = Norm2
	}
	order := cfg.Order
	if order < 1 {
		order = NewConfig().Order
	}

	first, evals := evalSegment(f, a, b, order, norm)
	segs := &segmentHeap{first}
	heap.Init(segs)

	for {
		total := make([]complex128, len(first.value))
		var totalErr float64
		for _, s := range *segs {
			for i, v := range s.value {
				total[i] += v
			}
			totalErr += s.err
		}

		result := &QuadResult{
			Value:         total,
			ErrorEstimate: totalErr,
			Evals:         evals,
			ImagResidue:   imagNorm(total, norm),
		}

		tol := math.Max(cfg.AbsTol, cfg.RelTol*norm(total))
		if totalErr <= tol {
			return result, nil
		}

		cost := 2 * (3*order + 1) // bisecting spends order + (2·order+1) evals per half
		if cfg.MaxEvals > 0 && evals+cost > cfg.MaxEvals {
			return result, fmt.Errorf("integrating over [%v, %v], %d evaluations spent: %w",
				a, b, evals, ErrQuadratureDidNotConverge)
		}

		worst := heap.Pop(segs).(*segment)
		mid := worst.a + (worst.b-worst.a)/2
		if mid <= worst.a || mid >= worst.b {
			// Segment is below machine resolution; refining cannot help.
			return result, fmt.Errorf("integrating over [%v, %v], segment [%v, %v] cannot be bisected: %w",
				a, b, worst.a, worst.b, ErrQuadratureDidNotConverge)
		}
		left, n1 := evalSegment(f, worst.a, mid, order, norm)
		right, n2 := evalSegment(f, mid, worst.b, order, norm)
		evals += n1 + n2
		heap.Push(segs, left)
		heap.Push(segs, right)
	}
}

// segment is one subinterval with its refined estimate and error bound.
type segment struct {
	a, b  float64
	value []complex128
	err   float64
}

func evalSegment(f Integrand, a, b float64, order int, norm func([]complex128) float64) (*segment, int) {
	lo := fixedGauss(f, a, b, order)
	hi := fixedGauss(f, a, b, 2*order+1)
	diff := make([]complex128, len(hi))
	for i := range hi {
		diff[i] = hi[i] - lo[i]
	}
	return &segment{a: a, b: b, value: hi, err: norm(diff)}, 3*order + 1
}

// fixedGauss applies an n-node Gauss–Legendre rule on [a, b].
func fixedGauss(f Integrand, a, b float64, n int) []complex128 {
	x := make([]float64, n)
	w := make([]float64, n)
	(quad.Legendre{}).FixedLocations(x, w, a, b)

	var sum []complex128
	for i, xi := range x {
		fx := f(xi)
		if sum == nil {
			sum = make([]complex128, len(fx))
		}
		wi := complex(w[i], 0)
		for j, v := range fx {
			sum[j] += wi * v
		}
	}
	return sum
}

func imagNorm(v []complex128, norm func([]complex128) float64) float64 {
	im := make([]complex128, len(v))
	for i, c := range v {
		im[i] = complex(imag(c), 0)
	}
	return norm(im)
}

// segmentHeap orders segments by descending error.
type segmentHeap []*segment

func (h segmentHeap) Len() int           { return len(h) }
func (h segmentHeap) Less(i, j int) bool { return h[i].err > h[j].err }
func (h segmentHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *segmentHeap) Push(x any)        { *h = append(*h, x.(*segment)) }
func (h *segmentHeap) Pop() any {
	old := *h
	n := len(old)
	s := old[n-1]
	*h = old[:n-1]
	return s
}
