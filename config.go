package qstate

import "math"

/*
Config holds the numerical budget used by AdaptiveIntegrate. The zero value
is not usable; start from NewConfig and override fields as needed.

The defaults reproduce the canonical budget for phase averaging: a purely
relative tolerance of √(10⁻⁴), ten million integrand evaluations, and paired
Gauss rules of order 7 and 15 on every segment.
*/
type Config struct {
	// RelTol is the relative convergence tolerance, judged against
	// Norm of the running integral estimate.
	RelTol float64

	// AbsTol is the absolute convergence tolerance. Zero means purely
	// relative convergence.
	AbsTol float64

	// MaxEvals caps the total number of integrand evaluations before the
	// integrator gives up and reports ErrQuadratureDidNotConverge.
	MaxEvals int

	// Order is the order of the lower Gauss rule on each segment. The
	// refined estimate uses a rule of order 2*Order+1, and the segment
	// error is the norm of the difference between the two.
	Order int

	// Norm judges convergence of the whole integrand value at once,
	// treating the flattened matrix as a single vector. Nil means the
	// Euclidean norm.
	Norm func(v []complex128) float64
}

func NewConfig() *Config {
	return &Config{
		RelTol:   math.Sqrt(1e-4),
		AbsTol:   0,
		MaxEvals: 10_000_000,
		Order:    7,
		Norm:     Norm2,
	}
}

/*
Norm2 is the Euclidean norm of a complex vector, the default convergence
norm for AdaptiveIntegrate.
*/
func Norm2(v []complex128) float64 {
	var sum float64
	for _, c := range v {
		sum += real(c)*real(c) + imag(c)*imag(c)
	}
	return math.Sqrt(sum)
}
