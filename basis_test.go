package qstate

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBasisVector(t *testing.T) {
	Convey("Given the standard basis constructor", t, func() {
		Convey("It places a single 1 at the requested index", func() {
			v, err := BasisVector(4, 2)
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []complex128{0, 0, 1, 0})
		})

		Convey("It rejects out-of-range requests", func() {
			for _, bad := range [][2]int{{0, 0}, {-1, 0}, {4, 4}, {4, -1}} {
				_, err := BasisVector(bad[0], bad[1])
				So(errors.Is(err, ErrInvalidDimension), ShouldBeTrue)
			}
		})
	})
}

func TestMaxEntangled(t *testing.T) {
	Convey("Given the maximally entangled constructors", t, func() {
		Convey("The d=2 vector is (|00⟩+|11⟩)/√2", func() {
			v, err := MaxEntangledVector(2)
			So(err, ShouldBeNil)
			So(len(v), ShouldEqual, 4)

			amp := complex(1/math.Sqrt2, 0)
			So(complexNear(v[0], amp, 1e-15), ShouldBeTrue)
			So(v[1], ShouldEqual, 0+0i)
			So(v[2], ShouldEqual, 0+0i)
			So(complexNear(v[3], amp, 1e-15), ShouldBeTrue)
		})

		Convey("The vector is normalized for any local dimension", func() {
			for _, d := range []int{2, 3, 5} {
				v, err := MaxEntangledVector(d)
				So(err, ShouldBeNil)
				So(Norm2(v), ShouldAlmostEqual, 1, 1e-12)
			}
		})

		Convey("The state is the trace-1 projector onto the vector", func() {
			rho, err := MaxEntangledState(3)
			So(err, ShouldBeNil)

			r, c := rho.Dims()
			So(r, ShouldEqual, 9)
			So(c, ShouldEqual, 9)
			So(real(Trace(rho)), ShouldAlmostEqual, 1, 1e-12)
			So(isHermitian(rho, 1e-15), ShouldBeTrue)

			// Rank 1: ρ² = ρ.
			for i := 0; i < 9; i++ {
				for j := 0; j < 9; j++ {
					var sq complex128
					for k := 0; k < 9; k++ {
						sq += rho.At(i, k) * rho.At(k, j)
					}
					So(complexNear(sq, rho.At(i, j), 1e-12), ShouldBeTrue)
				}
			}
		})

		Convey("Non-positive dimensions are rejected", func() {
			_, err := MaxEntangledVector(0)
			So(errors.Is(err, ErrInvalidDimension), ShouldBeTrue)
			_, err = MaxEntangledState(-2)
			So(errors.Is(err, ErrInvalidDimension), ShouldBeTrue)
		})
	})
}
