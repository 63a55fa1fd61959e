package qstate

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestProbabilities(t *testing.T) {
	Convey("Given the Born-rule distribution of a state vector", t, func() {
		Convey("Bell vectors measure uniformly over their two branches", func() {
			v, err := BellVector(BellPsiMinus)
			So(err, ShouldBeNil)

			probs := Probabilities(v)
			So(probs[0], ShouldEqual, 0)
			So(probs[1], ShouldAlmostEqual, 0.5, 1e-15)
			So(probs[2], ShouldAlmostEqual, 0.5, 1e-15)
			So(probs[3], ShouldEqual, 0)
		})

		Convey("The distribution is phase-invariant", func() {
			a := Probabilities(phaseVector(0))
			b := Probabilities(phaseVector(2.7))
			for i := range a {
				So(b[i], ShouldAlmostEqual, a[i], 1e-15)
			}
		})

		Convey("Unnormalized vectors are normalized first", func() {
			probs := Probabilities([]complex128{3, 4i})
			So(probs[0], ShouldAlmostEqual, 9.0/25.0, 1e-15)
			So(probs[1], ShouldAlmostEqual, 16.0/25.0, 1e-15)
			So(probs[0]+probs[1], ShouldAlmostEqual, 1, 1e-15)
		})

		Convey("A zero vector has no distribution", func() {
			So(Probabilities(make([]complex128, 4)), ShouldBeNil)
			So(Probabilities(nil), ShouldBeNil)
		})

		Convey("Basis vectors are deterministic", func() {
			e, _ := BasisVector(4, 3)
			probs := Probabilities(e)
			So(probs[3], ShouldEqual, 1)
			So(math.Abs(probs[0]+probs[1]+probs[2]), ShouldEqual, 0)
		})
	})
}
