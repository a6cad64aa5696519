package quantity

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/AdrienGallet/unitcalc/internal/dimension"
)

func q(name string, value float64, unit string) *Quantity {
	qty, err := New(name, value, unit)
	Expect(err).NotTo(HaveOccurred())
	return qty
}

var _ = Describe("arithmetic protocol", func() {
	Describe("addition and subtraction", func() {
		It("converts both operands to the base unit", func() {
			sum, err := q("a", 200, "mm").Add(q("b", 0.01, "m"))
			Expect(err).NotTo(HaveOccurred())
			Expect(sum.Unit()).To(Equal("m"))
			Expect(sum.Value()).To(BeNumerically("~", 0.21, 1e-12))
			Expect(sum.Name()).To(Equal("a+b"))
		})

		It("adds across symbols of the same family", func() {
			sum, err := q("f1", 10, "N").Add(q("f2", 5, "kN"))
			Expect(err).NotTo(HaveOccurred())
			Expect(sum.BaseValue()).To(BeNumerically("~", 5010, 1e-9))
			Expect(sum.BaseUnit()).To(Equal("N"))
		})

		It("rejects mismatched dimensions", func() {
			_, err := q("f", 10, "N").Add(q("l", 5, "m"))
			Expect(err).To(MatchError(ErrDimensionMismatch))
		})

		It("treats a bare number as sharing the display unit", func() {
			sum, err := q("a", 200, "mm").Add(10.0)
			Expect(err).NotTo(HaveOccurred())
			Expect(sum.Value()).To(Equal(210.0))
			Expect(sum.Unit()).To(Equal("mm"))
			Expect(sum.BaseValue()).To(BeNumerically("~", 0.21, 1e-12))
		})

		It("subtracts by negated addition", func() {
			diff, err := q("a", 1, "m").Sub(q("b", 40, "cm"))
			Expect(err).NotTo(HaveOccurred())
			Expect(diff.Value()).To(BeNumerically("~", 0.6, 1e-12))
			Expect(diff.Name()).To(Equal("a-b"))
		})

		It("does not mutate its operands", func() {
			a := q("a", 200, "mm")
			b := q("b", 0.01, "m")
			_, err := a.Add(b)
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Value()).To(Equal(200.0))
			Expect(b.Value()).To(Equal(0.01))
		})
	})

	Describe("multiplication and division", func() {
		It("resolves a cataloged result dimension to the family base unit", func() {
			area, err := q("a", 2, "m").Mul(q("b", 3, "m"))
			Expect(err).NotTo(HaveOccurred())
			Expect(area.Family()).To(Equal("area"))
			Expect(area.Unit()).To(Equal("m2"))
			Expect(area.Value()).To(Equal(6.0))
		})

		It("resolves force times length to a moment", func() {
			m, err := q("f", 2, "kN").Mul(q("l", 3, "m"))
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Family()).To(Equal("moment"))
			Expect(m.Unit()).To(Equal("Nm"))
			Expect(m.Value()).To(Equal(6000.0))
		})

		It("synthesizes a label when no family matches", func() {
			x, err := q("m", 2, "kg").Mul(q("t", 3, "s"))
			Expect(err).NotTo(HaveOccurred())
			Expect(x.Synthesized()).To(BeTrue())
			Expect(x.Unit()).To(Equal("kg s"))
			Expect(x.Value()).To(Equal(6.0))
		})

		It("cancels dimensions down to unitless", func() {
			r, err := q("a", 6, "m").Div(q("b", 2, "m"))
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Family()).To(Equal("unitless"))
			Expect(r.Unit()).To(Equal(""))
			Expect(r.Value()).To(Equal(3.0))
		})

		It("divides on base magnitudes", func() {
			stress, err := q("f", 4, "kN").Div(q("a", 2, "m2"))
			Expect(err).NotTo(HaveOccurred())
			Expect(stress.Family()).To(Equal("stress|strain"))
			Expect(stress.Unit()).To(Equal("Pa"))
			Expect(stress.Value()).To(Equal(2000.0))
		})

		It("guards division by a zero quantity", func() {
			_, err := q("a", 6, "m").Div(q("b", 0, "m"))
			Expect(err).To(MatchError(ErrDivisionByZero))
		})

		It("guards division by a zero number", func() {
			_, err := q("a", 6, "m").Div(0.0)
			Expect(err).To(MatchError(ErrDivisionByZero))
		})

		It("scales by a bare number without changing the unit", func() {
			r, err := q("a", 6, "mm").Mul(2)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Value()).To(Equal(12.0))
			Expect(r.Unit()).To(Equal("mm"))
			Expect(r.BaseValue()).To(BeNumerically("~", 0.012, 1e-12))
		})
	})

	Describe("powers", func() {
		It("scales the dimension vector by the exponent", func() {
			sq, err := q("a", 3, "m").Pow(2)
			Expect(err).NotTo(HaveOccurred())
			Expect(sq.Family()).To(Equal("area"))
			Expect(sq.Value()).To(Equal(9.0))
			Expect(sq.Name()).To(Equal("a^2"))
		})

		It("supports fractional exponents", func() {
			r, err := q("a", 9, "m2").Pow(0.5)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Family()).To(Equal("length"))
			Expect(r.Unit()).To(Equal("m"))
			Expect(r.Value()).To(Equal(3.0))
		})

		It("rejects non-numeric exponents", func() {
			_, err := q("a", 3, "m").Pow("two")
			Expect(err).To(MatchError(ErrInvalidExponent))
		})
	})

	Describe("unary operations", func() {
		It("negates both magnitudes", func() {
			n := q("a", 200, "mm").Neg()
			Expect(n.Value()).To(Equal(-200.0))
			Expect(n.BaseValue()).To(BeNumerically("~", -0.2, 1e-12))
			Expect(n.Unit()).To(Equal("mm"))
		})

		It("takes absolute values", func() {
			a := q("a", -200, "mm").Abs()
			Expect(a.Value()).To(Equal(200.0))
			Expect(a.BaseValue()).To(BeNumerically("~", 0.2, 1e-12))
		})
	})

	Describe("reverse forms", func() {
		It("computes number minus quantity", func() {
			r, err := q("a", 60, "cm").SubFrom(100)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Value()).To(Equal(40.0))
			Expect(r.Unit()).To(Equal("cm"))
		})

		It("computes number divided by quantity", func() {
			r, err := q("t", 2, "s").DivInto(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Synthesized()).To(BeTrue())
			Expect(r.Unit()).To(Equal("s-1"))
			Expect(r.Value()).To(Equal(0.5))
			Expect(r.Dim()).To(Equal(dimension.Vector{0, 0, -1, 0, 0, 0, 0}))
		})

		It("guards reverse division by a zero quantity", func() {
			_, err := q("t", 0, "s").DivInto(1)
			Expect(err).To(MatchError(ErrDivisionByZero))
		})
	})

	Describe("comparisons", func() {
		It("compares on base magnitudes across display units", func() {
			eq, err := q("a", 1, "m").Equal(q("b", 100, "cm"))
			Expect(err).NotTo(HaveOccurred())
			Expect(eq).To(BeTrue())
		})

		It("orders quantities within a family", func() {
			less, err := q("a", 1, "m").Less(q("b", 2, "m"))
			Expect(err).NotTo(HaveOccurred())
			Expect(less).To(BeTrue())

			geq, err := q("a", 1, "m").GreaterEq(q("b", 2, "m"))
			Expect(err).NotTo(HaveOccurred())
			Expect(geq).To(BeFalse())
		})

		It("keeps all six comparisons independently correct", func() {
			a := q("a", 5, "kN")
			b := q("b", 5000, "N")

			for _, tc := range []struct {
				got  func() (bool, error)
				want bool
			}{
				{func() (bool, error) { return a.Less(b) }, false},
				{func() (bool, error) { return a.LessEq(b) }, true},
				{func() (bool, error) { return a.Greater(b) }, false},
				{func() (bool, error) { return a.GreaterEq(b) }, true},
				{func() (bool, error) { return a.Equal(b) }, true},
				{func() (bool, error) { return a.NotEqual(b) }, false},
			} {
				got, err := tc.got()
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(Equal(tc.want))
			}
		})

		It("rejects comparisons across dimensions", func() {
			_, err := q("f", 1, "N").Less(q("l", 1, "m"))
			Expect(err).To(MatchError(ErrDimensionMismatch))
		})

		It("compares display magnitude against a bare number", func() {
			// 1m vs 100: display magnitude 1, no conversion.
			less, err := q("a", 1, "m").Less(100)
			Expect(err).NotTo(HaveOccurred())
			Expect(less).To(BeTrue())
		})
	})

	Describe("derivation chains", func() {
		It("reproduces the shear-resistance flow", func() {
			a := q("a", 200, "mm")
			b := q("b", 10*1e-3, "cm")
			fy := q("fy", 200, "MPa")

			ab, err := a.Mul(b)
			Expect(err).NotTo(HaveOccurred())
			Expect(ab.Family()).To(Equal("area"))

			force, err := ab.Mul(fy)
			Expect(err).NotTo(HaveOccurred())
			Expect(force.Family()).To(Equal("force"))

			azRd, err := force.Div(math.Sqrt(3))
			Expect(err).NotTo(HaveOccurred())
			Expect(azRd.Unit()).To(Equal("N"))
			Expect(azRd.Value()).To(BeNumerically("~", 4000/math.Sqrt(3), 1e-6))
			Expect(azRd.Formula()).To(Equal("a*b*fy"))
		})
	})
})
