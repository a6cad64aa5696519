package quantity

import (
	"fmt"
	"math"
	"strconv"

	"github.com/AdrienGallet/unitcalc/internal/catalog"
	"github.com/AdrienGallet/unitcalc/internal/dimension"
)

// toScalar coerces a bare-number operand. Two operand cases exist at every
// operator boundary: *Quantity, or one of these numeric types.
func toScalar(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func formatScalar(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// Add returns the sum. A quantity operand must share this quantity's
// dimension vector; the result is expressed in the left operand's base
// unit. A bare number is treated as sharing the current display unit.
func (q *Quantity) Add(rhs any) (*Quantity, error) {
	if other, ok := rhs.(*Quantity); ok {
		return q.addQuantity(other, "+")
	}
	n, ok := toScalar(rhs)
	if !ok {
		return nil, &OpError{Op: "+", Left: q.name, Right: fmt.Sprint(rhs), Wrapped: ErrInvalidOperand}
	}
	return q.addScalar(n)
}

// Sub returns the difference, by negated addition.
func (q *Quantity) Sub(rhs any) (*Quantity, error) {
	if other, ok := rhs.(*Quantity); ok {
		return q.addQuantity(other.Neg(), "-")
	}
	n, ok := toScalar(rhs)
	if !ok {
		return nil, &OpError{Op: "-", Left: q.name, Right: fmt.Sprint(rhs), Wrapped: ErrInvalidOperand}
	}
	return q.addScalar(-n)
}

func (q *Quantity) addQuantity(other *Quantity, op string) (*Quantity, error) {
	if !q.dim.Equal(other.dim) {
		return nil, &OpError{Op: op, Left: q.name, Right: other.name, Wrapped: ErrDimensionMismatch}
	}
	trace := q.name + op + other.name
	sum := roundSig(q.baseValue + other.baseValue)
	if q.family == "" {
		return New(trace, sum, q.baseUnit, WithDimension(q.dim), WithFormula(trace))
	}
	return New(trace, sum, q.baseUnit, WithFormula(trace))
}

func (q *Quantity) addScalar(n float64) (*Quantity, error) {
	out := q.clone()
	out.value = roundSig(q.value + n)
	if err := out.recomputeBase(); err != nil {
		return nil, err
	}
	return out, nil
}

// Mul returns the product. For a quantity operand the result dimension is
// the elementwise sum of the operand vectors; the unit is the matching
// family's base unit, or a synthesized label when no family matches. A bare
// number scales both magnitudes, leaving unit and dimension unchanged.
func (q *Quantity) Mul(rhs any) (*Quantity, error) {
	if other, ok := rhs.(*Quantity); ok {
		trace := q.name + "*" + other.name
		dim := q.dim.Add(other.dim)
		return derive(trace, roundSig(q.baseValue*other.baseValue), dim)
	}
	n, ok := toScalar(rhs)
	if !ok {
		return nil, &OpError{Op: "*", Left: q.name, Right: fmt.Sprint(rhs), Wrapped: ErrInvalidOperand}
	}
	return q.mulScalar(n), nil
}

func (q *Quantity) mulScalar(n float64) *Quantity {
	out := q.clone()
	out.value = roundSig(q.value * n)
	out.baseValue = roundSig(q.baseValue * n)
	return out
}

// Div returns the quotient: multiplication by the divisor with negated
// dimension vector and inverted magnitude. Dividing by a zero magnitude
// fails rather than propagating an infinity.
func (q *Quantity) Div(rhs any) (*Quantity, error) {
	if other, ok := rhs.(*Quantity); ok {
		if other.value == 0 || other.baseValue == 0 {
			return nil, &OpError{Op: "/", Left: q.name, Right: other.name, Wrapped: ErrDivisionByZero}
		}
		trace := q.name + "/" + other.name
		dim := q.dim.Sub(other.dim)
		return derive(trace, roundSig(q.baseValue/other.baseValue), dim)
	}
	n, ok := toScalar(rhs)
	if !ok {
		return nil, &OpError{Op: "/", Left: q.name, Right: fmt.Sprint(rhs), Wrapped: ErrInvalidOperand}
	}
	if n == 0 {
		return nil, &OpError{Op: "/", Left: q.name, Right: "0", Wrapped: ErrDivisionByZero}
	}
	return q.mulScalar(1 / n), nil
}

// Pow raises the quantity to a numeric exponent, scaling every dimension
// exponent by the power.
func (q *Quantity) Pow(exp any) (*Quantity, error) {
	n, ok := toScalar(exp)
	if !ok {
		return nil, &OpError{Op: "^", Left: q.name, Right: fmt.Sprint(exp), Wrapped: ErrInvalidExponent}
	}
	trace := q.name + "^" + formatScalar(n)
	dim := roundVec(q.dim.Scale(n))
	return derive(trace, roundSig(math.Pow(q.baseValue, n)), dim)
}

// Neg returns the quantity with both magnitudes negated.
func (q *Quantity) Neg() *Quantity {
	out := q.clone()
	out.value = -q.value
	out.baseValue = -q.baseValue
	return out
}

// Abs returns the quantity with both magnitudes made non-negative.
func (q *Quantity) Abs() *Quantity {
	out := q.clone()
	out.value = math.Abs(q.value)
	out.baseValue = math.Abs(q.baseValue)
	return out
}

// SubFrom computes n - q: negate, then add the bare number.
func (q *Quantity) SubFrom(n float64) (*Quantity, error) {
	return q.Neg().Add(n)
}

// DivInto computes n / q: invert magnitude and dimension vector, then
// multiply by the number as a unitless quantity.
func (q *Quantity) DivInto(n float64) (*Quantity, error) {
	if q.value == 0 || q.baseValue == 0 {
		return nil, &OpError{Op: "/", Left: formatScalar(n), Right: q.name, Wrapped: ErrDivisionByZero}
	}
	trace := formatScalar(n) + "/" + q.name
	dim := q.dim.Negate()
	return derive(trace, roundSig(n/q.baseValue), dim)
}

// derive resolves the unit for a computed dimension vector: a catalog match
// yields that family's base unit, otherwise the unit label is synthesized
// from the SI base symbols and the family stays unset.
func derive(trace string, baseValue float64, dim dimension.Vector) (*Quantity, error) {
	if f, ok := catalog.Default().ByDimension(dim); ok {
		return New(trace, baseValue, f.BaseUnit, WithFormula(trace))
	}
	return New(trace, baseValue, dim.Label(), WithDimension(dim), WithFormula(trace))
}
