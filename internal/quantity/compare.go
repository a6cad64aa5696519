package quantity

import "fmt"

// Compare orders this quantity against another quantity or a bare number,
// returning -1, 0 or 1. Quantity operands must share the dimension vector
// and are compared on base-unit magnitudes, so equal physical values in
// different display units compare equal. A bare number is compared against
// the display magnitude directly, with no conversion.
func (q *Quantity) Compare(rhs any) (int, error) {
	if other, ok := rhs.(*Quantity); ok {
		if !q.dim.Equal(other.dim) {
			return 0, &OpError{Op: "cmp", Left: q.name, Right: other.name, Wrapped: ErrDimensionMismatch}
		}
		return order(roundSig(q.baseValue), roundSig(other.baseValue)), nil
	}
	n, ok := toScalar(rhs)
	if !ok {
		return 0, &OpError{Op: "cmp", Left: q.name, Right: fmt.Sprint(rhs), Wrapped: ErrInvalidOperand}
	}
	return order(roundSig(q.value), roundSig(n)), nil
}

func order(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (q *Quantity) Less(rhs any) (bool, error) {
	c, err := q.Compare(rhs)
	return c < 0, err
}

func (q *Quantity) LessEq(rhs any) (bool, error) {
	c, err := q.Compare(rhs)
	return c <= 0, err
}

func (q *Quantity) Greater(rhs any) (bool, error) {
	c, err := q.Compare(rhs)
	return c > 0, err
}

func (q *Quantity) GreaterEq(rhs any) (bool, error) {
	c, err := q.Compare(rhs)
	return c >= 0, err
}

func (q *Quantity) Equal(rhs any) (bool, error) {
	c, err := q.Compare(rhs)
	return c == 0, err
}

func (q *Quantity) NotEqual(rhs any) (bool, error) {
	c, err := q.Compare(rhs)
	return c != 0, err
}
