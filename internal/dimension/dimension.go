package dimension

import (
	"strconv"
	"strings"
)

// Axes of the SI dimension vector, in fixed order.
const (
	Length = iota
	Mass
	Time
	Temperature
	Current
	Substance
	Luminosity
)

// baseSymbols holds the canonical SI symbol for each axis.
var baseSymbols = [7]string{"m", "kg", "s", "K", "A", "mole", "cd"}

// Vector is a 7-element exponent vector over the SI base dimensions.
// A zero Vector is dimensionless.
type Vector [7]float64

// Zero is the dimensionless vector.
var Zero = Vector{}

func (v Vector) Add(other Vector) Vector {
	var result Vector
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

func (v Vector) Sub(other Vector) Vector {
	var result Vector
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

func (v Vector) Negate() Vector {
	var result Vector
	for i := range v {
		result[i] = -v[i]
	}
	return result
}

func (v Vector) Scale(p float64) Vector {
	var result Vector
	for i := range v {
		result[i] = v[i] * p
	}
	return result
}

func (v Vector) Equal(other Vector) bool {
	return v == other
}

func (v Vector) IsZero() bool {
	return v == Zero
}

// Label builds a display unit from the nonzero exponents, e.g. {1,1,-2}
// renders as "m kg s-2". Exponent 1 is emitted bare, zero axes are skipped.
// The label is a display artifact only; it is never registered in a catalog.
func (v Vector) Label() string {
	var b strings.Builder
	for i, p := range v {
		if p == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(baseSymbols[i])
		if p != 1 {
			b.WriteString(strconv.FormatFloat(p, 'f', -1, 64))
		}
	}
	return b.String()
}

// String renders the raw exponent list, for diagnostics.
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, p := range v {
		parts[i] = strconv.FormatFloat(p, 'f', -1, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
