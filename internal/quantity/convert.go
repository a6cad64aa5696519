package quantity

import (
	"fmt"

	"github.com/AdrienGallet/unitcalc/internal/catalog"
)

func (q *Quantity) factorTo(target string) (float64, error) {
	if q.family == "" {
		return 0, fmt.Errorf("%w: %q has synthesized unit %q", ErrFamilyMismatch, q.name, q.unit)
	}
	return catalog.Default().Factor(q.family, q.unit, target)
}

// ConvertValue returns the magnitude expressed in the target symbol without
// mutating the quantity.
func (q *Quantity) ConvertValue(target string) (float64, error) {
	factor, err := q.factorTo(target)
	if err != nil {
		return 0, err
	}
	return roundSig(q.value * factor), nil
}

// Convert re-expresses the quantity in the target symbol, mutating the
// receiver and returning it. This is the single mutating operation in the
// package; everything else is copy-producing.
func (q *Quantity) Convert(target string) (*Quantity, error) {
	factor, err := q.factorTo(target)
	if err != nil {
		return nil, err
	}
	q.value = roundSig(q.value * factor)
	q.unit = target
	return q, nil
}
