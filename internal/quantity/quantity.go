package quantity

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/AdrienGallet/unitcalc/internal/catalog"
	"github.com/AdrienGallet/unitcalc/internal/dimension"
)

// SigDigits is the number of significant decimal digits every stored
// magnitude is rounded to after each computation.
const SigDigits = 15

// Quantity couples a numeric magnitude to a display unit and an SI
// dimension vector. The base magnitude (value re-expressed in the family's
// base unit) is kept consistent with the display value at all times; for
// synthesized units it equals the display value.
type Quantity struct {
	name      string
	value     float64
	unit      string
	family    string
	dim       dimension.Vector
	baseValue float64
	baseUnit  string
	info      string
	formula   string
}

type options struct {
	dim     *dimension.Vector
	info    string
	formula string
}

type Option func(*options)

// WithDimension supplies the SI dimension vector for a unit symbol that is
// not in the catalog. Ignored when the unit resolves to a family.
func WithDimension(v dimension.Vector) Option {
	return func(o *options) { o.dim = &v }
}

// WithInfo attaches a human description.
func WithInfo(s string) Option {
	return func(o *options) { o.info = s }
}

// WithFormula attaches a derivation trace.
func WithFormula(s string) Option {
	return func(o *options) { o.formula = s }
}

// New constructs a quantity from a name, magnitude and unit symbol. A
// symbol found in the catalog fixes the family, dimension and base
// magnitude; an unregistered symbol requires WithDimension and is treated
// as already canonical (base magnitude = magnitude).
func New(name string, value float64, unit string, opts ...Option) (*Quantity, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	q := &Quantity{
		name:    name,
		value:   roundSig(value),
		unit:    unit,
		info:    o.info,
		formula: o.formula,
	}

	f, ok := catalog.Default().BySymbol(unit)
	if !ok {
		if o.dim == nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingDimension, unit)
		}
		q.dim = *o.dim
		q.baseUnit = unit
		q.baseValue = q.value
		return q, nil
	}

	q.family = f.Name
	q.dim = f.Dimension
	q.baseUnit = f.BaseUnit
	if q.unit == q.baseUnit {
		q.baseValue = q.value
		return q, nil
	}
	factor, err := catalog.Default().Factor(q.family, q.unit, q.baseUnit)
	if err != nil {
		return nil, err
	}
	q.baseValue = roundSig(q.value * factor)
	return q, nil
}

// Parse constructs a quantity from a "<name>=<number><unit>" shorthand.
// The magnitude runs up to the first rune that is neither a digit nor a
// decimal point; the remainder is the unit symbol.
func Parse(shorthand string, opts ...Option) (*Quantity, error) {
	name, value, unit, err := splitShorthand(shorthand)
	if err != nil {
		return nil, err
	}
	return New(name, value, unit, opts...)
}

// Spec is the declarative construction form consumed by worksheets and
// flags. Value and Unit must be supplied together; with both absent, Name
// is parsed as a shorthand declaration.
type Spec struct {
	Name      string
	Value     *float64
	Unit      *string
	Dimension *dimension.Vector
	Info      string
	Formula   string
}

// FromSpec constructs a quantity from a Spec, enforcing that magnitude and
// unit are either both present or both absent.
func FromSpec(s Spec) (*Quantity, error) {
	var opts []Option
	if s.Dimension != nil {
		opts = append(opts, WithDimension(*s.Dimension))
	}
	if s.Info != "" {
		opts = append(opts, WithInfo(s.Info))
	}
	if s.Formula != "" {
		opts = append(opts, WithFormula(s.Formula))
	}

	switch {
	case s.Value != nil && s.Unit != nil:
		return New(s.Name, *s.Value, *s.Unit, opts...)
	case s.Value == nil && s.Unit == nil:
		return Parse(s.Name, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrAmbiguousConstruction, s.Name)
	}
}

func splitShorthand(s string) (name string, value float64, unit string, err error) {
	parts := strings.Split(s, "=")
	switch {
	case len(parts) < 2:
		return "", 0, "", fmt.Errorf("%w: missing '=' in %q", ErrMalformedShorthand, s)
	case len(parts) > 2:
		return "", 0, "", fmt.Errorf("%w: more than one '=' in %q", ErrMalformedShorthand, s)
	}

	name = strings.TrimSpace(parts[0])
	rhs := strings.TrimSpace(parts[1])

	cut := strings.IndexFunc(rhs, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.'
	})
	numStr := rhs
	if cut >= 0 {
		numStr, unit = rhs[:cut], rhs[cut:]
	}
	if numStr == "" {
		return "", 0, "", fmt.Errorf("%w: no magnitude in %q", ErrMalformedShorthand, s)
	}

	if strings.Contains(numStr, ".") {
		value, err = strconv.ParseFloat(numStr, 64)
	} else {
		var n int64
		n, err = strconv.ParseInt(numStr, 10, 64)
		value = float64(n)
	}
	if err != nil {
		return "", 0, "", fmt.Errorf("%w: bad magnitude %q: %v", ErrMalformedShorthand, numStr, err)
	}
	return name, value, unit, nil
}

func (q *Quantity) Name() string          { return q.name }
func (q *Quantity) Value() float64        { return q.value }
func (q *Quantity) Unit() string          { return q.unit }
func (q *Quantity) Family() string        { return q.family }
func (q *Quantity) Dim() dimension.Vector { return q.dim }
func (q *Quantity) BaseValue() float64    { return q.baseValue }
func (q *Quantity) BaseUnit() string      { return q.baseUnit }
func (q *Quantity) Info() string          { return q.info }
func (q *Quantity) Formula() string       { return q.formula }

// Synthesized reports whether the display unit was synthesized rather than
// matched to a catalog family.
func (q *Quantity) Synthesized() bool { return q.family == "" }

// Float returns the magnitude in the family's base unit.
func (q *Quantity) Float() float64 { return q.baseValue }

// Update changes descriptive metadata; empty arguments keep the current
// value. Numeric state is never touched here.
func (q *Quantity) Update(name, info, formula string) {
	if name != "" {
		q.name = name
	}
	if info != "" {
		q.info = info
	}
	if formula != "" {
		q.formula = formula
	}
}

// String renders the short display form, e.g. "a = 200mm".
func (q *Quantity) String() string {
	return fmt.Sprintf("%s = %v%s", q.name, q.value, q.unit)
}

// Describe renders the verbose diagnostic form. Intended for debugging, not
// for parsing.
func (q *Quantity) Describe() string {
	return fmt.Sprintf("%s = %v%s, family: %s, baseValue: %v, baseUnit: %s, info: %s, formula: %s, dim: %s",
		q.name, q.value, q.unit, q.family, q.baseValue, q.baseUnit, q.info, q.formula, q.dim)
}

func (q *Quantity) clone() *Quantity {
	c := *q
	return &c
}

// recomputeBase re-derives the base magnitude after a display-value change.
func (q *Quantity) recomputeBase() error {
	if q.family == "" {
		q.baseValue = q.value
		return nil
	}
	factor, err := catalog.Default().Factor(q.family, q.unit, q.baseUnit)
	if err != nil {
		return err
	}
	q.baseValue = roundSig(q.value * factor)
	return nil
}

// roundSig rounds to SigDigits significant decimal digits. This bounds
// floating-point noise through chained operations; the bound is
// deterministic, not arbitrary precision.
func roundSig(v float64) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	exp := math.Ceil(math.Log10(math.Abs(v)))
	scale := math.Pow(10, float64(SigDigits)-exp)
	if math.IsInf(scale, 0) {
		// Magnitudes near the subnormal range would overflow the scale
		// factor; round through the decimal formatter instead.
		r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'e', SigDigits-1, 64), 64)
		return r
	}
	return math.Round(v*scale) / scale
}

// roundVec rounds every exponent of a dimension vector, used after scaling
// by a possibly fractional power.
func roundVec(v dimension.Vector) dimension.Vector {
	for i := range v {
		v[i] = roundSig(v[i])
	}
	return v
}
