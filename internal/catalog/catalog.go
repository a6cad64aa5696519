package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/AdrienGallet/unitcalc/internal/dimension"
)

var (
	// ErrUnknownUnit indicates a conversion referenced a symbol that is not a
	// member of the relevant family.
	ErrUnknownUnit = errors.New("catalog: unknown unit symbol")

	// ErrDuplicateSymbol indicates a symbol registered by more than one family.
	ErrDuplicateSymbol = errors.New("catalog: duplicate unit symbol across families")

	// ErrMalformedFamily indicates a family whose symbol and factor lists are
	// not positionally paired.
	ErrMalformedFamily = errors.New("catalog: symbols and factors length mismatch")

	// ErrUnknownFamily indicates a lookup for a family name not in the catalog.
	ErrUnknownFamily = errors.New("catalog: unknown unit family")
)

// Family groups mutually interchangeable unit symbols sharing one physical
// dimension. Factors express valueInBase * factor = valueInSymbol and are
// positionally paired with Symbols.
type Family struct {
	Name      string
	Symbols   []string
	Factors   []float64
	BaseUnit  string
	Dimension dimension.Vector
}

type symbolRef struct {
	family string
	index  int
}

// Catalog is an immutable unit-family registry. Once built it is read-only
// and safe to share across concurrent readers.
type Catalog struct {
	families map[string]*Family
	names    []string
	bySymbol map[string]symbolRef
}

// New builds a catalog from the given families, validating that symbol and
// factor lists are paired and that no symbol repeats across families.
func New(families []Family) (*Catalog, error) {
	c := &Catalog{
		families: make(map[string]*Family, len(families)),
		names:    make([]string, 0, len(families)),
		bySymbol: make(map[string]symbolRef),
	}

	for i := range families {
		f := families[i]
		if len(f.Symbols) != len(f.Factors) {
			return nil, fmt.Errorf("%w: family %q has %d symbols, %d factors",
				ErrMalformedFamily, f.Name, len(f.Symbols), len(f.Factors))
		}
		for j, sym := range f.Symbols {
			if prev, ok := c.bySymbol[sym]; ok {
				return nil, fmt.Errorf("%w: %q in both %q and %q",
					ErrDuplicateSymbol, sym, prev.family, f.Name)
			}
			c.bySymbol[sym] = symbolRef{family: f.Name, index: j}
		}
		c.families[f.Name] = &f
		c.names = append(c.names, f.Name)
	}

	return c, nil
}

// BySymbol resolves a unit symbol to its family. Symbols are globally
// unique, so at most one family matches; a miss means the symbol is
// unregistered and the caller must treat the quantity as synthesized.
func (c *Catalog) BySymbol(symbol string) (*Family, bool) {
	ref, ok := c.bySymbol[symbol]
	if !ok {
		return nil, false
	}
	return c.families[ref.family], true
}

// ByDimension finds the family whose dimension vector matches exactly.
// Used after derived arithmetic to decide between a named base unit and a
// synthesized label.
func (c *Catalog) ByDimension(v dimension.Vector) (*Family, bool) {
	for _, name := range c.names {
		f := c.families[name]
		if f.Dimension.Equal(v) {
			return f, true
		}
	}
	return nil, false
}

// Family returns the named family.
func (c *Catalog) Family(name string) (*Family, error) {
	f, ok := c.families[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
	}
	return f, nil
}

// Families returns the family names in sorted order.
func (c *Catalog) Families() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	sort.Strings(names)
	return names
}

// Factor computes the conversion factor from one symbol of a family to
// another, defined as factors[to]/factors[from].
func (c *Catalog) Factor(family, from, to string) (float64, error) {
	f, err := c.Family(family)
	if err != nil {
		return 0, err
	}
	fromRef, ok := c.bySymbol[from]
	if !ok || fromRef.family != family {
		return 0, fmt.Errorf("%w: %q not in family %q", ErrUnknownUnit, from, family)
	}
	toRef, ok := c.bySymbol[to]
	if !ok || toRef.family != family {
		return 0, fmt.Errorf("%w: %q not in family %q", ErrUnknownUnit, to, family)
	}
	return f.Factors[toRef.index] / f.Factors[fromRef.index], nil
}

// Contains reports whether the symbol belongs to this family.
func (f *Family) Contains(symbol string) bool {
	for _, s := range f.Symbols {
		if s == symbol {
			return true
		}
	}
	return false
}
