package catalog

import (
	"sync"

	"github.com/AdrienGallet/unitcalc/internal/dimension"
)

// builtin is the compiled-in unit table. Factors are relative to the family
// base unit (valueInBase * factor = valueInSymbol). Symbols must stay
// mutually exclusive across families; New enforces this.
func builtin() []Family {
	return []Family{
		{
			Name:      "unitless",
			Symbols:   []string{""},
			Factors:   []float64{1},
			BaseUnit:  "",
			Dimension: dimension.Vector{},
		},
		{
			Name:      "length",
			Symbols:   []string{"μm", "mm", "cm", "dm", "m", "km"},
			Factors:   []float64{1e6, 1e3, 1e2, 1e1, 1, 1e-3},
			BaseUnit:  "m",
			Dimension: dimension.Vector{1, 0, 0, 0, 0, 0, 0},
		},
		{
			Name:      "area",
			Symbols:   []string{"μm2", "mm2", "cm2", "dm2", "m2", "km2"},
			Factors:   []float64{1e12, 1e6, 1e4, 1e2, 1, 1e-6},
			BaseUnit:  "m2",
			Dimension: dimension.Vector{2, 0, 0, 0, 0, 0, 0},
		},
		{
			Name:      "section mod.|volume",
			Symbols:   []string{"μm3", "mm3", "cm3", "dm3", "m3", "km3"},
			Factors:   []float64{1e18, 1e9, 1e6, 1e3, 1, 1e-9},
			BaseUnit:  "m3",
			Dimension: dimension.Vector{3, 0, 0, 0, 0, 0, 0},
		},
		{
			Name:      "mom. of inert.|tors. const.",
			Symbols:   []string{"μm4", "mm4", "cm4", "dm4", "m4", "km4"},
			Factors:   []float64{1e24, 1e12, 1e8, 1e4, 1, 1e-12},
			BaseUnit:  "m4",
			Dimension: dimension.Vector{4, 0, 0, 0, 0, 0, 0},
		},
		{
			Name:      "warping constant",
			Symbols:   []string{"μm6", "mm6", "cm6", "dm6", "m6", "km6"},
			Factors:   []float64{1e36, 1e18, 1e12, 1e6, 1, 1e-18},
			BaseUnit:  "m6",
			Dimension: dimension.Vector{6, 0, 0, 0, 0, 0, 0},
		},
		{
			Name:      "mass",
			Symbols:   []string{"g", "kg"},
			Factors:   []float64{1e3, 1},
			BaseUnit:  "kg",
			Dimension: dimension.Vector{0, 1, 0, 0, 0, 0, 0},
		},
		{
			Name:      "time",
			Symbols:   []string{"μs", "ms", "s", "ks"},
			Factors:   []float64{1e6, 1e3, 1, 1e-3},
			BaseUnit:  "s",
			Dimension: dimension.Vector{0, 0, 1, 0, 0, 0, 0},
		},
		{
			Name:      "force",
			Symbols:   []string{"N", "kN", "MN"},
			Factors:   []float64{1, 1e-3, 1e-6},
			BaseUnit:  "N",
			Dimension: dimension.Vector{1, 1, -2, 0, 0, 0, 0},
		},
		{
			Name:      "moment",
			Symbols:   []string{"Nm", "kNm", "MNm"},
			Factors:   []float64{1, 1e-3, 1e-6},
			BaseUnit:  "Nm",
			Dimension: dimension.Vector{2, 1, -2, 0, 0, 0, 0},
		},
		{
			Name:      "stress|strain",
			Symbols:   []string{"Pa", "kPa", "MPa", "N/mm2"},
			Factors:   []float64{1, 1e-3, 1e-6, 1e-6},
			BaseUnit:  "Pa",
			Dimension: dimension.Vector{-1, 1, -2, 0, 0, 0, 0},
		},
	}
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog, built once from the compiled-in
// table. A duplicate symbol in the table is a programming error and aborts
// the process before any quantity can be constructed.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(builtin())
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
