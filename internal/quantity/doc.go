// Package quantity implements dimensioned-quantity arithmetic: a numeric
// magnitude coupled to a physical unit and a 7-axis SI dimension vector.
//
// The package provides:
//
//   - [New], [Parse], [FromSpec]: construction from explicit arguments, a
//     "name=123unit" shorthand, or a declarative spec
//   - [Quantity.Add], [Quantity.Mul], [Quantity.Pow], ...: the arithmetic
//     protocol, deriving result units and dimensions from the operands
//   - [Quantity.Convert], [Quantity.ConvertValue]: unit conversion within a
//     family
//   - [Quantity.Compare] and six relational wrappers over base magnitudes
//
// All operations return freshly constructed quantities; the one documented
// exception is the in-place [Quantity.Convert]. Stored magnitudes are
// rounded to [SigDigits] significant decimal digits to bound floating-point
// drift across chained operations.
//
// # Thread Safety
//
// Quantities are not safe for concurrent mutation; guard shared instances
// around [Quantity.Convert]. The copy-producing operators touch no shared
// mutable state and need no synchronization.
package quantity
