// Package gen turns reflected enum declarations into Go source.
//
// Generation uses text/template + go/format. For every enum the output holds:
//   - the tagged union struct, its tag constants and one constructor per variant
//   - per variant: IsV, TryAsV, TryAsVMut (variants with fields) and TryIntoV
//   - the companion error type with Expected, Actual, Value and IntoValue, plus
//     the derived behaviors requested for it
package gen
