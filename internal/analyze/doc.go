// Package analyze provides package loading and enum declaration reflection.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to build an
// explicit in-memory description of every enum declaration before any code
// is emitted.
//
// An enum declaration is an interface whose methods are the variants:
//
//	//enumtry:derive_err Debug Equal
//	type enumLight interface {
//		Red()                    // Empty
//		Yellow(remaining uint32) // Struct (named fields)
//		Green(uint32, bool)      // Tuple (unnamed fields)
//	}
//
// Key types:
//   - EnumInfo: generated type name, declaration name, type parameters, variants
//   - VariantInfo: declared name, converted name, shape and fields
//   - FieldInfo: field index, declared name and rendered type
package analyze
