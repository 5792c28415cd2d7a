package analyze

import (
	"go/token"

	"enumtry-generator/internal/common"
	"enumtry-generator/internal/diagnostic"
	"enumtry-generator/internal/naming"
	"enumtry-generator/options"
)

//go:generate go tool stringer -type=Shape -trimprefix=Shape -output=shape_string.go
//go:generate go tool stringer -type=Arity -trimprefix=Arity -output=arity_string.go

// Shape is the declared field layout of a variant.
type Shape int

const (
	ShapeEmpty  Shape = iota // no fields: Red()
	ShapeTuple               // unnamed fields: Green(uint32, bool)
	ShapeStruct              // named fields: Yellow(remaining uint32)
)

// Arity is the field-count category the synthesizer switches on.
type Arity int

const (
	ArityNone Arity = iota // no field: no pointer accessor
	ArityOne               // exactly one field: returned without a wrapper
	ArityMany              // several fields: one result per field
)

// EnumInfo describes one enum declaration.
type EnumInfo struct {
	Name       string             // Generated type name, e.g. "Light"
	DeclName   string             // Declaration name, e.g. "enumLight"
	TypeParams []TypeParamInfo    // Type parameters, mirrored by the error type
	Variants   []VariantInfo      // Variants in declaration order
	DeriveErr  options.DeriveEnum // Optional behaviors of the error type
	Imports    []Import           // Packages referenced by field types and constraints
	Position   token.Position     // Location of the declaration
}

// Exported reports whether the generated type is exported.
func (e *EnumInfo) Exported() bool {
	return token.IsExported(e.Name)
}

// ErrorName returns the name of the companion error type.
func (e *EnumInfo) ErrorName() string {
	return e.Name + "Error"
}

// ErrorConstructor returns the unexported constructor of the error type.
func (e *EnumInfo) ErrorConstructor() string {
	return "new" + naming.Exported(e.ErrorName())
}

// Constructor returns the constructor of a variant, e.g. "LightRed".
func (e *EnumInfo) Constructor(v *VariantInfo) string {
	return e.Name + v.GoName
}

// TagConst returns the tag constant of a variant, e.g. "lightTagRed".
func (e *EnumInfo) TagConst(v *VariantInfo) string {
	return naming.LowerCamel(e.Name) + "Tag" + v.GoName
}

// IsGeneric reports whether the declaration has type parameters.
func (e *EnumInfo) IsGeneric() bool {
	return len(e.TypeParams) > 0
}

// Variant returns the variant with the given declared name, or nil.
func (e *EnumInfo) Variant(name string) *VariantInfo {
	for i := range e.Variants {
		if e.Variants[i].Name == name {
			return &e.Variants[i]
		}
	}

	return nil
}

// TypeParamInfo is a single type parameter.
type TypeParamInfo struct {
	Name       string // e.g. "T"
	Constraint string // e.g. "comparable"
}

// VariantInfo describes a single variant.
type VariantInfo struct {
	Name     string         // Declared name, e.g. "Rust_IsCoolThough"
	GoName   string         // Converted name, e.g. "RustIsCoolThough"
	Shape    Shape          // Declared field layout
	Fields   []FieldInfo    // Fields in declaration order
	Position token.Position // Location of the method
}

// Arity returns the field-count category of the variant.
func (v *VariantInfo) Arity() Arity {
	switch {
	case common.IsEmpty(v.Fields):
		return ArityNone
	case common.IsSingle(v.Fields):
		return ArityOne
	default:
		return ArityMany
	}
}

// FieldInfo describes a variant field.
type FieldInfo struct {
	Index int    // Position in the variant
	Name  string // Declared name, empty for tuple fields
	Type  string // Type expression relative to the declaring package
}

// Import is a package referenced by generated code.
type Import struct {
	Alias string // Name used in type expressions
	Path  string // Import path
}

// PackageEnums holds the reflection result for one package.
type PackageEnums struct {
	Path        string // Import path
	Name        string // Package name
	Dir         string // Directory holding the package sources
	Enums       []*EnumInfo
	Diagnostics diagnostic.Diagnostics
}
