package gen

import (
	"fmt"
	"sort"
	"strings"

	"enumtry-generator/internal/analyze"
	"enumtry-generator/options"
)

// templateData holds all data needed for the file template.
type templateData struct {
	Generator        string
	BuildTag         string
	PackageName      string
	Filename         string
	Imports          []importSpec
	Enums            []enumData
	GenerateComments bool
}

// enumData holds the data of one generated type and its error type.
type enumData struct {
	Name      string // Generated type name
	DeclName  string // Declaration the type was generated from
	TypeDecl  string // Type parameter declaration, e.g. "[T comparable]"
	Type      string // Instantiated type, e.g. "Generic[T]"
	Recv      string // Receiver name
	ErrorName string // Error type name
	ErrorType string // Instantiated error type
	NewError  string // Unexported error constructor
	// NewErrorCall is NewError, instantiated explicitly when generic since a
	// nil value argument cannot infer the type arguments.
	NewErrorCall string
	// ErrResult is the error result of the accessors: "error" when the error
	// type implements it, the error type pointer otherwise.
	ErrResult string
	Generic   bool
	Storage   []storageField
	Variants  []variantData
	// First is the declared name of the variant held by the zero value.
	First string
	// GenerateComments mirrors templateData for the nested templates.
	GenerateComments bool

	Debug   bool
	Equal   bool
	Compare bool
	Hash    bool
	Clone   bool
}

// storageField is a struct field of the generated type.
type storageField struct {
	Name string
	Type string
}

// variantData holds the data of one variant's constructor and accessors.
type variantData struct {
	Name        string // Declared name
	GoName      string // Method name suffix
	Tag         string // Tag constant
	Constructor string
	HasFields   bool
	Fields      []fieldData

	// Params is the constructor parameter list.
	Params string
	// Results and PtrResults are the result lists of the value and pointer accessors.
	Results    string
	PtrResults string
	// Zero lists the named field results, each followed by ", ".
	Zero string
	// Values and Pointers list the stored fields and their addresses, each
	// followed by ", ".
	Values   string
	Pointers string
	// FieldsDoc describes what the accessors return.
	FieldsDoc string
}

// fieldData is a single variant field.
type fieldData struct {
	Param   string // Constructor parameter and accessor result name
	Storage string // Struct field holding the value
	Type    string
}

// buildTemplateData constructs the template data for the enums of a package.
func (g *Generator) buildTemplateData(pe *analyze.PackageEnums, filename string) *templateData {
	data := &templateData{
		Generator:        GeneratorName,
		BuildTag:         analyze.BuildTag,
		PackageName:      pe.Name,
		Filename:         filename,
		GenerateComments: g.config.GenerateComments,
	}

	imports := make(map[string]importSpec)

	for _, enum := range pe.Enums {
		data.Enums = append(data.Enums, g.buildEnumData(enum))

		for _, imp := range enum.Imports {
			imports[imp.Path] = newImportSpec(imp)
		}

		for _, imp := range deriveImports(enum.DeriveErr) {
			imports[imp.Path] = newImportSpec(imp)
		}
	}

	// Convert imports map to sorted slice
	for _, imp := range imports {
		data.Imports = append(data.Imports, imp)
	}

	sort.Slice(data.Imports, func(i, j int) bool {
		return data.Imports[i].Path < data.Imports[j].Path
	})

	return data
}

// deriveImports returns the standard library packages the derived error
// behaviors use.
func deriveImports(derive options.DeriveEnum) []analyze.Import {
	byPath := make(map[string]analyze.Import, len(analyze.ReservedImports))
	for _, imp := range analyze.ReservedImports {
		byPath[imp.Path] = imp
	}

	var out []analyze.Import

	if derive.Has(options.DeriveDebug) {
		out = append(out, byPath["fmt"])
	}

	if derive.Has(options.DeriveEqual) {
		out = append(out, byPath["reflect"])
	}

	if derive.Has(options.DeriveCompare) {
		out = append(out, byPath["cmp"])
	}

	if derive.Has(options.DeriveHash) {
		out = append(out, byPath["hash/fnv"])
	}

	return out
}

// buildEnumData constructs the template data of a single enum.
func (g *Generator) buildEnumData(enum *analyze.EnumInfo) enumData {
	target := typeRef{Name: enum.Name, Params: enum.TypeParams}
	errType := typeRef{Name: enum.ErrorName(), Params: enum.TypeParams}
	recv := receiverName(target)

	data := enumData{
		Name:         enum.Name,
		DeclName:     enum.DeclName,
		TypeDecl:     target.Decl(),
		Type:         target.String(),
		Recv:         recv,
		ErrorName:    errType.Name,
		ErrorType:    errType.String(),
		NewError:     enum.ErrorConstructor(),
		Generic:      enum.IsGeneric(),
		Debug:        enum.DeriveErr.Has(options.DeriveDebug),
		Equal:        enum.DeriveErr.Has(options.DeriveEqual),
		Compare:      enum.DeriveErr.Has(options.DeriveCompare),
		Hash:         enum.DeriveErr.Has(options.DeriveHash),
		Clone:        enum.DeriveErr.Has(options.DeriveClone),

		GenerateComments: g.config.GenerateComments,
	}

	data.NewErrorCall = data.NewError + errType.Args()
	data.ErrResult = "*" + data.ErrorType
	if data.Debug {
		data.ErrResult = "error"
	}

	// Identifiers visible in generated method bodies.
	reserved := newIdentSet(recv, "err", enum.Name, errType.Name, data.NewError)
	for _, p := range enum.TypeParams {
		reserved[p.Name] = true
	}

	for i := range enum.Variants {
		v := &enum.Variants[i]
		vd := g.buildVariantData(&data, enum, v, reserved.clone())

		data.Storage = append(data.Storage, storageFields(v)...)
		data.Variants = append(data.Variants, vd)
	}

	if len(enum.Variants) > 0 {
		data.First = enum.Variants[0].Name
	}

	return data
}

// storageFields returns the struct fields holding the values of a variant.
func storageFields(v *analyze.VariantInfo) []storageField {
	out := make([]storageField, 0, len(v.Fields))
	for i, f := range v.Fields {
		out = append(out, storageField{Name: storageName(v, i), Type: f.Type})
	}

	return out
}

// buildVariantData constructs the constructor and accessor data of a variant.
func (g *Generator) buildVariantData(
	enum *enumData,
	info *analyze.EnumInfo,
	v *analyze.VariantInfo,
	reserved identSet,
) variantData {
	vd := variantData{
		Name:        v.Name,
		GoName:      v.GoName,
		Tag:         info.TagConst(v),
		Constructor: info.Constructor(v),
		HasFields:   v.Arity() != analyze.ArityNone,
	}

	var (
		params, results, ptrResults []string
		zero, values, pointers      strings.Builder
		names                       []string
	)

	for i, f := range v.Fields {
		name := f.Name
		if v.Shape != analyze.ShapeStruct {
			name = fmt.Sprintf("v%d", i)
		}

		fd := fieldData{
			Param:   reserved.claim(name),
			Storage: storageName(v, i),
			Type:    f.Type,
		}
		vd.Fields = append(vd.Fields, fd)

		params = append(params, fd.Param+" "+fd.Type)
		results = append(results, fd.Param+" "+fd.Type)
		ptrResults = append(ptrResults, fd.Param+" *"+fd.Type)
		names = append(names, fd.Param)

		zero.WriteString(fd.Param + ", ")
		values.WriteString(enum.Recv + "." + fd.Storage + ", ")
		pointers.WriteString("&" + enum.Recv + "." + fd.Storage + ", ")
	}

	vd.Params = strings.Join(params, ", ")
	vd.Zero = zero.String()
	vd.Values = values.String()
	vd.Pointers = pointers.String()

	switch v.Arity() {
	case analyze.ArityNone:
		vd.Results = enum.ErrResult
	case analyze.ArityOne:
		vd.Results = "(" + results[0] + ", err " + enum.ErrResult + ")"
		vd.PtrResults = "(" + ptrResults[0] + ", err " + enum.ErrResult + ")"
		vd.FieldsDoc = "the field " + names[0]
	case analyze.ArityMany:
		vd.Results = "(" + strings.Join(results, ", ") + ", err " + enum.ErrResult + ")"
		vd.PtrResults = "(" + strings.Join(ptrResults, ", ") + ", err " + enum.ErrResult + ")"
		vd.FieldsDoc = "the fields " + strings.Join(names, ", ")
	}

	return vd
}
