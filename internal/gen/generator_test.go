package gen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enumtry-generator/internal/analyze"
	"enumtry-generator/internal/diagnostic"
	"enumtry-generator/options"
)

func lightEnum() *analyze.EnumInfo {
	return &analyze.EnumInfo{
		Name:     "Light",
		DeclName: "enumLight",
		Variants: []analyze.VariantInfo{
			{Name: "Red", GoName: "Red", Shape: analyze.ShapeEmpty},
			{Name: "Yellow", GoName: "Yellow", Shape: analyze.ShapeStruct, Fields: []analyze.FieldInfo{
				{Index: 0, Name: "remaining", Type: "uint32"},
			}},
			{Name: "Green", GoName: "Green", Shape: analyze.ShapeTuple, Fields: []analyze.FieldInfo{
				{Index: 0, Type: "uint32"},
				{Index: 1, Type: "bool"},
			}},
		},
		DeriveErr: options.DeriveDebug | options.DeriveEqual,
	}
}

func genericEnum() *analyze.EnumInfo {
	return &analyze.EnumInfo{
		Name:     "Generic",
		DeclName: "enumGenerics",
		TypeParams: []analyze.TypeParamInfo{
			{Name: "T", Constraint: "comparable"},
			{Name: "U", Constraint: "any"},
		},
		Variants: []analyze.VariantInfo{
			{Name: "A", GoName: "A", Shape: analyze.ShapeTuple, Fields: []analyze.FieldInfo{
				{Index: 0, Type: "T"},
			}},
			{Name: "B", GoName: "B", Shape: analyze.ShapeTuple, Fields: []analyze.FieldInfo{
				{Index: 0, Type: "T"},
				{Index: 1, Type: "[]U"},
			}},
		},
	}
}

func generateOne(t *testing.T, config GeneratorConfig, enums ...*analyze.EnumInfo) string {
	t.Helper()

	pe := &analyze.PackageEnums{Path: "example.com/traffic", Name: "traffic", Enums: enums}

	file, err := NewGenerator(config, nil).GeneratePackage(pe)
	require.NoError(t, err)

	assertParses(t, file)

	return string(file.Content)
}

func assertParses(t *testing.T, file *GeneratedFile) {
	t.Helper()

	_, err := parser.ParseFile(token.NewFileSet(), file.Filename, file.Content, parser.ParseComments)
	require.NoError(t, err, string(file.Content))
}

func TestGenerator_GeneratePackage_Light(t *testing.T) {
	content := generateOne(t, DefaultGeneratorConfig(), lightEnum())

	// Header
	assert.True(t, strings.HasPrefix(content, "// Code generated by enumtry-generator. DO NOT EDIT."))
	assert.Contains(t, content, "//go:build !enumtry")
	assert.Contains(t, content, "package traffic")
	assert.Contains(t, content, `"fmt"`)
	assert.Contains(t, content, `"reflect"`)
	assert.NotContains(t, content, `"cmp"`)

	// Type, tags and constructors
	assert.Contains(t, content, "type Light struct {")
	assert.Contains(t, content, "lightTagRed = iota")
	assert.Contains(t, content, "func LightRed() Light {")
	assert.Contains(t, content, "return Light{tag: lightTagRed}")
	assert.Contains(t, content, "func LightYellow(remaining uint32) Light {")
	assert.Contains(t, content, "return Light{tag: lightTagYellow, yellowF0: remaining}")
	assert.Contains(t, content, "func LightGreen(v0 uint32, v1 bool) Light {")
	assert.Contains(t, content, "return Light{tag: lightTagGreen, greenF0: v0, greenF1: v1}")

	// Accessors of an empty variant
	assert.Contains(t, content, "func (l Light) IsRed() bool {")
	assert.Contains(t, content, "func (l Light) TryAsRed() error {")
	assert.Contains(t, content, "func (l Light) TryIntoRed() error {")
	assert.NotContains(t, content, "TryAsRedMut")

	// Accessors of a single field variant
	assert.Contains(t, content, "func (l Light) TryAsYellow() (remaining uint32, err error) {")
	assert.Contains(t, content, "func (l *Light) TryAsYellowMut() (remaining *uint32, err error) {")
	assert.Contains(t, content, "return &l.yellowF0, nil")

	// Accessors of a multi field variant
	assert.Contains(t, content, "func (l Light) TryAsGreen() (v0 uint32, v1 bool, err error) {")
	assert.Contains(t, content, "return l.greenF0, l.greenF1, nil")
	assert.Contains(t, content, "func (l *Light) TryAsGreenMut() (v0 *uint32, v1 *bool, err error) {")
	assert.Contains(t, content, "return &l.greenF0, &l.greenF1, nil")
	assert.Contains(t, content, `return v0, v1, newLightError("Green", l.variantName(), nil)`)
	assert.Contains(t, content, `return v0, v1, newLightError("Green", l.variantName(), &l)`)

	// Variant names
	assert.Contains(t, content, "func (l Light) variantName() string {")
	assert.Contains(t, content, `return "Yellow"`)

	// Error type
	assert.Contains(t, content, "type LightError struct {")
	assert.Contains(t, content, "func (e *LightError) Expected() string {")
	assert.Contains(t, content, "func (e *LightError) Actual() string {")
	assert.Contains(t, content, "func (e *LightError) Value() (Light, bool) {")
	assert.Contains(t, content, "func (e *LightError) IntoValue() (Light, bool) {")
	assert.Contains(t, content, "func (e *LightError) GoString() string {")
	assert.Contains(t, content, `return "expected Light." + e.expected + ", but got Light." + e.actual`)
	assert.Contains(t, content, "var _ error = (*LightError)(nil)")
	assert.Contains(t, content, "func (e *LightError) Equal(other *LightError) bool {")
	assert.NotContains(t, content, "Compare(")
	assert.NotContains(t, content, "Hash()")
	assert.NotContains(t, content, "Clone()")

	// Doc comments
	assert.Contains(t, content, "// Light is the tagged union generated from enumLight.")
	assert.Contains(t, content, "// The zero value holds the Red variant.")
	assert.Contains(t, content, "// LightRed returns a Light holding the Red variant.")
	assert.Contains(t, content, "// IsYellow reports whether l holds the Light.Yellow variant.")
	assert.Contains(t, content, "// TryAsRed returns nil if l holds the Light.Red variant.\n"+
		"// Otherwise it returns a LightError naming the held variant.")
	assert.Contains(t, content, "// TryAsYellowMut returns pointers to the field remaining of the Light.Yellow variant held by l.\n"+
		"// Otherwise it returns a LightError naming the held variant.")
	assert.Contains(t, content, "// TryIntoGreen returns the fields v0, v1 of the Light.Green variant held by l.\n"+
		"// Otherwise the returned LightError keeps l, see IntoValue.")
}

func TestGenerator_GeneratePackage_WithoutDebug(t *testing.T) {
	enum := lightEnum()
	enum.DeriveErr = options.DeriveNone

	content := generateOne(t, DefaultGeneratorConfig(), enum)

	assert.Contains(t, content, "func (l Light) TryAsRed() *LightError {")
	assert.Contains(t, content, "func (l Light) TryAsYellow() (remaining uint32, err *LightError) {")
	assert.NotContains(t, content, "Error() string")
	assert.NotContains(t, content, "import")
}

func TestGenerator_GeneratePackage_AllDerives(t *testing.T) {
	enum := lightEnum()
	enum.DeriveErr = options.DeriveAll

	content := generateOne(t, DefaultGeneratorConfig(), enum)

	for _, imp := range []string{`"cmp"`, `"fmt"`, `"hash/fnv"`, `"reflect"`} {
		assert.Contains(t, content, imp)
	}

	assert.Contains(t, content, "func (e *LightError) Compare(other *LightError) int {")
	assert.Contains(t, content, "func (e *LightError) Hash() uint64 {")
	assert.Contains(t, content, "func (e *LightError) Clone() *LightError {")
}

func TestGenerator_GeneratePackage_Generic(t *testing.T) {
	content := generateOne(t, DefaultGeneratorConfig(), genericEnum())

	assert.Contains(t, content, "type Generic[T comparable, U any] struct {")
	assert.Contains(t, content, "func GenericA[T comparable, U any](v0 T) Generic[T, U] {")
	assert.Contains(t, content, "return Generic[T, U]{tag: genericTagA, aF0: v0}")
	assert.Contains(t, content, "func (g Generic[T, U]) TryAsA() (v0 T, err *GenericError[T, U]) {")
	assert.Contains(t, content, "func (g *Generic[T, U]) TryAsBMut() (v0 *T, v1 *[]U, err *GenericError[T, U]) {")
	assert.Contains(t, content, `return v0, newGenericError[T, U]("A", g.variantName(), nil)`)
	assert.Contains(t, content, "type GenericError[T comparable, U any] struct {")
	assert.Contains(t, content,
		"func newGenericError[T comparable, U any](expected, actual string, value *Generic[T, U]) *GenericError[T, U] {")
	assert.Contains(t, content, "func (e *GenericError[T, U]) Value() (Generic[T, U], bool) {")
	assert.NotContains(t, content, "var _ error")
}

func TestGenerator_GeneratePackage_ZeroVariants(t *testing.T) {
	enum := &analyze.EnumInfo{Name: "nothing", DeclName: "enumnothing"}

	content := generateOne(t, DefaultGeneratorConfig(), enum)

	assert.Contains(t, content, "type nothing struct {")
	assert.Contains(t, content, "type nothingError struct {")
	assert.Contains(t, content, "func newNothingError(expected, actual string, value *nothing) *nothingError {")
	assert.Contains(t, content, "func (e *nothingError) IntoValue() (nothing, bool) {")
	assert.NotContains(t, content, "func (n nothing) Is")
	assert.NotContains(t, content, "const (")
	assert.NotContains(t, content, "The zero value holds")
}

func TestGenerator_GeneratePackage_ShadowedNames(t *testing.T) {
	enum := &analyze.EnumInfo{
		Name:     "Light",
		DeclName: "enumLight",
		Variants: []analyze.VariantInfo{
			{Name: "Set", GoName: "Set", Shape: analyze.ShapeStruct, Fields: []analyze.FieldInfo{
				{Index: 0, Name: "l", Type: "int"},
				{Index: 1, Name: "err", Type: "string"},
			}},
		},
	}

	content := generateOne(t, DefaultGeneratorConfig(), enum)

	assert.Contains(t, content, "func LightSet(l_ int, err_ string) Light {")
	assert.Contains(t, content, "func (l Light) TryAsSet() (l_ int, err_ string, err *LightError) {")
	assert.Contains(t, content, `return l_, err_, newLightError("Set", l.variantName(), nil)`)
}

func TestGenerator_GeneratePackage_MixedCaseNames(t *testing.T) {
	enum := &analyze.EnumInfo{
		Name:     "Mixed",
		DeclName: "enumMixed",
		Variants: []analyze.VariantInfo{
			{Name: "XMLIsNotCool", GoName: "XMLIsNotCool", Shape: analyze.ShapeEmpty},
			{Name: "Rust_IsCoolThough", GoName: "RustIsCoolThough", Shape: analyze.ShapeTuple, Fields: []analyze.FieldInfo{
				{Index: 0, Type: "uint32"},
			}},
		},
	}

	content := generateOne(t, DefaultGeneratorConfig(), enum)

	assert.Contains(t, content, "func (m Mixed) IsXMLIsNotCool() bool {")
	assert.Contains(t, content, "func (m Mixed) TryAsRustIsCoolThough() (v0 uint32, err *MixedError) {")
	assert.Contains(t, content, "return m.rustIsCoolThoughF0, nil")
	assert.Contains(t, content, "mixedTagXMLIsNotCool = iota")
	assert.Contains(t, content, `return "Rust_IsCoolThough"`)
}

func TestGenerator_GeneratePackage_NoComments(t *testing.T) {
	config := DefaultGeneratorConfig()
	config.GenerateComments = false

	content := generateOne(t, config, lightEnum())

	for line := range strings.SplitSeq(content, "\n") {
		if strings.HasPrefix(line, "//") {
			assert.True(t,
				strings.HasPrefix(line, "// Code generated") || strings.HasPrefix(line, "//go:build"),
				"unexpected comment %q", line)
		}
	}
}

func TestGenerator_GeneratePackage_Imports(t *testing.T) {
	enum := &analyze.EnumInfo{
		Name:     "Shape",
		DeclName: "enumShape",
		Variants: []analyze.VariantInfo{
			{Name: "Render", GoName: "Render", Shape: analyze.ShapeTuple, Fields: []analyze.FieldInfo{
				{Index: 0, Type: "*template.Template"},
				{Index: 1, Type: "*template2.Template"},
			}},
		},
		Imports: []analyze.Import{
			{Alias: "template2", Path: "html/template"},
			{Alias: "template", Path: "text/template"},
		},
	}

	content := generateOne(t, DefaultGeneratorConfig(), enum)

	assert.Contains(t, content, `template2 "html/template"`)
	assert.Contains(t, content, "\t\"text/template\"")
	assert.NotContains(t, content, `template "text/template"`)
}

func TestGenerator_Generate(t *testing.T) {
	pkgs := []*analyze.PackageEnums{
		{Path: "example.com/traffic", Name: "traffic", Dir: "/tmp/traffic", Enums: []*analyze.EnumInfo{lightEnum(), genericEnum()}},
		{Path: "example.com/empty", Name: "empty", Dir: "/tmp/empty"},
	}

	files, err := NewGenerator(DefaultGeneratorConfig(), nil).Generate(pkgs)
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, DefaultFilename, files[0].Filename)
	assert.Equal(t, "/tmp/traffic", files[0].Dir)
	assert.Contains(t, string(files[0].Content), "type Light struct {")
	assert.Contains(t, string(files[0].Content), "type Generic[T comparable, U any] struct {")
}

func TestGenerator_Generate_RejectsDiagnostics(t *testing.T) {
	pe := &analyze.PackageEnums{Path: "example.com/broken", Name: "broken"}
	pe.Diagnostics.AddError(diagnostic.CodeNotEnum, "`enumStruct` is not an enum", "enumStruct", "")

	_, err := NewGenerator(DefaultGeneratorConfig(), nil).Generate([]*analyze.PackageEnums{pe})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "`enumStruct` is not an enum")
}

func TestGenerator_Filename(t *testing.T) {
	single := &analyze.PackageEnums{Enums: []*analyze.EnumInfo{lightEnum()}}
	several := &analyze.PackageEnums{Enums: []*analyze.EnumInfo{lightEnum(), genericEnum()}}

	tests := []struct {
		name   string
		config GeneratorConfig
		pe     *analyze.PackageEnums
		want   string
	}{
		{"default", GeneratorConfig{}, single, "enumtry_gen.go"},
		{"override", GeneratorConfig{Filename: "light.go", NameAfterEnum: true}, single, "light.go"},
		{"after enum", GeneratorConfig{NameAfterEnum: true}, single, "light_enumtry.go"},
		{"after enum with several", GeneratorConfig{NameAfterEnum: true}, several, "enumtry_gen.go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewGenerator(tt.config, nil).filename(tt.pe))
		})
	}
}

func TestWriteFiles(t *testing.T) {
	pkgDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "nested")

	files := []GeneratedFile{{Dir: pkgDir, Filename: "enumtry_gen.go", Content: []byte("package traffic\n")}}

	paths, err := WriteFiles(files, "")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(pkgDir, "enumtry_gen.go")}, paths)

	paths, err = WriteFiles(files, outDir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(outDir, "enumtry_gen.go")}, paths)

	b, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "package traffic\n", string(b))
}

func TestWriteDebugUnformatted(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, writeDebugUnformatted(dir, "enumtry_gen.go", []byte("package x {")))

	b, err := os.ReadFile(filepath.Join(dir, "enumtry_gen.unformatted.go"))
	require.NoError(t, err)
	assert.Equal(t, "package x {", string(b))

	require.NoError(t, writeDebugUnformatted("", "enumtry_gen.go", nil))
}
