package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"log/slog"
	"text/template"

	"enumtry-generator/internal/analyze"
	"enumtry-generator/internal/naming"
)

// GeneratorName appears in the "Code generated" header of every output file.
const GeneratorName = "enumtry-generator"

// DefaultFilename is the generated file of a package holding several enums.
const DefaultFilename = "enumtry_gen.go"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Filename overrides the name of the generated file.
	Filename string
	// NameAfterEnum names the file of a package with a single enum after it
	// ("light_enumtry.go") when Filename is empty.
	NameAfterEnum bool
	// OutputDir is the directory generated files are written to. Empty means
	// the directory of each package.
	OutputDir string
	// GenerateComments enables doc comments on generated identifiers.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		GenerateComments: true,
	}
}

// Generator generates Go code from reflected enum declarations.
type Generator struct {
	config GeneratorConfig
	logger *slog.Logger
}

// NewGenerator creates a new Generator with the given configuration. A nil
// logger discards log output.
func NewGenerator(config GeneratorConfig, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Generator{config: config, logger: logger}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory of the package the file belongs to.
	Dir string
	// Filename is the name of the file (e.g., "enumtry_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates one file per package. Packages without enums produce no
// file. Packages with error diagnostics are rejected.
func (g *Generator) Generate(pkgs []*analyze.PackageEnums) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for _, pe := range pkgs {
		if err := pe.Diagnostics.Err(); err != nil {
			return nil, fmt.Errorf("package %s: %w", pe.Path, err)
		}

		if len(pe.Enums) == 0 {
			g.logger.Debug("no enums in package", "package", pe.Path)

			continue
		}

		file, err := g.GeneratePackage(pe)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", pe.Path, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// GeneratePackage generates the file holding every enum of a package.
// When formatting fails, the unformatted source is returned alongside the
// error and written next to the output as "*.unformatted.go".
func (g *Generator) GeneratePackage(pe *analyze.PackageEnums) (*GeneratedFile, error) {
	data := g.buildTemplateData(pe, g.filename(pe))

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	dir := pe.Dir

	// Format the generated code
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		outDir := g.config.OutputDir
		if outDir == "" {
			outDir = dir
		}

		if werr := writeDebugUnformatted(outDir, data.Filename, buf.Bytes()); werr != nil {
			g.logger.Warn("could not write unformatted output", "error", werr)
		}

		return &GeneratedFile{
			Dir:      dir,
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	g.logger.Debug("generated file",
		"package", pe.Path,
		"file", data.Filename,
		"enums", len(pe.Enums),
		"bytes", len(formatted))

	return &GeneratedFile{
		Dir:      dir,
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// filename returns the name of the generated file of a package.
func (g *Generator) filename(pe *analyze.PackageEnums) string {
	if g.config.Filename != "" {
		return g.config.Filename
	}

	if g.config.NameAfterEnum && len(pe.Enums) == 1 {
		return EnumFilename(pe.Enums[0])
	}

	return DefaultFilename
}

// EnumFilename returns the file name used for a single enum ("light_enumtry.go").
func EnumFilename(enum *analyze.EnumInfo) string {
	return naming.Snake(enum.Name) + "_enumtry.go"
}

// Template for the generated file

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by {{.Generator}}. DO NOT EDIT.

//go:build !{{.BuildTag}}

package {{.PackageName}}

{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{range .Enums}}{{template "enum" .}}{{template "error" .}}{{end}}`))

var _ = template.Must(fileTemplate.New("enum").Parse(`
{{- $e := . -}}
{{if $.GenerateComments}}// {{.Name}} is the tagged union generated from {{.DeclName}}.
{{if .First}}// The zero value holds the {{.First}} variant.
{{end}}{{end}}type {{.Name}}{{.TypeDecl}} struct {
	tag int
{{range .Storage}}	{{.Name}} {{.Type}}
{{end}}}
{{if .Variants}}
const (
{{range $i, $v := .Variants}}	{{$v.Tag}}{{if eq $i 0}} = iota{{end}}
{{end}})
{{end}}
{{range .Variants}}
{{if $.GenerateComments}}// {{.Constructor}} returns a {{$e.Name}} holding the {{.Name}} variant.
{{end}}func {{.Constructor}}{{$e.TypeDecl}}({{.Params}}) {{$e.Type}} {
	return {{$e.Type}}{tag: {{.Tag}}{{range .Fields}}, {{.Storage}}: {{.Param}}{{end}}}
}
{{end}}
{{range .Variants}}
{{if $.GenerateComments}}// Is{{.GoName}} reports whether {{$e.Recv}} holds the {{$e.Name}}.{{.Name}} variant.
{{end}}func ({{$e.Recv}} {{$e.Type}}) Is{{.GoName}}() bool {
	return {{$e.Recv}}.tag == {{.Tag}}
}

{{if $.GenerateComments}}// TryAs{{.GoName}} returns {{if .HasFields}}{{.FieldsDoc}} of the {{$e.Name}}.{{.Name}} variant held by {{$e.Recv}}{{else}}nil if {{$e.Recv}} holds the {{$e.Name}}.{{.Name}} variant{{end}}.
// Otherwise it returns a {{$e.ErrorName}} naming the held variant.
{{end}}func ({{$e.Recv}} {{$e.Type}}) TryAs{{.GoName}}() {{.Results}} {
	if {{$e.Recv}}.tag != {{.Tag}} {
		return {{.Zero}}{{$e.NewErrorCall}}("{{.Name}}", {{$e.Recv}}.variantName(), nil)
	}

	return {{.Values}}nil
}
{{if .HasFields}}
{{if $.GenerateComments}}// TryAs{{.GoName}}Mut returns pointers to {{.FieldsDoc}} of the {{$e.Name}}.{{.Name}} variant held by {{$e.Recv}}.
// Otherwise it returns a {{$e.ErrorName}} naming the held variant.
{{end}}func ({{$e.Recv}} *{{$e.Type}}) TryAs{{.GoName}}Mut() {{.PtrResults}} {
	if {{$e.Recv}}.tag != {{.Tag}} {
		return {{.Zero}}{{$e.NewErrorCall}}("{{.Name}}", {{$e.Recv}}.variantName(), nil)
	}

	return {{.Pointers}}nil
}
{{end}}
{{if $.GenerateComments}}// TryInto{{.GoName}} returns {{if .HasFields}}{{.FieldsDoc}} of the {{$e.Name}}.{{.Name}} variant held by {{$e.Recv}}{{else}}nil if {{$e.Recv}} holds the {{$e.Name}}.{{.Name}} variant{{end}}.
// Otherwise the returned {{$e.ErrorName}} keeps {{$e.Recv}}, see IntoValue.
{{end}}func ({{$e.Recv}} {{$e.Type}}) TryInto{{.GoName}}() {{.Results}} {
	if {{$e.Recv}}.tag != {{.Tag}} {
		return {{.Zero}}{{$e.NewErrorCall}}("{{.Name}}", {{$e.Recv}}.variantName(), &{{$e.Recv}})
	}

	return {{.Values}}nil
}
{{end}}
{{if $.GenerateComments}}// variantName returns the declared name of the variant {{.Recv}} holds.
{{end}}func ({{.Recv}} {{.Type}}) variantName() string {
	switch {{.Recv}}.tag {
{{range .Variants}}	case {{.Tag}}:
		return "{{.Name}}"
{{end}}	default:
		return ""
	}
}
`))

var _ = template.Must(fileTemplate.New("error").Parse(`
{{if $.GenerateComments}}// {{.ErrorName}} reports that a {{.Name}} held another variant than the one an
// accessor asked for.
{{end}}type {{.ErrorName}}{{.TypeDecl}} struct {
	expected string
	actual   string
	value    *{{.Type}}
}

func {{.NewError}}{{.TypeDecl}}(expected, actual string, value *{{.Type}}) *{{.ErrorType}} {
	return &{{.ErrorType}}{expected: expected, actual: actual, value: value}
}

{{if $.GenerateComments}}// Expected returns the name of the variant the accessor asked for.
{{end}}func (e *{{.ErrorType}}) Expected() string {
	return e.expected
}

{{if $.GenerateComments}}// Actual returns the name of the variant the {{.Name}} held.
{{end}}func (e *{{.ErrorType}}) Actual() string {
	return e.actual
}

{{if $.GenerateComments}}// Value returns the {{.Name}} the error was created from, if it was kept.
{{end}}func (e *{{.ErrorType}}) Value() ({{.Type}}, bool) {
	if e.value == nil {
		var zero {{.Type}}

		return zero, false
	}

	return *e.value, true
}

{{if $.GenerateComments}}// IntoValue returns the {{.Name}} the error was created from, if it was kept,
// and releases it from the error.
{{end}}func (e *{{.ErrorType}}) IntoValue() ({{.Type}}, bool) {
	v, ok := e.Value()
	e.value = nil

	return v, ok
}
{{if .Debug}}
{{if $.GenerateComments}}// GoString implements fmt.GoStringer.
{{end}}func (e *{{.ErrorType}}) GoString() string {
	return fmt.Sprintf("{{.ErrorName}}{expected: %q, actual: %q, value: %#v}", e.expected, e.actual, e.value)
}

{{if $.GenerateComments}}// Error implements error.
{{end}}func (e *{{.ErrorType}}) Error() string {
	return "expected {{.Name}}." + e.expected + ", but got {{.Name}}." + e.actual
}
{{if not .Generic}}
var _ error = (*{{.ErrorName}})(nil)
{{end}}{{end}}
{{- if .Equal}}
{{if $.GenerateComments}}// Equal reports whether e and other name the same variants and keep equal values.
{{end}}func (e *{{.ErrorType}}) Equal(other *{{.ErrorType}}) bool {
	if e == nil || other == nil {
		return e == other
	}

	return e.expected == other.expected &&
		e.actual == other.actual &&
		reflect.DeepEqual(e.value, other.value)
}
{{end}}
{{- if .Compare}}
{{if $.GenerateComments}}// Compare orders errors by expected variant, then actual variant, then
// whether a value was kept.
{{end}}func (e *{{.ErrorType}}) Compare(other *{{.ErrorType}}) int {
	if c := cmp.Compare(e.expected, other.expected); c != 0 {
		return c
	}

	if c := cmp.Compare(e.actual, other.actual); c != 0 {
		return c
	}

	switch {
	case e.value == nil && other.value != nil:
		return -1
	case e.value != nil && other.value == nil:
		return 1
	default:
		return 0
	}
}
{{end}}
{{- if .Hash}}
{{if $.GenerateComments}}// Hash returns the FNV-1a hash of the expected and actual variant names.
{{end}}func (e *{{.ErrorType}}) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(e.expected))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(e.actual))

	return h.Sum64()
}
{{end}}
{{- if .Clone}}
{{if $.GenerateComments}}// Clone returns a copy of e that keeps its own copy of the value.
{{end}}func (e *{{.ErrorType}}) Clone() *{{.ErrorType}} {
	c := *e
	if e.value != nil {
		v := *e.value
		c.value = &v
	}

	return &c
}
{{end}}`))
