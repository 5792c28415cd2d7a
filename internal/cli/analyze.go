package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"enumtry-generator/internal/analyze"
	"enumtry-generator/internal/naming"
	"enumtry-generator/options"
)

// AnalyzeCmd prints the reflected model of enum declarations.
type AnalyzeCmd struct {
	LoadFlags `embed:""`

	Format string `help:"Output format." enum:"yaml,toml,json" default:"yaml" short:"f"`
	Output string `short:"o" help:"Write the report to this file instead of stdout." type:"path"`
}

// Run is called by Kong when the analyze command is executed.
func (c *AnalyzeCmd) Run(ctx context.Context, logger *slog.Logger, console *Console) error {
	pkgs, err := c.load(ctx, logger, options.DeriveNone)
	if err != nil {
		return err
	}

	// Diagnostics are part of the report; they also go to the console so a
	// redirected report does not hide them.
	console.Diagnostics(pkgs)

	report := BuildReport(pkgs)

	if c.Output == "" {
		return WriteReport(console.Out, report, c.Format)
	}

	data, err := EncodeReport(report, c.Format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(c.Output, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	logger.Info("wrote report", "path", c.Output, "format", c.Format)

	return nil
}

// Report is the serialized form of reflected packages.
type Report struct {
	Packages []PackageReport `json:"packages" yaml:"packages" toml:"packages"`
}

// PackageReport describes one package.
type PackageReport struct {
	Path        string             `json:"path" yaml:"path" toml:"path"`
	Name        string             `json:"name" yaml:"name" toml:"name"`
	Dir         string             `json:"dir,omitempty" yaml:"dir,omitempty" toml:"dir,omitempty"`
	Enums       []EnumReport       `json:"enums,omitempty" yaml:"enums,omitempty" toml:"enums,omitempty"`
	Diagnostics []DiagnosticReport `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty" toml:"diagnostics,omitempty"`
}

// EnumReport describes one generated type.
type EnumReport struct {
	Name        string          `json:"name" yaml:"name" toml:"name"`
	Declaration string          `json:"declaration" yaml:"declaration" toml:"declaration"`
	Error       string          `json:"error" yaml:"error" toml:"error"`
	Exported    bool            `json:"exported" yaml:"exported" toml:"exported"`
	TypeParams  []string        `json:"type_params,omitempty" yaml:"type_params,omitempty" toml:"type_params,omitempty"`
	DeriveErr   []string        `json:"derive_err,omitempty" yaml:"derive_err,omitempty" toml:"derive_err,omitempty"`
	Imports     []string        `json:"imports,omitempty" yaml:"imports,omitempty" toml:"imports,omitempty"`
	Position    string          `json:"position,omitempty" yaml:"position,omitempty" toml:"position,omitempty"`
	Variants    []VariantReport `json:"variants,omitempty" yaml:"variants,omitempty" toml:"variants,omitempty"`
}

// VariantReport describes one variant and the accessors generated for it.
type VariantReport struct {
	Name      string           `json:"name" yaml:"name" toml:"name"`
	GoName    string           `json:"go_name" yaml:"go_name" toml:"go_name"`
	Shape     string           `json:"shape" yaml:"shape" toml:"shape"`
	Arity     string           `json:"arity" yaml:"arity" toml:"arity"`
	Fields    []FieldReport    `json:"fields,omitempty" yaml:"fields,omitempty" toml:"fields,omitempty"`
	Accessors []AccessorReport `json:"accessors" yaml:"accessors" toml:"accessors"`
}

// FieldReport describes one variant field.
type FieldReport struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Type string `json:"type" yaml:"type" toml:"type"`
}

// AccessorReport names a generated accessor in Go and snake_case form.
type AccessorReport struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Snake string `json:"snake" yaml:"snake" toml:"snake"`
}

// DiagnosticReport is a serialized diagnostic.
type DiagnosticReport struct {
	Severity    string   `json:"severity" yaml:"severity" toml:"severity"`
	Code        string   `json:"code" yaml:"code" toml:"code"`
	Message     string   `json:"message" yaml:"message" toml:"message"`
	Position    string   `json:"position,omitempty" yaml:"position,omitempty" toml:"position,omitempty"`
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty" toml:"suggestions,omitempty"`
}

// BuildReport converts reflected packages into a Report.
func BuildReport(pkgs []*analyze.PackageEnums) Report {
	var r Report

	for _, pe := range pkgs {
		pr := PackageReport{Path: pe.Path, Name: pe.Name, Dir: pe.Dir}

		for _, e := range pe.Enums {
			pr.Enums = append(pr.Enums, buildEnumReport(e))
		}

		for _, d := range pe.Diagnostics.All() {
			dr := DiagnosticReport{
				Severity:    d.Severity.String(),
				Code:        d.Code,
				Message:     d.Message,
				Suggestions: d.Suggestions,
			}

			if d.Position.IsValid() {
				dr.Position = d.Position.String()
			}

			pr.Diagnostics = append(pr.Diagnostics, dr)
		}

		r.Packages = append(r.Packages, pr)
	}

	return r
}

func buildEnumReport(e *analyze.EnumInfo) EnumReport {
	er := EnumReport{
		Name:        e.Name,
		Declaration: e.DeclName,
		Error:       e.ErrorName(),
		Exported:    e.Exported(),
		DeriveErr:   e.DeriveErr.Names(),
	}

	if e.Position.IsValid() {
		er.Position = e.Position.String()
	}

	for _, tp := range e.TypeParams {
		er.TypeParams = append(er.TypeParams, tp.Name+" "+tp.Constraint)
	}

	for _, imp := range e.Imports {
		er.Imports = append(er.Imports, imp.Alias+" "+imp.Path)
	}

	for i := range e.Variants {
		v := &e.Variants[i]

		vr := VariantReport{
			Name:   v.Name,
			GoName: v.GoName,
			Shape:  v.Shape.String(),
			Arity:  v.Arity().String(),
		}

		for _, f := range v.Fields {
			vr.Fields = append(vr.Fields, FieldReport{Name: f.Name, Type: f.Type})
		}

		for _, name := range AccessorNames(v) {
			vr.Accessors = append(vr.Accessors, AccessorReport{Name: name, Snake: naming.Snake(name)})
		}

		er.Variants = append(er.Variants, vr)
	}

	return er
}

// AccessorNames returns the accessor methods generated for a variant.
func AccessorNames(v *analyze.VariantInfo) []string {
	names := []string{"Is" + v.GoName, "TryAs" + v.GoName}
	if v.Arity() != analyze.ArityNone {
		names = append(names, "TryAs"+v.GoName+"Mut")
	}

	return append(names, "TryInto"+v.GoName)
}

// EncodeReport serializes r in the given format.
func EncodeReport(r Report, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml", "":
		return yaml.Marshal(r)
	case "toml":
		return toml.Marshal(r)
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteReport encodes r to w.
func WriteReport(w io.Writer, r Report, format string) error {
	data, err := EncodeReport(r, format)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}
