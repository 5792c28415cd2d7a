package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
)

// Diagnostic codes reported by the reflector.
const (
	CodeNotEnum        = "not-enum"
	CodeUnknownType    = "unknown-type"
	CodeInvalidName    = "invalid-name"
	CodeInvalidVariant = "invalid-variant"
	CodeNameCollision  = "name-collision"
	CodeUnknownDerive  = "unknown-derive"
	CodeNoDeclarations = "no-declarations"
)

// Diagnostics holds all diagnostic information from reflection.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Decl is the enum declaration this relates to (if any).
	Decl string
	// Variant is the variant this relates to (if any).
	Variant string
	// Pos and End locate the diagnostic in the loaded file set. They may be invalid.
	Pos token.Pos
	End token.Pos
	// Position is Pos resolved against its file set.
	Position token.Position
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

//go:generate go tool stringer -type=Severity -trimprefix=Severity -linecomment -output=severity_string.go

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo    Severity = iota // info
	SeverityWarning                 // warning
	SeverityError                   // error
)

// Add appends d to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, decl, variant string) *Diagnostic {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Decl:     decl,
		Variant:  variant,
	})

	return &d.Errors[len(d.Errors)-1]
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, decl, variant string) *Diagnostic {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Decl:     decl,
		Variant:  variant,
	})

	return &d.Warnings[len(d.Warnings)-1]
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns errors, warnings and infos in that order.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Err returns a combined error from all error diagnostics, or nil if there
// are none.
func (d *Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}

	errs := make([]error, 0, len(d.Errors))
	for _, e := range d.Errors {
		errs = append(errs, errors.New(e.String()))
	}

	return errors.Join(errs...)
}

// At sets the source range of the diagnostic and resolves its position.
func (d *Diagnostic) At(fset *token.FileSet, pos, end token.Pos) *Diagnostic {
	d.Pos = pos
	d.End = end

	if fset != nil && pos.IsValid() {
		d.Position = fset.Position(pos)
	}

	return d
}

// Suggest attaches alternative names to the diagnostic.
func (d *Diagnostic) Suggest(names ...string) *Diagnostic {
	d.Suggestions = append(d.Suggestions, names...)

	return d
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var sb strings.Builder

	if d.Position.IsValid() {
		sb.WriteString(d.Position.String())
		sb.WriteString(": ")
	}

	if d.Code != "" {
		fmt.Fprintf(&sb, "[%s] ", d.Code)
	}

	sb.WriteString(d.Message)

	if len(d.Suggestions) > 0 {
		fmt.Fprintf(&sb, " (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	return sb.String()
}
