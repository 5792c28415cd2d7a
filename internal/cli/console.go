package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"enumtry-generator/internal/analyze"
	"enumtry-generator/internal/diagnostic"
)

// ANSI colors used for diagnostics on a terminal.
const (
	colorRed    = "\x1b[31m"
	colorYellow = "\x1b[33m"
	colorCyan   = "\x1b[36m"
	colorReset  = "\x1b[0m"
)

// Console is where commands print results and diagnostics.
type Console struct {
	Out   io.Writer
	Err   io.Writer
	Color bool
}

// NewConsole returns a console on the given files. Colors are enabled when
// stderr is a terminal and NO_COLOR is unset.
func NewConsole(out, errOut *os.File) *Console {
	_, noColor := os.LookupEnv("NO_COLOR")

	return &Console{
		Out:   out,
		Err:   errOut,
		Color: !noColor && term.IsTerminal(int(errOut.Fd())),
	}
}

// Diagnostic prints d to the error stream.
func (c *Console) Diagnostic(d diagnostic.Diagnostic) {
	line := d.Severity.String() + ": " + d.String()

	if c.Color {
		switch d.Severity {
		case diagnostic.SeverityError:
			line = colorRed + line + colorReset
		case diagnostic.SeverityWarning:
			line = colorYellow + line + colorReset
		default:
			line = colorCyan + line + colorReset
		}
	}

	_, _ = fmt.Fprintln(c.Err, line)
}

// Diagnostics prints the errors and warnings of every package and returns the
// number of errors.
func (c *Console) Diagnostics(pkgs []*analyze.PackageEnums) int {
	return c.Report(mergeDiagnostics(pkgs))
}

// Report prints the errors and warnings of d and returns the number of errors.
func (c *Console) Report(d diagnostic.Diagnostics) int {
	for _, e := range d.Errors {
		c.Diagnostic(e)
	}

	for _, w := range d.Warnings {
		c.Diagnostic(w)
	}

	return len(d.Errors)
}

// mergeDiagnostics collects the diagnostics of every package.
func mergeDiagnostics(pkgs []*analyze.PackageEnums) diagnostic.Diagnostics {
	var all diagnostic.Diagnostics
	for _, pe := range pkgs {
		all.Merge(pe.Diagnostics)
	}

	return all
}
