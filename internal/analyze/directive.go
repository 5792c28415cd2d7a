package analyze

import (
	"go/ast"
	"go/token"
	"strings"

	"enumtry-generator/options"
)

// Directives recognized in the doc comment of an enum declaration.
const (
	// DirectiveEnum selects the declaration; an optional argument names the generated type.
	DirectiveEnum = "//enumtry:enum"
	// DirectiveDeriveErr lists optional behaviors of the generated error type.
	DirectiveDeriveErr = "//enumtry:derive_err"
)

// DeclPrefix is stripped from a declaration name to obtain the generated type
// name when no explicit name is given ("enumLight" -> "Light").
const DeclPrefix = "enum"

// directives holds the parsed enumtry comments of a declaration.
type directives struct {
	enum      bool
	name      string
	namePos   token.Pos
	derive    []string
	derivePos token.Pos
}

// parseDirectives scans doc for enumtry directives. Directives are matched on
// the raw comment text because CommentGroup.Text drops them.
func parseDirectives(doc *ast.CommentGroup) directives {
	var d directives
	if doc == nil {
		return d
	}

	for _, c := range doc.List {
		if rest, ok := cutDirective(c.Text, DirectiveEnum); ok {
			d.enum = true
			d.namePos = c.Pos()

			if fields := strings.Fields(rest); len(fields) > 0 {
				d.name = fields[0]
			}

			continue
		}

		if rest, ok := cutDirective(c.Text, DirectiveDeriveErr); ok {
			d.derive = append(d.derive, options.SplitDeriveList(rest)...)
			d.derivePos = c.Pos()
		}
	}

	return d
}

// cutDirective reports whether text is the directive, optionally followed by
// whitespace separated arguments, and returns the arguments.
func cutDirective(text, directive string) (string, bool) {
	rest, ok := strings.CutPrefix(text, directive)
	if !ok {
		return "", false
	}

	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}

	return strings.TrimSpace(rest), true
}
