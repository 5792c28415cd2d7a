// Package enumtryanalysis reports problems in enum declarations through the
// go/analysis protocol, so editors and linters show them before enumtry runs.
//
// Declarations usually live in files built with the enumtry tag; run the
// analyzer with GOFLAGS=-tags=enumtry to see them.
package enumtryanalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"enumtry-generator/internal/analyze"
)

// Analyzer validates the enum declarations of the package.
var Analyzer = &analysis.Analyzer{
	Name: "enumtry",
	Doc:  "check enum declarations marked with //enumtry:enum",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	pe := analyze.Reflect(pkg, analyze.Options{})

	for _, d := range pe.Diagnostics.Errors {
		if !d.Pos.IsValid() {
			continue
		}

		pass.Report(analysis.Diagnostic{
			Pos:      d.Pos,
			End:      d.End,
			Category: d.Code,
			Message:  d.Message,
		})
	}

	return nil, nil
}
