package enumtryanalysis_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"enumtry-generator/pkg/enumtryanalysis"
)

// TestAnalyzer checks the diagnostics against the "// want" comments of the
// packages under testdata/src.
func TestAnalyzer(t *testing.T) {
	t.Setenv("GOFLAGS", "-tags=enumtry")

	analysistest.Run(t, analysistest.TestData(), enumtryanalysis.Analyzer, "decls", "valid")
}
