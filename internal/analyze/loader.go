package analyze

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"enumtry-generator/internal/diagnostic"
)

// BuildTag is always set while loading so declaration files can be kept out
// of regular builds with "//go:build enumtry", and generated files out of
// reflection with "//go:build !enumtry".
const BuildTag = "enumtry"

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Config controls package loading and declaration selection.
type Config struct {
	// Dir is the working directory for the build system. Empty means the current directory.
	Dir string
	// Env is the environment for the build system. Nil means the current environment.
	Env []string
	// Tags are extra build tags added next to BuildTag.
	Tags []string
	// Tests includes test files in the loaded packages.
	Tests bool
	// Options select and configure the declarations.
	Options Options
}

// Analyzer loads Go packages and reflects their enum declarations.
type Analyzer struct {
	config Config
	logger *slog.Logger
}

// NewAnalyzer creates a new Analyzer. A nil logger discards log output.
func NewAnalyzer(config Config, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Analyzer{config: config, logger: logger}
}

// LoadPackages loads the packages matching patterns and reflects each one.
// Patterns are standard Go package patterns (e.g., "./...", "example.com/traffic").
// Declaration problems are reported in PackageEnums.Diagnostics; the error
// result is reserved for loading failures.
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) ([]*PackageEnums, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	cfg := &packages.Config{
		Mode:       LoadMode,
		Context:    ctx,
		Dir:        a.config.Dir,
		Env:        a.config.Env,
		BuildFlags: []string{"-tags=" + strings.Join(append([]string{BuildTag}, a.config.Tags...), ",")},
		Tests:      a.config.Tests,
	}

	a.logger.Debug("loading packages", "patterns", patterns, "dir", cfg.Dir, "flags", cfg.BuildFlags)

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	result := make([]*PackageEnums, 0, len(pkgs))
	for _, pkg := range pkgs {
		pe := Reflect(pkg, a.config.Options)
		a.logger.Debug("reflected package",
			"package", pe.Path,
			"enums", len(pe.Enums),
			"errors", len(pe.Diagnostics.Errors))

		result = append(result, pe)
	}

	promoteUnknownTypes(result, a.config.Options.Types)

	return result, nil
}

// promoteUnknownTypes turns the unknown-type infos of a requested declaration
// name into an error when no loaded package declares it.
func promoteUnknownTypes(pkgs []*PackageEnums, requested []string) {
	if len(pkgs) == 0 {
		return
	}

	for _, name := range requested {
		var (
			missing     int
			suggestions []string
		)

		for _, pe := range pkgs {
			for _, info := range pe.Diagnostics.Infos {
				if info.Code == diagnostic.CodeUnknownType && info.Decl == name {
					missing++
					suggestions = append(suggestions, info.Suggestions...)
				}
			}
		}

		if missing < len(pkgs) {
			continue
		}

		pkgs[0].Diagnostics.AddError(diagnostic.CodeUnknownType,
			fmt.Sprintf("type %s not found", name), name, "").
			Suggest(slices.Compact(slices.Sorted(slices.Values(suggestions)))...)
	}
}

// packageDir returns the directory of the package's first source file.
func packageDir(pkg *packages.Package) string {
	if len(pkg.GoFiles) > 0 {
		return filepath.Dir(pkg.GoFiles[0])
	}

	if pkg.Fset != nil && len(pkg.Syntax) > 0 {
		if f := pkg.Fset.File(pkg.Syntax[0].Pos()); f != nil {
			return filepath.Dir(f.Name())
		}
	}

	return ""
}
