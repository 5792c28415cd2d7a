// Package cli implements the enumtry commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"enumtry-generator/internal/analyze"
	"enumtry-generator/internal/diagnostic"
	"enumtry-generator/internal/log"
	"enumtry-generator/options"
)

// CLI is the command line of enumtry.
type CLI struct {
	Config string   `help:"Configuration file (JSON, YAML or TOML)." type:"path" env:"ENUMTRY_CONFIG"`
	Log    LogFlags `embed:"" prefix:"log-"`

	Gen     GenCmd     `cmd:"" help:"Generate accessors for enum declarations."`
	Check   CheckCmd   `cmd:"" help:"Report problems in enum declarations without generating."`
	Analyze AnalyzeCmd `cmd:"" help:"Print the reflected enum declarations."`
}

// LogFlags configure logging.
type LogFlags struct {
	Level string `help:"Log level (trace, debug, info, warn, error)." default:"warn" enum:"trace,debug,info,warn,error" env:"ENUMTRY_LOG_LEVEL"`
	File  string `help:"Write logs to this file instead of the console." type:"path" env:"ENUMTRY_LOG_FILE"`
}

// Setup builds the logger described by the flags.
func (f LogFlags) Setup() (*slog.Logger, func(), error) {
	logger, closers, err := log.Setup(log.Options{Level: f.Level, File: f.File})
	if err != nil {
		return nil, nil, err
	}

	return logger, func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}, nil
}

// LoadFlags select the packages and declarations a command works on.
type LoadFlags struct {
	Dir      string   `short:"C" help:"Run as if started in this directory." type:"path"`
	Types    []string `name:"type" short:"t" help:"Declarations to use (comma separated). Defaults to those marked //enumtry:enum."`
	Tags     []string `help:"Extra build tags (comma separated). The enumtry tag is always set."`
	Tests    bool     `help:"Include test files."`
	Patterns []string `arg:"" optional:"" default:"." help:"Package patterns."`
}

// ErrDeclarations is returned when enum declarations have errors. The
// diagnostics themselves are printed on the console.
var ErrDeclarations = errors.New("invalid enum declarations")

// load reflects the selected packages.
func (f *LoadFlags) load(ctx context.Context, logger *slog.Logger, derive options.DeriveEnum) ([]*analyze.PackageEnums, error) {
	analyzer := analyze.NewAnalyzer(analyze.Config{
		Dir:   f.Dir,
		Tags:  f.Tags,
		Tests: f.Tests,
		Options: analyze.Options{
			Types:     f.Types,
			DeriveErr: derive,
		},
	}, logger)

	pkgs, err := analyzer.LoadPackages(ctx, f.Patterns...)
	if err != nil {
		return nil, err
	}

	if logger.Enabled(ctx, log.LevelTrace) {
		for _, pe := range pkgs {
			for _, e := range pe.Enums {
				logger.Log(ctx, log.LevelTrace, "reflected enum", "package", pe.Path, "enum", e.Name,
					"variants", len(e.Variants), "derive", e.DeriveErr.String())
			}
		}
	}

	return pkgs, nil
}

// report prints the diagnostics of pkgs, warns when none declares an enum
// and returns ErrDeclarations if any has errors.
func report(console *Console, pkgs []*analyze.PackageEnums) error {
	enums := 0
	for _, pe := range pkgs {
		enums += len(pe.Enums)
	}

	all := mergeDiagnostics(pkgs)
	if enums == 0 && !all.HasErrors() {
		all.AddWarning(diagnostic.CodeNoDeclarations,
			"no enum declarations found; mark one with "+analyze.DirectiveEnum+" or pass --type", "", "")
	}

	if errs := console.Report(all); errs > 0 {
		return fmt.Errorf("%w: %d error(s)", ErrDeclarations, errs)
	}

	return nil
}

// parseDeriveList combines derive names given on the command line.
func parseDeriveList(names []string) (options.DeriveEnum, error) {
	derive := options.DeriveNone

	for _, list := range names {
		for _, name := range options.SplitDeriveList(list) {
			d, err := options.ParseDerive(name)
			if err != nil {
				return options.DeriveNone, err
			}

			derive |= d
		}
	}

	return derive, nil
}
