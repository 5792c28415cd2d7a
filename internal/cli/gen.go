package cli

import (
	"context"
	"log/slog"

	"enumtry-generator/internal/gen"
)

// GenCmd generates accessor files.
type GenCmd struct {
	LoadFlags `embed:""`

	DeriveErr  []string `name:"derive-err" help:"Behaviors of every generated error type (Debug, Equal, Compare, Hash, Clone)." env:"ENUMTRY_DERIVE_ERR"`
	Output     string   `short:"o" help:"Name of the generated file. Defaults to enumtry_gen.go, or <enum>_enumtry.go for a single --type."`
	OutputDir  string   `help:"Write generated files here instead of next to each package." type:"path"`
	NoComments bool     `help:"Omit doc comments on generated code."`
}

// Run is called by Kong when the gen command is executed.
func (c *GenCmd) Run(ctx context.Context, logger *slog.Logger, console *Console) error {
	derive, err := parseDeriveList(c.DeriveErr)
	if err != nil {
		return err
	}

	pkgs, err := c.load(ctx, logger, derive)
	if err != nil {
		return err
	}

	if err := report(console, pkgs); err != nil {
		return err
	}

	config := gen.DefaultGeneratorConfig()
	config.Filename = c.Output
	config.NameAfterEnum = len(c.Types) == 1
	config.OutputDir = c.OutputDir
	config.GenerateComments = !c.NoComments

	files, err := gen.NewGenerator(config, logger).Generate(pkgs)
	if err != nil {
		return err
	}

	paths, err := gen.WriteFiles(files, c.OutputDir)
	if err != nil {
		return err
	}

	for _, p := range paths {
		logger.Info("wrote file", "path", p)
	}

	return nil
}
