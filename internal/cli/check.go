package cli

import (
	"context"
	"log/slog"

	"enumtry-generator/options"
)

// CheckCmd reflects declarations and reports their problems.
type CheckCmd struct {
	LoadFlags `embed:""`
}

// Run is called by Kong when the check command is executed.
func (c *CheckCmd) Run(ctx context.Context, logger *slog.Logger, console *Console) error {
	pkgs, err := c.load(ctx, logger, options.DeriveNone)
	if err != nil {
		return err
	}

	if err := report(console, pkgs); err != nil {
		return err
	}

	for _, pe := range pkgs {
		for _, e := range pe.Enums {
			logger.Info("enum ok", "package", pe.Path, "enum", e.Name, "variants", len(e.Variants))
		}
	}

	return nil
}
