// Package main provides the CLI entrypoint for enumtry.
//
// enumtry is a go:generate tool that:
//   - Loads Go packages (AST + go/types) and finds enum declarations,
//     interfaces whose methods are the variants
//   - Generates a tagged union type with predicates and fallible accessors
//   - Generates a companion error type for variant mismatches
//
// Typical use, next to a declaration file built with the enumtry tag:
//
//	//go:generate go run enumtry-generator/cmd/enumtry gen --type enumLight
package main

import (
	"context"
	"os"
	"os/signal"

	"enumtry-generator/internal/cli"
)

func main() {
	var c cli.CLI

	parser, err := cli.New(&c, cli.FindUserConfig(os.Args[1:]))
	if err != nil {
		_, _ = os.Stderr.WriteString("enumtry: " + err.Error() + "\n")
		os.Exit(2)
	}

	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	logger, closeLog, err := c.Log.Setup()
	if err != nil {
		_, _ = os.Stderr.WriteString("enumtry: failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	kctx.Bind(logger)
	kctx.Bind(cli.NewConsole(os.Stdout, os.Stderr))
	kctx.BindTo(ctx, (*context.Context)(nil))

	err = kctx.Run()

	stop()
	closeLog()
	kctx.FatalIfErrorf(err)
}
