package cli

import (
	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

// New builds the command line parser. Configuration files found by
// ConfigCandidatePaths provide defaults; flags and environment override them.
func New(cli *CLI, configPath string, opts ...kong.Option) (*kong.Kong, error) {
	jsonPaths, yamlPaths, tomlPaths := ConfigCandidatePaths(configPath)

	return kong.New(cli, append([]kong.Option{
		kong.Name("enumtry"),
		kong.Description("Generate variant predicates and fallible accessors for Go enum declarations."),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	}, opts...)...)
}
