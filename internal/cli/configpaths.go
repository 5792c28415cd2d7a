package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigName is the base name of configuration files.
const ConfigName = ".enumtry"

// ConfigEnv names a configuration file when --config is not given.
const ConfigEnv = "ENUMTRY_CONFIG"

// ConfigCandidatePaths returns the configuration files to try per format,
// most specific first. userPath, when set, is routed by its extension.
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, userPath)
		case ".toml":
			tomlPaths = append(tomlPaths, userPath)
		default:
			jsonPaths = append(jsonPaths, userPath)
		}
	}

	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}

	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "enumtry"))
	}

	for _, dir := range dirs {
		base := filepath.Join(dir, ConfigName)
		jsonPaths = append(jsonPaths, base+".json")
		yamlPaths = append(yamlPaths, base+".yaml", base+".yml")
		tomlPaths = append(tomlPaths, base+".toml")
	}

	return jsonPaths, yamlPaths, tomlPaths
}

// FindUserConfig returns the value of --config in args, or of ConfigEnv.
// It runs before kong parses the command line, since the configuration
// files feed the parser.
func FindUserConfig(args []string) string {
	for i, a := range args {
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}

		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}

	return os.Getenv(ConfigEnv)
}
