package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes source that go/format rejected next to the
// intended output, so the template bug can be inspected in an editor.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(outDir, UnformattedFilename(filename)), content, filePerm)
}

// UnformattedFilename returns the sidecar name of an output file
// ("enumtry_gen.go" -> "enumtry_gen.unformatted.go").
func UnformattedFilename(filename string) string {
	return strings.TrimSuffix(filename, ".go") + ".unformatted.go"
}
