package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files. Each file goes to outputDir when it
// is set, and next to its package otherwise. Directories are created as needed.
// It returns the written paths.
func WriteFiles(files []GeneratedFile, outputDir string) ([]string, error) {
	paths := make([]string, 0, len(files))

	for _, file := range files {
		dir := outputDir
		if dir == "" {
			dir = file.Dir
		}

		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return paths, fmt.Errorf("creating output directory: %w", err)
		}

		outputPath := filepath.Join(dir, file.Filename)

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return paths, fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		paths = append(paths, outputPath)
	}

	return paths, nil
}
