package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// Permissions for the generated resolver tree.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes rendered resolver files into outputDir, creating the
// directory when missing. Filenames come from the generator and are flat:
// resolvers for all scanned packages land in one output package.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	for _, file := range files {
		path := filepath.Join(outputDir, file.Filename)

		if err := os.WriteFile(path, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing resolver file %s: %w", file.Filename, err)
		}
	}

	return nil
}
