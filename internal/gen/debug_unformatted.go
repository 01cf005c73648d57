package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// unformattedSuffix marks sidecar dumps of resolver source that gofmt
// rejected. The .go extension is kept for editor highlighting; the suffix
// keeps the dump from colliding with real output.
const unformattedSuffix = ".unformatted.go"

// writeDebugUnformatted dumps the raw rendered resolver source next to the
// intended output so a template defect can be inspected. Best-effort only:
// the render failure is already reported, a failed dump must not fail
// harder.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	sidecar := strings.TrimSuffix(filename, ".go") + unformattedSuffix

	return os.WriteFile(filepath.Join(outDir, sidecar), content, filePerm)
}
