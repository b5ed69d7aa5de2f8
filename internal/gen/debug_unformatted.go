package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output. Failures are returned but never replace the formatting
// error that triggered the write.
func writeDebugUnformatted(outDir, filename string, content []byte) (string, error) {
	if outDir == "" || filename == "" {
		return "", nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return "", err
	}
	// Keep it a .go file so editors can syntax highlight, but avoid colliding with
	// real output.
	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"
	p := filepath.Join(outDir, debugName)

	return p, os.WriteFile(p, content, filePerm)
}
