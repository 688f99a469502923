package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/rooconf/pkg/types"
)

// WriteTree writes files below root, creating parent directories.
// Keys are slash-separated relative paths.
func WriteTree(t *testing.T, fs types.FS, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := fs.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", rel, err)
		}
		if err := fs.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", rel, err)
		}
	}
}
