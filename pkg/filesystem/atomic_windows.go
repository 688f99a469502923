//go:build windows

package filesystem

import "os"

// writeFileAtomic falls back to a plain write; renameio has no windows support.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return os.WriteFile(filename, data, perm)
}
