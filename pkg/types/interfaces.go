package types

import "io/fs"

// FS is the filesystem abstraction used by every package that touches disk
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error

	// DirFS returns a read-only io/fs view rooted at root. Paths passed to
	// the returned FS are slash-separated and relative to root.
	DirFS(root string) fs.FS
}
