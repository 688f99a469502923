// Package bundled holds the fallback prompt templates compiled into the
// binary. They are used when no remote template repository has been
// pulled, and are read-only to the tool.
package bundled

import (
	"embed"
	"io/fs"
)

//go:embed prompts
var prompts embed.FS

// FS returns the bundled templates rooted at the prompts directory, so
// identifiers are plain file names.
func FS() fs.FS {
	sub, err := fs.Sub(prompts, "prompts")
	if err != nil {
		// fs.Sub only fails on an invalid path literal
		panic(err)
	}
	return sub
}
