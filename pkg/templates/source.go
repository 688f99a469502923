package templates

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/rooconf/pkg/errors"
	"github.com/arthur-debert/rooconf/pkg/types"
)

// VCSDirName is skipped when listing the remote cache
const VCSDirName = ".git"

// DefaultTemplates are attempted by every deployment, when the active
// source has them, regardless of component filters.
var DefaultTemplates = []string{
	"system-prompt-architect.md",
	"system-prompt-code.md",
}

// TemplateSource lists and reads templates from one origin
type TemplateSource interface {
	Origin() types.Origin
	List() ([]string, error)
	Read(id string) ([]byte, error)
}

// validateID rejects identifiers that are absolute or climb out of the root
func validateID(id string) error {
	if id == "" || !fs.ValidPath(id) || id == "." {
		return errors.Newf(errors.ErrInvalidInput, "invalid template identifier %q", id).
			WithDetail("id", id)
	}
	return nil
}

// NormalizeID converts a user-supplied name to identifier form
func NormalizeID(name string) string {
	name = filepath.ToSlash(strings.TrimSpace(name))
	name = strings.TrimPrefix(name, "./")
	if name == "" {
		return ""
	}
	return path.Clean(name)
}

// RemoteSource reads templates from the cloned repository cache
type RemoteSource struct {
	fs   types.FS
	root string
}

// NewRemoteSource creates a source rooted at the cache directory
func NewRemoteSource(fs types.FS, root string) *RemoteSource {
	return &RemoteSource{fs: fs, root: root}
}

// Origin returns types.OriginRemote
func (r *RemoteSource) Origin() types.Origin {
	return types.OriginRemote
}

// Root returns the cache directory
func (r *RemoteSource) Root() string {
	return r.root
}

// FS returns an io/fs view of the cache, used for glob evaluation
func (r *RemoteSource) FS() fs.FS {
	return r.fs.DirFS(r.root)
}

// List walks the cache and returns every file outside .git, in lexical order
func (r *RemoteSource) List() ([]string, error) {
	var ids []string
	err := fs.WalkDir(r.FS(), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == VCSDirName {
				return fs.SkipDir
			}
			return nil
		}
		ids = append(ids, p)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to list templates in %s", r.root)
	}
	return ids, nil
}

// Path returns the on-disk location of id inside the cache
func (r *RemoteSource) Path(id string) (string, error) {
	if err := validateID(id); err != nil {
		return "", err
	}
	return filepath.Join(r.root, filepath.FromSlash(id)), nil
}

// Read returns the content of id
func (r *RemoteSource) Read(id string) ([]byte, error) {
	p, err := r.Path(id)
	if err != nil {
		return nil, err
	}
	data, err := r.fs.ReadFile(p)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", id).WithDetail("path", p)
	}
	return data, nil
}

// BundledSource reads templates compiled into the binary
type BundledSource struct {
	fsys fs.FS
}

// NewBundledSource creates a source over an io/fs tree, typically bundled.FS()
func NewBundledSource(fsys fs.FS) *BundledSource {
	return &BundledSource{fsys: fsys}
}

// Origin returns types.OriginBundled
func (b *BundledSource) Origin() types.Origin {
	return types.OriginBundled
}

// List returns the top-level files of the bundled set
func (b *BundledSource) List() ([]string, error) {
	entries, err := fs.ReadDir(b.fsys, ".")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileRead, "failed to list bundled templates")
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ids = append(ids, e.Name())
	}
	return ids, nil
}

// Read returns the content of id
func (b *BundledSource) Read(id string) ([]byte, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(b.fsys, id)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read bundled template %s", id)
	}
	return data, nil
}
