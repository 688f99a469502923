package templates

import (
	"io/fs"
	"os"

	"github.com/arthur-debert/rooconf/pkg/config"
	"github.com/arthur-debert/rooconf/pkg/errors"
	"github.com/arthur-debert/rooconf/pkg/logging"
	"github.com/arthur-debert/rooconf/pkg/types"
)

// Catalog is the resolved view of both template sources for one invocation
type Catalog struct {
	Bundled *BundledSource
	// Remote is nil unless a repository is configured and its cache is non-empty
	Remote *RemoteSource

	bundledIDs []string
	remoteIDs  []string
	remoteSet  map[string]bool
	bundledSet map[string]bool
}

// ResolveOptions configures Resolve
type ResolveOptions struct {
	FS        types.FS
	CacheDir  string
	Config    *config.Config
	BundledFS fs.FS
}

// Resolve decides which sources are available. A missing repository
// setting or a missing/empty cache is not an error: the catalog simply
// has no remote source.
func Resolve(opts ResolveOptions) (*Catalog, error) {
	logger := logging.GetLogger("templates.catalog")

	c := &Catalog{
		Bundled:    NewBundledSource(opts.BundledFS),
		remoteSet:  make(map[string]bool),
		bundledSet: make(map[string]bool),
	}

	ids, err := c.Bundled.List()
	if err != nil {
		return nil, err
	}
	c.bundledIDs = ids
	for _, id := range ids {
		c.bundledSet[id] = true
	}

	if opts.Config == nil || !opts.Config.HasRemote() {
		logger.Debug().Msg("No remote template repository configured, using bundled templates")
		return c, nil
	}

	info, err := opts.FS.Stat(opts.CacheDir)
	if err != nil || !info.IsDir() {
		if err != nil && !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("cache", opts.CacheDir).Msg("Cannot access template cache, using bundled templates")
		} else {
			logger.Debug().Str("cache", opts.CacheDir).Msg("Template cache not present, using bundled templates")
		}
		return c, nil
	}

	remote := NewRemoteSource(opts.FS, opts.CacheDir)
	remoteIDs, err := remote.List()
	if err != nil {
		return nil, err
	}
	if len(remoteIDs) == 0 {
		logger.Debug().Str("cache", opts.CacheDir).Msg("Template cache is empty, using bundled templates")
		return c, nil
	}

	c.Remote = remote
	c.remoteIDs = remoteIDs
	for _, id := range remoteIDs {
		c.remoteSet[id] = true
	}

	logger.Debug().
		Str("cache", opts.CacheDir).
		Int("remote", len(remoteIDs)).
		Int("bundled", len(c.bundledIDs)).
		Msg("Using remote template source")

	return c, nil
}

// HasRemote reports whether the remote cache is active
func (c *Catalog) HasRemote() bool {
	return c.Remote != nil
}

// Active returns the source that drives selection: remote when present
func (c *Catalog) Active() TemplateSource {
	if c.Remote != nil {
		return c.Remote
	}
	return c.Bundled
}

// ActiveOrigin returns the origin of Active()
func (c *Catalog) ActiveOrigin() types.Origin {
	return c.Active().Origin()
}

// Available returns the identifiers of the active source, in listing order
func (c *Catalog) Available() []string {
	if c.Remote != nil {
		return append([]string(nil), c.remoteIDs...)
	}
	return append([]string(nil), c.bundledIDs...)
}

// List returns every template from both sources, remote first
func (c *Catalog) List() []types.TemplateEntry {
	entries := make([]types.TemplateEntry, 0, len(c.remoteIDs)+len(c.bundledIDs))
	for _, id := range c.remoteIDs {
		entries = append(entries, types.TemplateEntry{ID: id, Origin: types.OriginRemote})
	}
	for _, id := range c.bundledIDs {
		entries = append(entries, types.TemplateEntry{ID: id, Origin: types.OriginBundled})
	}
	return entries
}

// Origin reports which source supplies the content of id
func (c *Catalog) Origin(id string) (types.Origin, bool) {
	if c.remoteSet[id] {
		return types.OriginRemote, true
	}
	if c.bundledSet[id] {
		return types.OriginBundled, true
	}
	return "", false
}

// Read returns the content of id, preferring the remote cache
func (c *Catalog) Read(id string) ([]byte, types.Origin, error) {
	origin, ok := c.Origin(id)
	if !ok {
		return nil, "", errors.Newf(errors.ErrNotFound, "template %q not found", id).WithDetail("id", id)
	}
	var (
		data []byte
		err  error
	)
	if origin == types.OriginRemote {
		data, err = c.Remote.Read(id)
	} else {
		data, err = c.Bundled.Read(id)
	}
	return data, origin, err
}
