// pkg/templates/catalog_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Memory FS, fstest.MapFS
// PURPOSE: Verify source listing, precedence and bundled-only degradation

package templates_test

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/rooconf/pkg/config"
	"github.com/arthur-debert/rooconf/pkg/errors"
	"github.com/arthur-debert/rooconf/pkg/filesystem"
	"github.com/arthur-debert/rooconf/pkg/templates"
	"github.com/arthur-debert/rooconf/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cacheDir = "/home/user/.config/roo-conf/templates"

func bundledSet() fstest.MapFS {
	return fstest.MapFS{
		"a.md":        {Data: []byte("bundled a")},
		"b.md":        {Data: []byte("bundled b")},
		"c.txt":       {Data: []byte("bundled c")},
		"nested/d.md": {Data: []byte("not listed")},
	}
}

func writeCache(t *testing.T, fs types.FS, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(cacheDir, filepath.FromSlash(rel))
		require.NoError(t, fs.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, fs.WriteFile(p, []byte(content), 0644))
	}
}

func TestResolve_NoRemoteConfigured(t *testing.T) {
	fs := filesystem.NewMemoryFS()
	writeCache(t, fs, map[string]string{"a.md": "remote a"})

	catalog, err := templates.Resolve(templates.ResolveOptions{
		FS:        fs,
		CacheDir:  cacheDir,
		Config:    &config.Config{},
		BundledFS: bundledSet(),
	})
	require.NoError(t, err)

	assert.False(t, catalog.HasRemote())
	assert.Equal(t, types.OriginBundled, catalog.ActiveOrigin())
	assert.Equal(t, []string{"a.md", "b.md", "c.txt"}, catalog.Available(), "bundled listing is non-recursive")
}

func TestResolve_MissingCacheDegrades(t *testing.T) {
	catalog, err := templates.Resolve(templates.ResolveOptions{
		FS:        filesystem.NewMemoryFS(),
		CacheDir:  cacheDir,
		Config:    &config.Config{TemplateSourceRepo: "https://example.com/p.git"},
		BundledFS: bundledSet(),
	})
	require.NoError(t, err)
	assert.False(t, catalog.HasRemote())
}

func TestResolve_EmptyCacheDegrades(t *testing.T) {
	fs := filesystem.NewMemoryFS()
	require.NoError(t, fs.MkdirAll(filepath.Join(cacheDir, ".git"), 0755))
	require.NoError(t, fs.WriteFile(filepath.Join(cacheDir, ".git", "HEAD"), []byte("ref"), 0644))

	catalog, err := templates.Resolve(templates.ResolveOptions{
		FS:        fs,
		CacheDir:  cacheDir,
		Config:    &config.Config{TemplateSourceRepo: "https://example.com/p.git"},
		BundledFS: bundledSet(),
	})
	require.NoError(t, err)
	assert.False(t, catalog.HasRemote(), "a cache holding only .git counts as empty")
}

func TestResolve_RemoteListing(t *testing.T) {
	fs := filesystem.NewMemoryFS()
	writeCache(t, fs, map[string]string{
		"a.md":               "remote a",
		"modes/debug.md":     "remote debug",
		"modes/deep/x.txt":   "x",
		".git/config":        "[core]",
		".git/objects/ab/cd": "blob",
	})

	catalog, err := templates.Resolve(templates.ResolveOptions{
		FS:        fs,
		CacheDir:  cacheDir,
		Config:    &config.Config{TemplateSourceRepo: "https://example.com/p.git"},
		BundledFS: bundledSet(),
	})
	require.NoError(t, err)

	require.True(t, catalog.HasRemote())
	assert.Equal(t, types.OriginRemote, catalog.ActiveOrigin())
	assert.Equal(t, []string{"a.md", "modes/debug.md", "modes/deep/x.txt"}, catalog.Available())

	entries := catalog.List()
	require.Len(t, entries, 6, "combined listing shows both sources")
	assert.Equal(t, types.TemplateEntry{ID: "a.md", Origin: types.OriginRemote}, entries[0])
	assert.Equal(t, types.TemplateEntry{ID: "a.md", Origin: types.OriginBundled}, entries[3])
}

func TestCatalog_RemoteWinsOnContent(t *testing.T) {
	fs := filesystem.NewMemoryFS()
	writeCache(t, fs, map[string]string{"a.md": "remote a"})

	catalog, err := templates.Resolve(templates.ResolveOptions{
		FS:        fs,
		CacheDir:  cacheDir,
		Config:    &config.Config{TemplateSourceRepo: "repo"},
		BundledFS: bundledSet(),
	})
	require.NoError(t, err)

	data, origin, err := catalog.Read("a.md")
	require.NoError(t, err)
	assert.Equal(t, "remote a", string(data))
	assert.Equal(t, types.OriginRemote, origin)

	data, origin, err = catalog.Read("b.md")
	require.NoError(t, err)
	assert.Equal(t, "bundled b", string(data), "ids only the bundled set defines still resolve")
	assert.Equal(t, types.OriginBundled, origin)

	_, _, err = catalog.Read("missing.md")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestRemoteSource_PathRejectsEscapes(t *testing.T) {
	remote := templates.NewRemoteSource(filesystem.NewMemoryFS(), cacheDir)

	p, err := remote.Path("modes/debug.md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cacheDir, "modes", "debug.md"), p)

	for _, bad := range []string{"", ".", "../secret", "/etc/passwd", "a/../../b"} {
		_, err := remote.Path(bad)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), bad)
	}
}

func TestNormalizeID(t *testing.T) {
	assert.Equal(t, "a.md", templates.NormalizeID("./a.md"))
	assert.Equal(t, "modes/debug.md", templates.NormalizeID(" modes//debug.md "))
	assert.Equal(t, "", templates.NormalizeID("  "))
}
