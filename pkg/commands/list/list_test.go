// pkg/commands/list/list_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: testutil.TestEnvironment (memory), fstest.MapFS
// PURPOSE: Verify combined listing of remote and bundled templates

package list_test

import (
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/rooconf/pkg/commands/list"
	"github.com/arthur-debert/rooconf/pkg/testutil"
	"github.com/arthur-debert/rooconf/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bundled = fstest.MapFS{
	"a.md": {Data: []byte("a")},
	"b.md": {Data: []byte("b")},
}

func TestListTemplates_BundledOnly(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	result, err := list.ListTemplates(list.ListTemplatesOptions{Paths: env.Paths, FileSystem: env.FS, BundledFS: bundled})
	require.NoError(t, err)

	assert.Equal(t, types.OriginBundled, result.ActiveOrigin)
	assert.Equal(t, []types.TemplateEntry{
		{ID: "a.md", Origin: types.OriginBundled},
		{ID: "b.md", Origin: types.OriginBundled},
	}, result.Templates)
}

func TestListTemplates_RemoteFirst(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WithRemote("https://example.com/prompts.git", map[string]string{
		"a.md":         "remote a",
		"modes/x.md":   "x",
		".git/config":  "[core]",
		".git/HEAD.md": "ref",
	})

	result, err := list.ListTemplates(list.ListTemplatesOptions{Paths: env.Paths, FileSystem: env.FS, BundledFS: bundled})
	require.NoError(t, err)

	assert.Equal(t, types.OriginRemote, result.ActiveOrigin)
	assert.Equal(t, env.Paths.TemplatesDir(), result.CacheDir)
	assert.Equal(t, []types.TemplateEntry{
		{ID: "a.md", Origin: types.OriginRemote},
		{ID: "modes/x.md", Origin: types.OriginRemote},
		{ID: "a.md", Origin: types.OriginBundled},
		{ID: "b.md", Origin: types.OriginBundled},
	}, result.Templates)
}
