// pkg/config/store_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Memory FS
// PURPOSE: Verify layered loading, whole-file rewrites and env overrides

package config_test

import (
	"testing"

	"github.com/arthur-debert/rooconf/pkg/config"
	"github.com/arthur-debert/rooconf/pkg/errors"
	"github.com/arthur-debert/rooconf/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cfgPath = "/home/user/.config/roo-conf/config.json"

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	store := config.NewStore(filesystem.NewMemoryFS(), cfgPath)

	cfg, err := store.Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Editor)
	assert.Empty(t, cfg.TemplateSourceRepo)
	assert.False(t, cfg.HasRemote())
	assert.Equal(t, config.CloneMethodGit, cfg.CloneMethod)
}

func TestSetThenLoad(t *testing.T) {
	fs := filesystem.NewMemoryFS()
	store := config.NewStore(fs, cfgPath)

	require.NoError(t, store.Set(config.KeyEditor, "code --wait"))
	require.NoError(t, store.Set(config.KeyTemplateSourceRepo, "https://example.com/prompts.git"))
	require.NoError(t, store.Set(config.KeyVSCodeSettingsPaths, []string{"/a/custom_modes.yaml", "/b/custom_modes.yaml"}))

	cfg, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, "code --wait", cfg.Editor)
	assert.Equal(t, "https://example.com/prompts.git", cfg.TemplateSourceRepo)
	assert.True(t, cfg.HasRemote())
	assert.Equal(t, []string{"/a/custom_modes.yaml", "/b/custom_modes.yaml"}, cfg.VSCodeSettingsPaths)

	data, err := fs.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "    \"editor\": \"code --wait\"", "file should use four-space indentation")
}

func TestSet_PreservesUnknownKeys(t *testing.T) {
	fs := filesystem.NewMemoryFS()
	require.NoError(t, fs.MkdirAll("/home/user/.config/roo-conf", 0755))
	require.NoError(t, fs.WriteFile(cfgPath, []byte(`{"theme": "dark", "editor": "vim"}`), 0644))

	store := config.NewStore(fs, cfgPath)
	require.NoError(t, store.Set(config.KeyEditor, "nano"))

	value, ok, err := store.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "nano", cfg.Editor)
}

func TestSet_EmptyKey(t *testing.T) {
	store := config.NewStore(filesystem.NewMemoryFS(), cfgPath)
	err := store.Set("  ", "x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestLoad_InvalidJSON(t *testing.T) {
	fs := filesystem.NewMemoryFS()
	require.NoError(t, fs.MkdirAll("/home/user/.config/roo-conf", 0755))
	require.NoError(t, fs.WriteFile(cfgPath, []byte(`{"editor": `), 0644))

	_, err := config.NewStore(fs, cfgPath).Load()
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestEnvOverride_NotPersisted(t *testing.T) {
	fs := filesystem.NewMemoryFS()
	store := config.NewStore(fs, cfgPath)
	require.NoError(t, store.Set(config.KeyEditor, "vim"))

	t.Setenv("ROO_CONF_EDITOR", "emacs")
	t.Setenv("ROO_CONF_VSCODE_SETTINGS_PATHS", "/x.yaml,/y.yaml")
	t.Setenv("ROO_CONF_CONFIG_DIR", "/ignored")

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "emacs", cfg.Editor)
	assert.Equal(t, []string{"/x.yaml", "/y.yaml"}, cfg.VSCodeSettingsPaths)

	all, err := store.All()
	require.NoError(t, err)
	assert.NotContains(t, all, "config_dir")

	require.NoError(t, store.Set(config.KeyCloneMethod, config.CloneMethodGoGit))
	data, err := fs.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"vim"`)
	assert.NotContains(t, string(data), "emacs")
}

func TestGet_Missing(t *testing.T) {
	store := config.NewStore(filesystem.NewMemoryFS(), cfgPath)
	_, ok, err := store.Get(config.KeyEditor)
	require.NoError(t, err)
	assert.False(t, ok)
}
