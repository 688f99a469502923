// pkg/commands/configure/configure_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: testutil.TestEnvironment (memory)
// PURPOSE: Verify config get/set semantics and file layout

package configure_test

import (
	"testing"

	"github.com/arthur-debert/rooconf/pkg/commands/configure"
	"github.com/arthur-debert/rooconf/pkg/config"
	"github.com/arthur-debert/rooconf/pkg/errors"
	"github.com/arthur-debert/rooconf/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetThenGet(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	_, err := configure.SetConfig(configure.SetConfigOptions{Paths: env.Paths, FileSystem: env.FS, Key: "editor", Value: "nvim"})
	require.NoError(t, err)

	result, err := configure.GetConfig(configure.GetConfigOptions{Paths: env.Paths, FileSystem: env.FS, Key: "editor"})
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, "nvim", result.Values["editor"])
	assert.Equal(t, env.Paths.ConfigFile(), result.Path)

	data, err := env.FS.ReadFile(env.Paths.ConfigFile())
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"editor\": \"nvim\"\n}\n", string(data))
}

func TestGetConfig_AllIncludesDefaults(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.SetConfig("custom_key", "kept")

	result, err := configure.GetConfig(configure.GetConfigOptions{Paths: env.Paths, FileSystem: env.FS})
	require.NoError(t, err)
	assert.Equal(t, config.CloneMethodGit, result.Values[config.KeyCloneMethod])
	assert.Equal(t, "kept", result.Values["custom_key"])
}

func TestGetConfig_UnsetKey(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	result, err := configure.GetConfig(configure.GetConfigOptions{Paths: env.Paths, FileSystem: env.FS, Key: "editor"})
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Empty(t, result.Values)
}

func TestSetConfig_ListKey(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	result, err := configure.SetConfig(configure.SetConfigOptions{
		Paths:      env.Paths,
		FileSystem: env.FS,
		Key:        config.KeyVSCodeSettingsPaths,
		Value:      "/a.yaml, /b.yaml",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.yaml", "/b.yaml"}, result.Values[config.KeyVSCodeSettingsPaths])

	cfg, err := env.ConfigStore().Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.yaml", "/b.yaml"}, cfg.VSCodeSettingsPaths)
}

func TestSetConfig_Validation(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	_, err := configure.SetConfig(configure.SetConfigOptions{Paths: env.Paths, FileSystem: env.FS, Key: " ", Value: "x"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = configure.SetConfig(configure.SetConfigOptions{Paths: env.Paths, FileSystem: env.FS, Key: config.KeyCloneMethod, Value: "svn"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = configure.SetConfig(configure.SetConfigOptions{Paths: env.Paths, FileSystem: env.FS, Key: config.KeyCloneMethod, Value: "go-git"})
	assert.NoError(t, err)
}
