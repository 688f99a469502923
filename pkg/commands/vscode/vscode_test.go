// pkg/commands/vscode/vscode_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: testutil.TestEnvironment (memory)
// PURPOSE: Verify settings discovery is persisted and modes are listed

package vscode_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/rooconf/pkg/commands/vscode"
	"github.com/arthur-debert/rooconf/pkg/settings"
	"github.com/arthur-debert/rooconf/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverSettings(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	modesPath := settings.ModesPath(env.HomeDir, ".vscode-server")
	require.NoError(t, env.FS.MkdirAll(filepath.Dir(modesPath), 0755))
	require.NoError(t, env.FS.WriteFile(modesPath, []byte("customModes:\n  - slug: reviewer\n    name: Reviewer\n"), 0644))

	result, err := vscode.DiscoverSettings(vscode.DiscoverSettingsOptions{Paths: env.Paths, FileSystem: env.FS})
	require.NoError(t, err)
	assert.Equal(t, string(settings.SourceDiscovered), result.Source)
	require.Len(t, result.Files, 1)
	assert.Equal(t, modesPath, result.Files[0].Path)
	require.Len(t, result.Files[0].Modes, 1)
	assert.Equal(t, "reviewer", result.Files[0].Modes[0].Slug)

	result, err = vscode.DiscoverSettings(vscode.DiscoverSettingsOptions{Paths: env.Paths, FileSystem: env.FS})
	require.NoError(t, err)
	assert.Equal(t, string(settings.SourceConfig), result.Source, "second run uses the stored paths")
}

func TestDiscoverSettings_UnreadableFileReported(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.SetConfig("vscode_settings_paths", []string{"/gone/custom_modes.yaml"})

	result, err := vscode.DiscoverSettings(vscode.DiscoverSettingsOptions{Paths: env.Paths, FileSystem: env.FS})
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.NotEmpty(t, result.Files[0].Error)
	assert.Empty(t, result.Files[0].Modes)
}
