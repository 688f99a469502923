// cmd/rooconf/commands_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem in a temp directory
// PURPOSE: Run the CLI end to end against an isolated config and project

package rooconf_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/rooconf/cmd/rooconf"
	"github.com/arthur-debert/rooconf/pkg/config"
	"github.com/arthur-debert/rooconf/pkg/errors"
	"github.com/arthur-debert/rooconf/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI inside the environment's project directory
func run(t *testing.T, env *testutil.TestEnvironment, args ...string) (string, error) {
	t.Helper()
	t.Chdir(env.WorkDir)

	root := rooconf.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestDeploy_Bundled(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	out, err := run(t, env, "deploy")
	require.NoError(t, err)

	assert.Contains(t, out, "Deployed system-prompt-code.md to "+filepath.Join(env.WorkDir, ".roo", "system-prompt-code.md"))
	assert.Contains(t, env.ReadDeployed("system-prompt-code.md"), "You are editing the repository at `"+env.WorkDir+"`.")
	assert.True(t, env.DeployedExists("mcp.json"))
	assert.Contains(t, env.ReadDeployed("mcp.json"), "{{repo-full-path}}")
}

func TestDeploy_RemoteGlob(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WithRemote("https://example.com/prompts.git", map[string]string{
		"system-prompt-code.md":      "code {{repo-full-path}}",
		"system-prompt-architect.md": "architect",
		"modes/docs.md":              "docs",
		"notes.txt":                  "notes",
	})

	out, err := run(t, env, "deploy", "modes/**/*.md", "missing.md")
	require.NoError(t, err)

	assert.Contains(t, out, `Warning: component "missing.md" not found`)
	assert.Equal(t, "docs", env.ReadDeployed("modes/docs.md"))
	assert.Equal(t, "code "+env.WorkDir, env.ReadDeployed("system-prompt-code.md"))
	assert.True(t, env.DeployedExists("system-prompt-architect.md"))
	assert.False(t, env.DeployedExists("notes.txt"))
}

func TestDeploy_JSONOutput(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	out, err := run(t, env, "-o", "json", "deploy", "system-prompt-code.md")
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "bundled", result["origin"])
	assert.Equal(t, float64(0), result["failed"])
}

func TestList(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WithRemote("https://example.com/prompts.git", map[string]string{
		"custom.md": "custom",
	})

	out, err := run(t, env, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Available prompts:\n- custom.md\n")
	assert.Contains(t, out, "- system-prompt-code.md (package)")
}

func TestEdit_NoArgListsTemplates(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	out, err := run(t, env, "edit")
	require.NoError(t, err)
	assert.Contains(t, out, "Available prompts:")
}

func TestEdit_NoEditorConfigured(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WithRemote("https://example.com/prompts.git", map[string]string{"custom.md": "custom"})

	_, err := run(t, env, "edit", "custom.md")
	require.Error(t, err)
	assert.Equal(t, errors.ErrConfigMissing, errors.GetErrorCode(err))
}

func TestConfig_SetAndGet(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	out, err := run(t, env, "config", "editor", "code --wait")
	require.NoError(t, err)
	assert.Equal(t, "Configuration updated: editor = code --wait\n", out)

	out, err = run(t, env, "config", "editor")
	require.NoError(t, err)
	assert.Equal(t, "code --wait\n", out)

	out, err = run(t, env, "config", "template_source_repo")
	require.NoError(t, err)
	assert.Equal(t, "template_source_repo is not set\n", out)

	out, err = run(t, env, "config", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "editor: code --wait")
}

func TestConfig_InvalidCloneMethod(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	_, err := run(t, env, "config", config.KeyCloneMethod, "svn")
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidInput, errors.GetErrorCode(err))
}

func TestPull_NoRepository(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	_, err := run(t, env, "pull")
	require.Error(t, err)
	assert.Equal(t, errors.ErrConfigMissing, errors.GetErrorCode(err))
}

func TestShow(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	out, err := run(t, env, "show", "system-prompt-code.md")
	require.NoError(t, err)
	assert.Contains(t, out, "{{repo-full-path}}")

	_, err = run(t, env, "show", "nope.md")
	require.Error(t, err)
	assert.Equal(t, errors.ErrNotFound, errors.GetErrorCode(err))
}

func TestSettings_NothingFound(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	out, err := run(t, env, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "No VS Code custom_modes.yaml files found.")
}
