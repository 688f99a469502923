// pkg/commands/edit/edit_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: testutil.TestEnvironment (memory), testify mock runner
// PURPOSE: Verify the edit command opens cache files with the configured editor

package edit_test

import (
	"context"
	"testing"

	"github.com/arthur-debert/rooconf/pkg/commands/edit"
	"github.com/arthur-debert/rooconf/pkg/config"
	"github.com/arthur-debert/rooconf/pkg/editor"
	"github.com/arthur-debert/rooconf/pkg/errors"
	"github.com/arthur-debert/rooconf/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) LookPath(file string) (string, error) {
	args := m.Called(file)
	return args.String(0), args.Error(1)
}

func (m *MockRunner) Run(ctx context.Context, name string, argv ...string) error {
	args := m.Called(name, argv)
	return args.Error(0)
}

func TestEditTemplate_OpensCacheFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WithRemote("https://example.com/prompts.git", map[string]string{"modes/debug.md": "x"})
	env.SetConfig(config.KeyEditor, "code --wait")

	runner := new(MockRunner)
	runner.On("LookPath", "code").Return("/usr/bin/code", nil)
	runner.On("Run", "/usr/bin/code", []string{"--wait", env.Paths.TemplatesDir() + "/modes/debug.md"}).Return(nil)

	err := edit.EditTemplate(edit.EditTemplateOptions{
		Paths:      env.Paths,
		FileSystem: env.FS,
		Name:       "modes/debug.md",
		Launcher:   &editor.Launcher{Runner: runner},
	})
	require.NoError(t, err)
	runner.AssertExpectations(t)
}

func TestEditTemplate_Errors(t *testing.T) {
	t.Run("no editor", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.WithRemote("https://example.com/prompts.git", map[string]string{"a.md": "x"})

		err := edit.EditTemplate(edit.EditTemplateOptions{Paths: env.Paths, FileSystem: env.FS, Name: "a.md"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigMissing))
	})

	t.Run("bundled only", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.SetConfig(config.KeyEditor, "vim")

		err := edit.EditTemplate(edit.EditTemplateOptions{Paths: env.Paths, FileSystem: env.FS, Name: "system-prompt-code.md"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupported))
	})

	t.Run("missing template", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.WithRemote("https://example.com/prompts.git", map[string]string{"a.md": "x"})
		env.SetConfig(config.KeyEditor, "vim")

		runner := new(MockRunner)
		err := edit.EditTemplate(edit.EditTemplateOptions{
			Paths:      env.Paths,
			FileSystem: env.FS,
			Name:       "b.md",
			Launcher:   &editor.Launcher{Runner: runner},
		})
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
		runner.AssertNotCalled(t, "LookPath", mock.Anything)
	})
}
