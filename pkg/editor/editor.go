// Package editor opens templates from the remote cache in the user's
// configured editor.
package editor

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/rooconf/pkg/errors"
	"github.com/arthur-debert/rooconf/pkg/logging"
	"github.com/arthur-debert/rooconf/pkg/templates"
	"github.com/arthur-debert/rooconf/pkg/types"
	"mvdan.cc/sh/v3/shell"
)

// Runner starts external processes
type Runner interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs processes attached to the current terminal
type ExecRunner struct{}

// LookPath resolves file against PATH
func (ExecRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run starts name and waits for it to exit
func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	logging.LogCommand(name, args)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Launcher opens files in an editor
type Launcher struct {
	Runner Runner
}

// NewLauncher returns a launcher backed by os/exec
func NewLauncher() *Launcher {
	return &Launcher{Runner: ExecRunner{}}
}

// ResolveSourcePath returns the on-disk location of id inside the remote
// cache. Bundled templates ship inside the binary and cannot be edited.
func ResolveSourcePath(c *templates.Catalog, id string) (string, error) {
	id = templates.NormalizeID(id)

	if !c.HasRemote() {
		return "", errors.New(errors.ErrUnsupported,
			"bundled templates are read-only; configure template_source_repo and run pull to edit templates").
			WithDetail("id", id)
	}

	path, err := c.Remote.Path(id)
	if err != nil {
		return "", err
	}
	if origin, ok := c.Origin(id); !ok || origin != types.OriginRemote {
		return "", errors.Newf(errors.ErrNotFound, "template %q not found in %s", id, c.Remote.Root()).
			WithDetail("id", id)
	}
	return path, nil
}

// Launch runs editorCmd with path appended as the final argument.
// editorCmd is split with shell word rules so "code --wait" works.
func (l *Launcher) Launch(ctx context.Context, editorCmd, path string) error {
	logger := logging.GetLogger("editor")

	if strings.TrimSpace(editorCmd) == "" {
		return errors.New(errors.ErrConfigMissing,
			"no editor configured; set one with: roo-conf config editor <command>")
	}

	words, err := shell.Fields(editorCmd, nil)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "cannot parse editor command %q", editorCmd)
	}
	if len(words) == 0 {
		return errors.New(errors.ErrConfigMissing, "editor command is empty")
	}

	bin, err := l.Runner.LookPath(words[0])
	if err != nil {
		return errors.Wrapf(err, errors.ErrEditorNotFound, "editor %q not found", words[0]).
			WithDetail("editor", editorCmd)
	}

	args := append(words[1:], path)
	logger.Info().Str("editor", bin).Strs("args", args).Msg("Launching editor")

	if err := l.Runner.Run(ctx, bin, args...); err != nil {
		return errors.Wrapf(err, errors.ErrExternalProcess, "editor %q failed", words[0]).
			WithDetail("path", path)
	}
	return nil
}
