package remote

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/arthur-debert/rooconf/pkg/config"
	"github.com/arthur-debert/rooconf/pkg/errors"
	"github.com/arthur-debert/rooconf/pkg/logging"
	"github.com/go-git/go-git/v5"
)

// Cloner performs a shallow clone of url into dir
type Cloner interface {
	Name() string
	Clone(ctx context.Context, url, dir string, depth int) error
}

// NewCloner returns the cloner for a clone_method setting. Unknown or
// empty methods fall back to the git command line.
func NewCloner(method string) Cloner {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case config.CloneMethodGoGit:
		return GoGit{}
	default:
		return GitCLI{}
	}
}

// GitCLI clones by running the git executable
type GitCLI struct {
	// Binary defaults to "git"
	Binary string
}

// Name returns "git"
func (g GitCLI) Name() string {
	return config.CloneMethodGit
}

// Clone runs git clone --depth <depth> url dir
func (g GitCLI) Clone(ctx context.Context, url, dir string, depth int) error {
	bin := g.Binary
	if bin == "" {
		bin = "git"
	}

	path, err := exec.LookPath(bin)
	if err != nil {
		return errors.Wrapf(err, errors.ErrExternalProcess, "%s is not installed or not on PATH", bin)
	}

	args := []string{"clone"}
	if depth > 0 {
		args = append(args, "--depth", fmt.Sprint(depth))
	}
	args = append(args, "--", url, dir)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stderr = &stderr

	logging.LogCommand(path, args)

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		var exitErr *exec.ExitError
		if !stderrors.As(err, &exitErr) {
			return errors.Wrapf(err, errors.ErrExternalProcess, "failed to run git: %s", msg)
		}
		return errors.Wrapf(err, errors.ErrClone, "git clone failed: %s", msg).WithDetail("url", url)
	}
	return nil
}

// GoGit clones in process with go-git, no git executable required
type GoGit struct{}

// Name returns "go-git"
func (GoGit) Name() string {
	return config.CloneMethodGoGit
}

// Clone performs a shallow clone with go-git
func (GoGit) Clone(ctx context.Context, url, dir string, depth int) error {
	logger := logging.GetLogger("remote.gogit")
	logger.Debug().Str("url", url).Str("dir", dir).Msg("Cloning with go-git")

	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:          url,
		Depth:        depth,
		SingleBranch: true,
		Tags:         git.NoTags,
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrClone, "git clone failed: %v", err).WithDetail("url", url)
	}
	return nil
}
