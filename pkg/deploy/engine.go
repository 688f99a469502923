package deploy

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/rooconf/pkg/errors"
	"github.com/arthur-debert/rooconf/pkg/logging"
	"github.com/arthur-debert/rooconf/pkg/paths"
	"github.com/arthur-debert/rooconf/pkg/types"
)

// Placeholder is replaced with the project's absolute path in Markdown templates
const Placeholder = "{{repo-full-path}}"

// ContentSource supplies template content along with its origin
type ContentSource interface {
	Read(id string) ([]byte, types.Origin, error)
}

// Engine writes templates into a target directory
type Engine struct {
	FS     types.FS
	Source ContentSource
	// WorkDir is substituted for the placeholder
	WorkDir string
	// Placeholder defaults to the package constant when empty
	Placeholder string
	// Progress, when set, is called after each file is processed
	Progress func(types.FileResult)
}

// Substitute replaces every occurrence of placeholder with workDir when id
// names a Markdown file. Other content is returned unchanged.
func Substitute(id string, content []byte, placeholder, workDir string) []byte {
	if filepath.Ext(id) != ".md" {
		return content
	}
	return []byte(strings.ReplaceAll(string(content), placeholder, workDir))
}

// Deploy writes every id under targetRoot and reports the outcome per file
func (e *Engine) Deploy(ids []string, targetRoot string) *types.DeployResult {
	logger := logging.GetLogger("deploy")

	placeholder := e.Placeholder
	if placeholder == "" {
		placeholder = Placeholder
	}

	result := &types.DeployResult{
		TargetRoot: targetRoot,
		Files:      make([]types.FileResult, 0, len(ids)),
	}

	for _, id := range ids {
		fr := e.deployOne(id, targetRoot, placeholder)
		if fr.OK() {
			logger.Info().Str("id", id).Str("origin", string(fr.Origin)).Str("target", fr.Target).Msg("Deployed template")
		} else {
			logger.Error().Err(fr.Err).Str("id", id).Msg("Failed to deploy template")
		}
		result.Files = append(result.Files, fr)
		if e.Progress != nil {
			e.Progress(fr)
		}
	}

	logger.Debug().
		Str("target", targetRoot).
		Int("succeeded", result.Succeeded()).
		Int("failed", result.Failed()).
		Msg("Deployment finished")

	return result
}

func (e *Engine) deployOne(id, targetRoot, placeholder string) types.FileResult {
	fr := types.FileResult{ID: id}

	target := filepath.Join(targetRoot, filepath.FromSlash(id))
	fr.Target = target
	if !paths.IsWithin(targetRoot, target) {
		fr.Err = errors.Newf(errors.ErrInvalidInput, "template %q resolves outside %s", id, targetRoot).
			WithDetail("id", id)
		return fr
	}

	content, origin, err := e.Source.Read(id)
	fr.Origin = origin
	if err != nil {
		fr.Err = err
		return fr
	}

	content = Substitute(id, content, placeholder, e.WorkDir)

	dir := filepath.Dir(target)
	if err := e.FS.MkdirAll(dir, 0755); err != nil {
		fr.Err = errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir).
			WithDetail("id", id)
		return fr
	}
	if err := e.FS.WriteFile(target, content, 0644); err != nil {
		fr.Err = errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", target).
			WithDetail("id", id)
		return fr
	}

	return fr
}
