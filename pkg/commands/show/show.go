package show

import (
	"io/fs"

	"github.com/arthur-debert/rooconf/pkg/commands/internal"
	"github.com/arthur-debert/rooconf/pkg/logging"
	"github.com/arthur-debert/rooconf/pkg/paths"
	"github.com/arthur-debert/rooconf/pkg/templates"
	"github.com/arthur-debert/rooconf/pkg/types"
)

// ShowTemplateOptions defines the options for the ShowTemplate command.
type ShowTemplateOptions struct {
	// Paths provides system paths (defaults to the current directory)
	Paths paths.Paths
	// FileSystem to use (defaults to OS filesystem)
	FileSystem types.FS
	// BundledFS overrides the templates compiled into the binary
	BundledFS fs.FS

	// ID is the template to show
	ID string
}

// ShowTemplate returns the raw content of a template, remote first.
// Nothing is substituted or written.
func ShowTemplate(opts ShowTemplateOptions) (*types.ShowResult, error) {
	log := logging.GetLogger("commands.show")
	log.Debug().Str("command", "ShowTemplate").Str("id", opts.ID).Msg("Executing command")

	env, err := internal.LoadEnv(internal.EnvOptions{
		Paths:      opts.Paths,
		FileSystem: opts.FileSystem,
		BundledFS:  opts.BundledFS,
	})
	if err != nil {
		return nil, err
	}

	catalog, err := env.Catalog()
	if err != nil {
		return nil, err
	}

	id := templates.NormalizeID(opts.ID)
	content, origin, err := catalog.Read(id)
	if err != nil {
		return nil, err
	}

	result := &types.ShowResult{ID: id, Origin: origin, Content: string(content)}
	if origin == types.OriginRemote {
		if p, err := catalog.Remote.Path(id); err == nil {
			result.Path = p
		}
	}

	log.Info().Str("command", "ShowTemplate").Str("origin", string(origin)).Msg("Command finished")
	return result, nil
}
