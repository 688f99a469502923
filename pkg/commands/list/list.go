package list

import (
	"io/fs"

	"github.com/arthur-debert/rooconf/pkg/commands/internal"
	"github.com/arthur-debert/rooconf/pkg/logging"
	"github.com/arthur-debert/rooconf/pkg/paths"
	"github.com/arthur-debert/rooconf/pkg/types"
)

// ListTemplatesOptions defines the options for the ListTemplates command.
type ListTemplatesOptions struct {
	// Paths provides system paths (defaults to the current directory)
	Paths paths.Paths
	// FileSystem to use (defaults to OS filesystem)
	FileSystem types.FS
	// BundledFS overrides the templates compiled into the binary
	BundledFS fs.FS
}

// ListTemplates returns the templates of both sources, remote first.
func ListTemplates(opts ListTemplatesOptions) (*types.ListResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "ListTemplates").Msg("Executing command")

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

	result := &types.ListResult{
		ActiveOrigin: catalog.ActiveOrigin(),
		CacheDir:     env.Paths.TemplatesDir(),
		Templates:    catalog.List(),
	}

	log.Info().Str("command", "ListTemplates").Int("templateCount", len(result.Templates)).Msg("Command finished")
	return result, nil
}
