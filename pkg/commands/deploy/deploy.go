// Package deploy provides the deploy command: select templates by
// component tokens and write them into <cwd>/.roo.
package deploy

import (
	"io/fs"

	"github.com/arthur-debert/rooconf/pkg/commands/internal"
	"github.com/arthur-debert/rooconf/pkg/deploy"
	"github.com/arthur-debert/rooconf/pkg/logging"
	"github.com/arthur-debert/rooconf/pkg/paths"
	"github.com/arthur-debert/rooconf/pkg/selection"
	"github.com/arthur-debert/rooconf/pkg/templates"
	"github.com/arthur-debert/rooconf/pkg/types"
)

// DeployTemplatesOptions defines the options for the DeployTemplates command.
type DeployTemplatesOptions struct {
	// Paths provides system paths (defaults to the current directory)
	Paths paths.Paths
	// FileSystem to use (defaults to OS filesystem)
	FileSystem types.FS
	// BundledFS overrides the templates compiled into the binary
	BundledFS fs.FS

	// Components filters the templates to deploy. Empty means all.
	Components []string
	// Progress is called after each file is written or fails
	Progress func(types.FileResult)
}

// DeployTemplates deploys the selected templates. Per-file failures are
// reported in the result; an error is returned only when nothing could
// be attempted.
func DeployTemplates(opts DeployTemplatesOptions) (*types.DeployResult, error) {
	log := logging.GetLogger("commands.deploy")
	log.Debug().Str("command", "DeployTemplates").Strs("components", opts.Components).Msg("Executing command")

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

	strategy := selection.StrategyFor(catalog)
	sel := selection.SelectTemplates(opts.Components, catalog.Available(), templates.DefaultTemplates, strategy)

	engine := &deploy.Engine{
		FS:       env.FS,
		Source:   catalog,
		WorkDir:  env.Paths.WorkDir(),
		Progress: opts.Progress,
	}
	result := engine.Deploy(sel.IDs, env.Paths.DeployDir())
	result.Origin = catalog.ActiveOrigin()
	result.Warnings = sel.Warnings

	log.Info().
		Str("command", "DeployTemplates").
		Str("origin", string(result.Origin)).
		Int("deployed", result.Succeeded()).
		Int("failed", result.Failed()).
		Msg("Command finished")
	return result, nil
}
