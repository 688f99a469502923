package pull

import (
	"context"
	"io/fs"

	"github.com/arthur-debert/rooconf/pkg/commands/internal"
	"github.com/arthur-debert/rooconf/pkg/logging"
	"github.com/arthur-debert/rooconf/pkg/paths"
	"github.com/arthur-debert/rooconf/pkg/remote"
	"github.com/arthur-debert/rooconf/pkg/templates"
	"github.com/arthur-debert/rooconf/pkg/types"
)

// PullTemplatesOptions defines the options for the PullTemplates command.
type PullTemplatesOptions struct {
	// Paths provides system paths (defaults to the current directory)
	Paths paths.Paths
	// FileSystem to use (defaults to OS filesystem)
	FileSystem types.FS
	// BundledFS overrides the templates compiled into the binary
	BundledFS fs.FS

	// Cloner overrides the clone_method setting
	Cloner remote.Cloner
	// Context cancels the clone
	Context context.Context
}

// PullTemplates replaces the template cache with a fresh shallow clone of
// template_source_repo.
func PullTemplates(opts PullTemplatesOptions) (*types.PullResult, error) {
	log := logging.GetLogger("commands.pull")
	log.Debug().Str("command", "PullTemplates").Msg("Executing command")

	env, err := internal.LoadEnv(internal.EnvOptions{
		Paths:      opts.Paths,
		FileSystem: opts.FileSystem,
		BundledFS:  opts.BundledFS,
	})
	if err != nil {
		return nil, err
	}

	cloner := opts.Cloner
	if cloner == nil {
		cloner = remote.NewCloner(env.Config.CloneMethod)
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cacheDir := env.Paths.TemplatesDir()
	syncer := &remote.Syncer{FS: env.FS, Cloner: cloner}
	if err := syncer.Sync(ctx, env.Config.TemplateSourceRepo, cacheDir); err != nil {
		return nil, err
	}

	result := &types.PullResult{
		URL:      env.Config.TemplateSourceRepo,
		CacheDir: cacheDir,
		Method:   cloner.Name(),
	}

	ids, err := templates.NewRemoteSource(env.FS, cacheDir).List()
	if err != nil {
		log.Warn().Err(err).Msg("Could not list cloned templates")
	} else {
		result.Templates = len(ids)
	}

	log.Info().Str("command", "PullTemplates").Int("templateCount", result.Templates).Msg("Command finished")
	return result, nil
}
