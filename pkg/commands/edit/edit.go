package edit

import (
	"context"
	"io/fs"

	"github.com/arthur-debert/rooconf/pkg/commands/internal"
	"github.com/arthur-debert/rooconf/pkg/editor"
	"github.com/arthur-debert/rooconf/pkg/errors"
	"github.com/arthur-debert/rooconf/pkg/logging"
	"github.com/arthur-debert/rooconf/pkg/paths"
	"github.com/arthur-debert/rooconf/pkg/types"
)

// EditTemplateOptions defines the options for the EditTemplate command.
type EditTemplateOptions struct {
	// Paths provides system paths (defaults to the current directory)
	Paths paths.Paths
	// FileSystem to use (defaults to OS filesystem)
	FileSystem types.FS
	// BundledFS overrides the templates compiled into the binary
	BundledFS fs.FS

	// Name is the template identifier inside the remote cache
	Name string
	// Launcher defaults to one backed by os/exec
	Launcher *editor.Launcher
	// Context cancels the editor process
	Context context.Context
}

// EditTemplate opens a template from the remote cache in the configured
// editor and waits for the editor to exit.
func EditTemplate(opts EditTemplateOptions) error {
	log := logging.GetLogger("commands.edit")
	log.Debug().Str("command", "EditTemplate").Str("name", opts.Name).Msg("Executing command")

	env, err := internal.LoadEnv(internal.EnvOptions{
		Paths:      opts.Paths,
		FileSystem: opts.FileSystem,
		BundledFS:  opts.BundledFS,
	})
	if err != nil {
		return err
	}

	if env.Config.Editor == "" {
		return errors.New(errors.ErrConfigMissing,
			"no editor configured; set one with: roo-conf config editor <command>")
	}

	catalog, err := env.Catalog()
	if err != nil {
		return err
	}

	path, err := editor.ResolveSourcePath(catalog, opts.Name)
	if err != nil {
		return err
	}

	launcher := opts.Launcher
	if launcher == nil {
		launcher = editor.NewLauncher()
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	if err := launcher.Launch(ctx, env.Config.Editor, path); err != nil {
		return err
	}

	log.Info().Str("command", "EditTemplate").Str("path", path).Msg("Command finished")
	return nil
}
