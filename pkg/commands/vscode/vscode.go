// Package vscode provides the settings command: locate the Roo Code
// custom_modes.yaml files of VS Code server installs and list their modes.
package vscode

import (
	"github.com/arthur-debert/rooconf/pkg/commands/internal"
	"github.com/arthur-debert/rooconf/pkg/logging"
	"github.com/arthur-debert/rooconf/pkg/paths"
	"github.com/arthur-debert/rooconf/pkg/settings"
	"github.com/arthur-debert/rooconf/pkg/types"
)

// DiscoverSettingsOptions defines the options for the DiscoverSettings command.
type DiscoverSettingsOptions struct {
	// Paths provides system paths (defaults to the current directory)
	Paths paths.Paths
	// FileSystem to use (defaults to OS filesystem)
	FileSystem types.FS

	// Refresh ignores stored paths and searches again
	Refresh bool
}

// DiscoverSettings returns the known settings files and their modes. A
// file that cannot be parsed is reported in the result, not as an error.
func DiscoverSettings(opts DiscoverSettingsOptions) (*types.SettingsResult, error) {
	log := logging.GetLogger("commands.settings")
	log.Debug().Str("command", "DiscoverSettings").Bool("refresh", opts.Refresh).Msg("Executing command")

	env, err := internal.LoadEnv(internal.EnvOptions{Paths: opts.Paths, FileSystem: opts.FileSystem})
	if err != nil {
		return nil, err
	}

	discovery, err := settings.Manage(env.Store, env.FS, env.Paths.HomeDir(), opts.Refresh)
	if err != nil {
		return nil, err
	}

	result := &types.SettingsResult{
		Source: string(discovery.Source),
		Files:  make([]types.SettingsFile, 0, len(discovery.Paths)),
	}
	for _, p := range discovery.Paths {
		file := types.SettingsFile{Path: p, Modes: []types.CustomMode{}}
		modes, err := settings.ReadModes(env.FS, p)
		if err != nil {
			log.Warn().Err(err).Str("path", p).Msg("Cannot read settings file")
			file.Error = err.Error()
		}
		for _, m := range modes {
			file.Modes = append(file.Modes, types.CustomMode{Slug: m.Slug, Name: m.Name, Source: m.Source})
		}
		result.Files = append(result.Files, file)
	}

	log.Info().Str("command", "DiscoverSettings").Int("fileCount", len(result.Files)).Msg("Command finished")
	return result, nil
}
