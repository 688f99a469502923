// Package configure provides the config command: print every setting,
// print one, or persist a new value.
package configure

import (
	"strings"

	"github.com/arthur-debert/rooconf/pkg/commands/internal"
	"github.com/arthur-debert/rooconf/pkg/config"
	"github.com/arthur-debert/rooconf/pkg/errors"
	"github.com/arthur-debert/rooconf/pkg/logging"
	"github.com/arthur-debert/rooconf/pkg/paths"
	"github.com/arthur-debert/rooconf/pkg/types"
)

// GetConfigOptions defines the options for the GetConfig command.
type GetConfigOptions struct {
	// Paths provides system paths (defaults to the current directory)
	Paths paths.Paths
	// FileSystem to use (defaults to OS filesystem)
	FileSystem types.FS

	// Key selects one setting. Empty returns all of them.
	Key string
	// Format is used when printing all settings: json (default), yaml or toml
	Format string
}

// SetConfigOptions defines the options for the SetConfig command.
type SetConfigOptions struct {
	// Paths provides system paths (defaults to the current directory)
	Paths paths.Paths
	// FileSystem to use (defaults to OS filesystem)
	FileSystem types.FS

	Key   string
	Value string
}

// GetConfig returns the effective configuration, including defaults and
// environment overrides. A key that is not set is reported with Found
// false rather than as an error.
func GetConfig(opts GetConfigOptions) (*types.ConfigResult, error) {
	log := logging.GetLogger("commands.config")
	log.Debug().Str("command", "GetConfig").Str("key", opts.Key).Msg("Executing command")

	if !config.IsFormat(opts.Format) {
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format %q (want json, yaml or toml)", opts.Format)
	}

	env, err := internal.LoadEnv(internal.EnvOptions{Paths: opts.Paths, FileSystem: opts.FileSystem})
	if err != nil {
		return nil, err
	}

	result := &types.ConfigResult{
		Path:   env.Store.Path(),
		Key:    strings.TrimSpace(opts.Key),
		Values: map[string]interface{}{},
		Format: opts.Format,
	}

	if result.Key == "" {
		all, err := env.Store.All()
		if err != nil {
			return nil, err
		}
		result.Values = all
		result.Found = len(all) > 0
		return result, nil
	}

	value, ok, err := env.Store.Get(result.Key)
	if err != nil {
		return nil, err
	}
	if ok {
		result.Values[result.Key] = value
		result.Found = true
	}

	log.Info().Str("command", "GetConfig").Bool("found", result.Found).Msg("Command finished")
	return result, nil
}

// SetConfig stores a value. Unknown keys are accepted and persisted;
// clone_method is validated.
func SetConfig(opts SetConfigOptions) (*types.ConfigResult, error) {
	log := logging.GetLogger("commands.config")
	log.Debug().Str("command", "SetConfig").Str("key", opts.Key).Msg("Executing command")

	key := strings.TrimSpace(opts.Key)
	if key == "" {
		return nil, errors.New(errors.ErrInvalidInput, "configuration key must not be empty")
	}
	if key == config.KeyCloneMethod {
		switch opts.Value {
		case config.CloneMethodGit, config.CloneMethodGoGit:
		default:
			return nil, errors.Newf(errors.ErrInvalidInput,
				"invalid clone_method %q (expected %q or %q)", opts.Value, config.CloneMethodGit, config.CloneMethodGoGit).
				WithDetail("key", key)
		}
	}

	env, err := internal.LoadEnv(internal.EnvOptions{Paths: opts.Paths, FileSystem: opts.FileSystem})
	if err != nil {
		return nil, err
	}

	value := config.ParseValue(key, opts.Value)
	if err := env.Store.Set(key, value); err != nil {
		return nil, err
	}

	log.Info().Str("command", "SetConfig").Str("key", key).Msg("Command finished")
	return &types.ConfigResult{
		Path:    env.Store.Path(),
		Key:     key,
		Found:   true,
		Updated: true,
		Values:  map[string]interface{}{key: value},
	}, nil
}
