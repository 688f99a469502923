// Package internal holds the setup shared by every roo-conf command:
// resolving paths, loading configuration once per invocation and
// building the template catalog from it.
package internal

import (
	"io/fs"

	"github.com/arthur-debert/rooconf/pkg/bundled"
	"github.com/arthur-debert/rooconf/pkg/config"
	"github.com/arthur-debert/rooconf/pkg/filesystem"
	"github.com/arthur-debert/rooconf/pkg/logging"
	"github.com/arthur-debert/rooconf/pkg/paths"
	"github.com/arthur-debert/rooconf/pkg/templates"
	"github.com/arthur-debert/rooconf/pkg/types"
)

// EnvOptions are the dependencies a command may inject. Zero values
// select the real implementations.
type EnvOptions struct {
	Paths      paths.Paths
	FileSystem types.FS
	BundledFS  fs.FS
}

// Env is the per-invocation context handed to command logic
type Env struct {
	FS        types.FS
	Paths     paths.Paths
	Store     *config.Store
	Config    *config.Config
	BundledFS fs.FS
}

// LoadEnv resolves defaults and loads the configuration
func LoadEnv(opts EnvOptions) (*Env, error) {
	logger := logging.GetLogger("commands.env")

	env := &Env{
		FS:        opts.FileSystem,
		Paths:     opts.Paths,
		BundledFS: opts.BundledFS,
	}
	if env.FS == nil {
		env.FS = filesystem.NewOS()
	}
	if env.Paths == nil {
		p, err := paths.New("")
		if err != nil {
			return nil, err
		}
		env.Paths = p
	}
	if env.BundledFS == nil {
		env.BundledFS = bundled.FS()
	}

	env.Store = config.NewStore(env.FS, env.Paths.ConfigFile())
	cfg, err := env.Store.Load()
	if err != nil {
		return nil, err
	}
	env.Config = cfg

	logger.Debug().
		Str("workDir", env.Paths.WorkDir()).
		Str("config", env.Paths.ConfigFile()).
		Str("cache", env.Paths.TemplatesDir()).
		Bool("remote", cfg.HasRemote()).
		Msg("Loaded environment")

	return env, nil
}

// Catalog resolves the template sources for this invocation
func (e *Env) Catalog() (*templates.Catalog, error) {
	return templates.Resolve(templates.ResolveOptions{
		FS:        e.FS,
		CacheDir:  e.Paths.TemplatesDir(),
		Config:    e.Config,
		BundledFS: e.BundledFS,
	})
}
