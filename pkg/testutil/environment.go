// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate test environments with isolated roo-conf directories

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/rooconf/pkg/config"
	"github.com/arthur-debert/rooconf/pkg/filesystem"
	"github.com/arthur-debert/rooconf/pkg/paths"
	"github.com/arthur-debert/rooconf/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a complete test environment with all dependencies
type TestEnvironment struct {
	// Core paths
	HomeDir   string
	ConfigDir string
	StateDir  string
	WorkDir   string

	// Core dependencies
	FS    types.FS
	Paths paths.Paths

	// Environment type
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment. Every ROO_CONF_*
// override inherited from the caller's shell is cleared for the test.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		root := "/virtual"
		env.HomeDir = filepath.Join(root, "home")
		env.WorkDir = filepath.Join(root, "projects", "demo")
		env.FS = filesystem.NewMemoryFS()
	case EnvIsolated:
		root := t.TempDir()
		env.HomeDir = filepath.Join(root, "home")
		env.WorkDir = filepath.Join(root, "projects", "demo")
		env.FS = filesystem.NewOS()
	}
	env.ConfigDir = filepath.Join(env.HomeDir, ".config", paths.AppDirName)
	env.StateDir = filepath.Join(env.HomeDir, ".local", "state")

	for _, dir := range []string{env.HomeDir, env.WorkDir} {
		if err := env.FS.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv("XDG_STATE_HOME", env.StateDir)
	unsetenv(t, paths.EnvTemplatesDir)
	for _, key := range config.KnownKeys() {
		unsetenv(t, config.EnvKey(key))
	}

	p, err := paths.New(env.WorkDir)
	if err != nil {
		t.Fatalf("Failed to create paths: %v", err)
	}
	env.Paths = p

	return env
}

// unsetenv removes key for the duration of the test
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("Failed to unset %s: %v", key, err)
	}
}

// ConfigStore returns a store for the environment's config file
func (env *TestEnvironment) ConfigStore() *config.Store {
	return config.NewStore(env.FS, env.Paths.ConfigFile())
}

// SetConfig writes key to the config file
func (env *TestEnvironment) SetConfig(key string, value interface{}) {
	env.t.Helper()
	if err := env.ConfigStore().Set(key, value); err != nil {
		env.t.Fatalf("Failed to set config %s: %v", key, err)
	}
}

// WriteCache populates the remote template cache. Keys are
// slash-separated identifiers.
func (env *TestEnvironment) WriteCache(files map[string]string) {
	env.t.Helper()
	WriteTree(env.t, env.FS, env.Paths.TemplatesDir(), files)
}

// WithRemote configures a repository URL and populates the cache
func (env *TestEnvironment) WithRemote(url string, files map[string]string) {
	env.t.Helper()
	env.SetConfig(config.KeyTemplateSourceRepo, url)
	env.WriteCache(files)
}

// ReadDeployed returns the content of a deployed template
func (env *TestEnvironment) ReadDeployed(id string) string {
	env.t.Helper()
	data, err := env.FS.ReadFile(env.Paths.TargetPath(id))
	if err != nil {
		env.t.Fatalf("Failed to read deployed %s: %v", id, err)
	}
	return string(data)
}

// DeployedExists reports whether id was deployed
func (env *TestEnvironment) DeployedExists(id string) bool {
	_, err := env.FS.Stat(env.Paths.TargetPath(id))
	return err == nil
}
