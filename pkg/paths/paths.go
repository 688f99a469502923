package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/rooconf/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for roo-conf
	EnvConfigDir = "ROO_CONF_CONFIG_DIR"

	// EnvTemplatesDir overrides the template cache location
	EnvTemplatesDir = "ROO_CONF_TEMPLATES_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// EnvStateHome is the XDG state root holding the log file
	EnvStateHome = "XDG_STATE_HOME"
)

// Fixed names. These are not user-configurable.
const (
	// AppDirName is the directory name used under XDG roots
	AppDirName = "roo-conf"

	// ConfigFileName is the persisted key/value configuration
	ConfigFileName = "config.json"

	// TemplatesDirName is the remote template cache under the config dir
	TemplatesDirName = "templates"

	// DeployDirName is the deployment target under the working directory
	DeployDirName = ".roo"

	// LogFileName is the name of the log file
	LogFileName = "roo-conf.log"
)

// Paths provides centralized path management for roo-conf
type Paths interface {
	WorkDir() string
	HomeDir() string
	ConfigDir() string
	ConfigFile() string
	TemplatesDir() string
	StateDir() string
	LogFilePath() string
	DeployDir() string
	TargetPath(id string) string
}

type paths struct {
	workDir   string
	homeDir   string
	configDir string
	templates string
	stateDir  string
}

// New creates a Paths instance for the given working directory.
// An empty workDir means the current working directory.
func New(workDir string) (Paths, error) {
	p := &paths{}

	if workDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to get current directory")
		}
		workDir = cwd
	}

	abs, err := filepath.Abs(expandHome(workDir))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", workDir)
	}
	p.workDir = abs

	home, err := GetHomeDirectory()
	if err != nil {
		return nil, err
	}
	p.homeDir = home

	p.setupXDGDirs()
	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = expandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvTemplatesDir); dir != "" {
		p.templates = expandHome(dir)
	} else {
		p.templates = filepath.Join(p.configDir, TemplatesDirName)
	}

	p.stateDir = stateDirFor(p.homeDir)
}

// stateDirFor resolves the roo-conf state directory. XDG_STATE_HOME is read
// at call time rather than through xdg.StateHome, which is fixed at init.
func stateDirFor(home string) string {
	if dir := os.Getenv(EnvStateHome); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(home, ".local", "state", AppDirName)
}

// DefaultStateDir returns the state directory without building a full Paths.
// It is usable before a working directory is known, e.g. during logger setup.
func DefaultStateDir() string {
	home, err := GetHomeDirectory()
	if err != nil {
		home = "."
	}
	return stateDirFor(home)
}

// DefaultLogFilePath returns <state dir>/roo-conf.log
func DefaultLogFilePath() string {
	return filepath.Join(DefaultStateDir(), LogFileName)
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// ExpandHome expands a leading ~ in path
func ExpandHome(path string) string {
	return expandHome(path)
}

// WorkDir returns the absolute invocation directory
func (p *paths) WorkDir() string {
	return p.workDir
}

// HomeDir returns the user's home directory
func (p *paths) HomeDir() string {
	return p.homeDir
}

// ConfigDir returns the config directory for roo-conf
func (p *paths) ConfigDir() string {
	return p.configDir
}

// ConfigFile returns the path of config.json
func (p *paths) ConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// TemplatesDir returns the remote template cache directory
func (p *paths) TemplatesDir() string {
	return p.templates
}

// StateDir returns the state directory
func (p *paths) StateDir() string {
	return p.stateDir
}

// LogFilePath returns the path to the roo-conf log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// DeployDir returns <workDir>/.roo
func (p *paths) DeployDir() string {
	return filepath.Join(p.workDir, DeployDirName)
}

// TargetPath maps a slash-separated template identifier to its deployed location
func (p *paths) TargetPath(id string) string {
	return filepath.Join(p.DeployDir(), filepath.FromSlash(id))
}

// IsWithin reports whether path lies inside root once both are cleaned.
func IsWithin(root, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return homeDir, nil
}
