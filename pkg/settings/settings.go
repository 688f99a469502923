// Package settings locates the Roo Code custom_modes.yaml files installed
// by VS Code server and VS Code Insiders server, and remembers their
// locations in the configuration.
package settings

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/arthur-debert/rooconf/pkg/config"
	"github.com/arthur-debert/rooconf/pkg/errors"
	"github.com/arthur-debert/rooconf/pkg/logging"
	"github.com/arthur-debert/rooconf/pkg/types"
	"gopkg.in/yaml.v3"
)

const (
	// ExtensionID is the Roo Code extension's global storage directory
	ExtensionID = "rooveterinaryinc.roo-cline"
	// ModesFileName is the file holding custom mode definitions
	ModesFileName = "custom_modes.yaml"
)

// serverDirs are the per-user VS Code server installs, checked in order
var serverDirs = []string{".vscode-server", ".vscode-server-insiders"}

// Source tells where Manage got its paths from
type Source string

const (
	SourceConfig     Source = "config"
	SourceDiscovered Source = "discovered"
	SourceNone       Source = "none"
)

// PathStore is the part of config.Store Manage needs
type PathStore interface {
	Load() (*config.Config, error)
	Set(key string, value interface{}) error
}

// Discovery is the result of Manage
type Discovery struct {
	Paths  []string `json:"paths"`
	Source Source   `json:"source"`
}

// Mode is one entry of custom_modes.yaml
type Mode struct {
	Slug           string `yaml:"slug" json:"slug"`
	Name           string `yaml:"name" json:"name"`
	RoleDefinition string `yaml:"roleDefinition" json:"-"`
	Source         string `yaml:"source" json:"source,omitempty"`
}

type modesFile struct {
	CustomModes []Mode `yaml:"customModes"`
}

// ModesPath returns the custom_modes.yaml location for one server install
func ModesPath(home, serverDir string) string {
	return filepath.Join(home, serverDir, "data", "User", "globalStorage", ExtensionID, "settings", ModesFileName)
}

// FindSettingsPaths returns the custom_modes.yaml files that exist under
// home. Only Linux and macOS layouts are known.
func FindSettingsPaths(fs types.FS, home string) []string {
	logger := logging.GetLogger("settings")

	if runtime.GOOS == "windows" {
		logger.Debug().Msg("Settings discovery is not available on Windows")
		return nil
	}

	var found []string
	for _, dir := range serverDirs {
		p := ModesPath(home, dir)
		info, err := fs.Stat(p)
		if err != nil || info.IsDir() {
			logger.Trace().Str("path", p).Msg("No settings file")
			continue
		}
		found = append(found, p)
	}
	return found
}

// Manage returns the stored settings paths, or discovers and stores them
// when none are stored or refresh is set. Nothing is written when
// discovery finds no file.
func Manage(store PathStore, fs types.FS, home string, refresh bool) (*Discovery, error) {
	logger := logging.GetLogger("settings")

	cfg, err := store.Load()
	if err != nil {
		return nil, err
	}

	if len(cfg.VSCodeSettingsPaths) > 0 && !refresh {
		logger.Debug().Strs("paths", cfg.VSCodeSettingsPaths).Msg("Using stored settings paths")
		return &Discovery{Paths: cfg.VSCodeSettingsPaths, Source: SourceConfig}, nil
	}

	found := FindSettingsPaths(fs, home)
	if len(found) == 0 {
		logger.Info().Str("home", home).Msg("No VS Code settings files found")
		return &Discovery{Paths: []string{}, Source: SourceNone}, nil
	}

	if err := store.Set(config.KeyVSCodeSettingsPaths, found); err != nil {
		return nil, err
	}
	logger.Info().Strs("paths", found).Msg("Stored discovered settings paths")
	return &Discovery{Paths: found, Source: SourceDiscovered}, nil
}

// ReadModes parses the custom modes defined in a custom_modes.yaml file
func ReadModes(fs types.FS, path string) ([]Mode, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrNotFound, "settings file %s not found", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path)
	}

	var f modesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}
	return f.CustomModes, nil
}
