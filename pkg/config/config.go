package config

import (
	_ "embed"
	"errors"
	"sort"
	"strings"
)

// Known configuration keys
const (
	KeyEditor              = "editor"
	KeyTemplateSourceRepo  = "template_source_repo"
	KeyVSCodeSettingsPaths = "vscode_settings_paths"
	KeyCloneMethod         = "clone_method"
)

// Clone methods accepted by clone_method
const (
	CloneMethodGit   = "git"
	CloneMethodGoGit = "go-git"
)

//go:embed embedded/defaults.json
var defaultConfig []byte

// listKeys are stored as JSON arrays; every other key is a string.
var listKeys = map[string]bool{
	KeyVSCodeSettingsPaths: true,
}

// Config is the decoded view of the configuration for one invocation
type Config struct {
	Editor              string   `koanf:"editor"`
	TemplateSourceRepo  string   `koanf:"template_source_repo"`
	VSCodeSettingsPaths []string `koanf:"vscode_settings_paths"`
	CloneMethod         string   `koanf:"clone_method"`
}

// HasRemote reports whether a remote template repository is configured
func (c *Config) HasRemote() bool {
	return strings.TrimSpace(c.TemplateSourceRepo) != ""
}

// KnownKeys returns the configuration keys roo-conf reads, sorted
func KnownKeys() []string {
	keys := []string{KeyEditor, KeyTemplateSourceRepo, KeyVSCodeSettingsPaths, KeyCloneMethod}
	sort.Strings(keys)
	return keys
}

// IsListKey reports whether key holds an array of strings
func IsListKey(key string) bool {
	return listKeys[key]
}

// ParseValue converts a command-line value into the stored representation:
// a comma separated list for list keys, the raw string otherwise.
func ParseValue(key, value string) interface{} {
	if !IsListKey(key) {
		return value
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if items == nil {
		items = []string{}
	}
	return items
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
