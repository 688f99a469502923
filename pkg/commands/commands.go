// Package commands provides high-level command implementations for roo-conf.
//
// This package is the orchestration layer between the CLI and the
// template, deployment, editor and sync packages. Every command loads the
// configuration once, builds what it needs from it and returns a result
// struct for the CLI to render.
//
// Each command is implemented in its own subdirectory:
//   - deploy/    - DeployTemplates
//   - list/      - ListTemplates
//   - edit/      - EditTemplate
//   - pull/      - PullTemplates
//   - show/      - ShowTemplate
//   - configure/ - GetConfig, SetConfig
//   - vscode/    - DiscoverSettings
//   - internal/  - shared environment loading
package commands

import (
	"github.com/arthur-debert/rooconf/pkg/commands/configure"
	"github.com/arthur-debert/rooconf/pkg/commands/deploy"
	"github.com/arthur-debert/rooconf/pkg/commands/edit"
	"github.com/arthur-debert/rooconf/pkg/commands/list"
	"github.com/arthur-debert/rooconf/pkg/commands/pull"
	"github.com/arthur-debert/rooconf/pkg/commands/show"
	"github.com/arthur-debert/rooconf/pkg/commands/vscode"
	"github.com/arthur-debert/rooconf/pkg/types"
)

// DeployTemplates writes the selected templates into <cwd>/.roo.
type DeployTemplatesOptions = deploy.DeployTemplatesOptions

func DeployTemplates(opts DeployTemplatesOptions) (*types.DeployResult, error) {
	return deploy.DeployTemplates(opts)
}

// ListTemplates lists the templates of both sources.
type ListTemplatesOptions = list.ListTemplatesOptions

func ListTemplates(opts ListTemplatesOptions) (*types.ListResult, error) {
	return list.ListTemplates(opts)
}

// EditTemplate opens a remote template in the configured editor.
type EditTemplateOptions = edit.EditTemplateOptions

func EditTemplate(opts EditTemplateOptions) error {
	return edit.EditTemplate(opts)
}

// PullTemplates refreshes the remote template cache.
type PullTemplatesOptions = pull.PullTemplatesOptions

func PullTemplates(opts PullTemplatesOptions) (*types.PullResult, error) {
	return pull.PullTemplates(opts)
}

// ShowTemplate returns the raw content of one template.
type ShowTemplateOptions = show.ShowTemplateOptions

func ShowTemplate(opts ShowTemplateOptions) (*types.ShowResult, error) {
	return show.ShowTemplate(opts)
}

// GetConfig returns one or all settings.
type GetConfigOptions = configure.GetConfigOptions

func GetConfig(opts GetConfigOptions) (*types.ConfigResult, error) {
	return configure.GetConfig(opts)
}

// SetConfig persists one setting.
type SetConfigOptions = configure.SetConfigOptions

func SetConfig(opts SetConfigOptions) (*types.ConfigResult, error) {
	return configure.SetConfig(opts)
}

// DiscoverSettings finds the VS Code custom modes files.
type DiscoverSettingsOptions = vscode.DiscoverSettingsOptions

func DiscoverSettings(opts DiscoverSettingsOptions) (*types.SettingsResult, error) {
	return vscode.DiscoverSettings(opts)
}
