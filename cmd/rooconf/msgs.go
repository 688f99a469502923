package rooconf

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Deploy Roo Code prompt templates into the current project"
	MsgDeployShort     = "Deploy templates into .roo/"
	MsgEditShort       = "Open a template from the template repository in your editor"
	MsgConfigShort     = "Get or set configuration values"
	MsgPullShort       = "Clone the template repository into the local cache"
	MsgListShort       = "List available templates"
	MsgListLong        = "List shows the templates of the pulled template repository and the bundled templates, and which source deploy will use."
	MsgShowShort       = "Print a template without deploying it"
	MsgSettingsShort   = "Find VS Code custom modes files and list their modes"
	MsgVersionShort    = "Print version information"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgVersionFormat = "roo-conf version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrDeploy   = "failed to deploy templates: %w"
	MsgErrList     = "failed to list templates: %w"
	MsgErrPull     = "failed to pull templates: %w"
	MsgErrSettings = "failed to read VS Code settings: %w"
	MsgErrNoCmd    = "no command specified"
	MsgErrNoHelp   = "help command not found"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagOutput  = "Output format: auto, term, text or json"
	MsgFlagFormat  = "Format used to print all settings: json, yaml or toml"
	MsgFlagRefresh = "Ignore saved paths and search for settings files again"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/deploy-long.txt
	msgDeployLongRaw string
	MsgDeployLong    = strings.TrimSpace(msgDeployLongRaw)

	//go:embed msgs/deploy-example.txt
	msgDeployExampleRaw string
	MsgDeployExample    = strings.TrimRight(msgDeployExampleRaw, "\n")

	//go:embed msgs/edit-long.txt
	msgEditLongRaw string
	MsgEditLong    = strings.TrimSpace(msgEditLongRaw)

	//go:embed msgs/edit-example.txt
	msgEditExampleRaw string
	MsgEditExample    = strings.TrimRight(msgEditExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/config-example.txt
	msgConfigExampleRaw string
	MsgConfigExample    = strings.TrimRight(msgConfigExampleRaw, "\n")

	//go:embed msgs/pull-long.txt
	msgPullLongRaw string
	MsgPullLong    = strings.TrimSpace(msgPullLongRaw)

	//go:embed msgs/show-long.txt
	msgShowLongRaw string
	MsgShowLong    = strings.TrimSpace(msgShowLongRaw)

	//go:embed msgs/settings-long.txt
	msgSettingsLongRaw string
	MsgSettingsLong    = strings.TrimSpace(msgSettingsLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
