package rooconf

import (
	"fmt"

	"github.com/arthur-debert/rooconf/internal/version"
	"github.com/arthur-debert/rooconf/pkg/commands"
	"github.com/arthur-debert/rooconf/pkg/config"
	"github.com/arthur-debert/rooconf/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// templateCompletion completes template identifiers. With remoteOnly only
// templates from the pulled repository are offered.
func templateCompletion(remoteOnly bool) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		result, err := commands.ListTemplates(commands.ListTemplatesOptions{})
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		seen := make(map[string]bool, len(args))
		for _, arg := range args {
			seen[arg] = true
		}

		var ids []string
		for _, entry := range result.Templates {
			if seen[entry.ID] {
				continue
			}
			if remoteOnly && entry.Origin != types.OriginRemote {
				continue
			}
			if !remoteOnly && entry.Origin != result.ActiveOrigin {
				continue
			}
			ids = append(ids, entry.ID)
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	}
}

func newDeployCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "deploy [components...]",
		Short:             MsgDeployShort,
		Long:              MsgDeployLong,
		Example:           MsgDeployExample,
		GroupID:           groupCore,
		ValidArgsFunction: templateCompletion(false),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			log.Info().Strs("components", args).Msg("Deploying templates")

			result, err := commands.DeployTemplates(commands.DeployTemplatesOptions{
				Components: args,
				Progress: func(fr types.FileResult) {
					_ = renderer.RenderProgress(fr)
				},
			})
			if err != nil {
				return fmt.Errorf(MsgErrDeploy, err)
			}

			// Per-file failures are reported, not fatal
			return renderer.RenderResult(result)
		},
	}
}

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "edit [file_name]",
		Short:             MsgEditShort,
		Long:              MsgEditLong,
		Example:           MsgEditExample,
		Args:              cobra.MaximumNArgs(1),
		GroupID:           groupCore,
		ValidArgsFunction: templateCompletion(true),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				result, err := commands.ListTemplates(commands.ListTemplatesOptions{})
				if err != nil {
					return fmt.Errorf(MsgErrList, err)
				}
				return renderer.RenderResult(result)
			}

			return commands.EditTemplate(commands.EditTemplateOptions{
				Name:    args[0],
				Context: cmd.Context(),
			})
		},
	}
}

func newConfigCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "config [key] [value]",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Example: MsgConfigExample,
		Args:    cobra.MaximumNArgs(2),
		GroupID: groupCore,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			switch {
			case len(args) == 0:
				return config.KnownKeys(), cobra.ShellCompDirectiveNoFileComp
			case len(args) == 1 && args[0] == config.KeyCloneMethod:
				return []string{config.CloneMethodGit, config.CloneMethodGoGit}, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			var result *types.ConfigResult
			if len(args) == 2 {
				result, err = commands.SetConfig(commands.SetConfigOptions{
					Key:   args[0],
					Value: args[1],
				})
			} else {
				opts := commands.GetConfigOptions{Format: format}
				if len(args) == 1 {
					opts.Key = args[0]
				}
				result, err = commands.GetConfig(opts)
			}
			if err != nil {
				return err
			}

			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatJSON, MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{config.FormatJSON, config.FormatYAML, config.FormatTOML}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "pull",
		Short:   MsgPullShort,
		Long:    MsgPullLong,
		Args:    cobra.NoArgs,
		GroupID: groupCore,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			result, err := commands.PullTemplates(commands.PullTemplatesOptions{
				Context: cmd.Context(),
			})
			if err != nil {
				return fmt.Errorf(MsgErrPull, err)
			}

			return renderer.RenderResult(result)
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Args:    cobra.NoArgs,
		GroupID: groupCore,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			result, err := commands.ListTemplates(commands.ListTemplatesOptions{})
			if err != nil {
				return fmt.Errorf(MsgErrList, err)
			}

			return renderer.RenderResult(result)
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "show <template>",
		Short:             MsgShowShort,
		Long:              MsgShowLong,
		Args:              cobra.ExactArgs(1),
		GroupID:           groupCore,
		ValidArgsFunction: templateCompletion(false),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			result, err := commands.ShowTemplate(commands.ShowTemplateOptions{ID: args[0]})
			if err != nil {
				return err
			}

			return renderer.RenderResult(result)
		},
	}
}

func newSettingsCmd() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:     "settings",
		Short:   MsgSettingsShort,
		Long:    MsgSettingsLong,
		Args:    cobra.NoArgs,
		GroupID: groupMisc,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			result, err := commands.DiscoverSettings(commands.DiscoverSettingsOptions{Refresh: refresh})
			if err != nil {
				return fmt.Errorf(MsgErrSettings, err)
			}

			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, MsgFlagRefresh)

	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		Args:    cobra.NoArgs,
		GroupID: groupMisc,
		RunE: func(cmd *cobra.Command, args []string) error {
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil || helpCmd == nil || helpCmd.Run == nil {
				return fmt.Errorf(MsgErrNoHelp)
			}
			helpCmd.Run(helpCmd, []string{"topics"})
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: groupMisc,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               groupMisc,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
