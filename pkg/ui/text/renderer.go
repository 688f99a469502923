// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/rooconf/pkg/config"
	"github.com/arthur-debert/rooconf/pkg/errors"
	"github.com/arthur-debert/rooconf/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders a command result as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	var b strings.Builder

	switch v := result.(type) {
	case *types.DeployResult:
		writeDeploy(&b, v)
	case *types.ListResult:
		writeList(&b, v)
	case *types.PullResult:
		fmt.Fprintf(&b, "Repository cloned successfully: %d templates in %s\n", v.Templates, v.CacheDir)
	case *types.ShowResult:
		b.WriteString(v.Content)
		if !strings.HasSuffix(v.Content, "\n") {
			b.WriteString("\n")
		}
	case *types.ConfigResult:
		if err := WriteConfig(&b, v); err != nil {
			return err
		}
	case *types.SettingsResult:
		writeSettings(&b, v)
	default:
		fmt.Fprintf(&b, "%+v\n", result)
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderProgress prints one deployment line
func (r *Renderer) RenderProgress(fr types.FileResult) error {
	_, err := fmt.Fprintln(r.output, ProgressLine(fr))
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %s\n", errors.UserMessage(err))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// ProgressLine is the plain form of a deployment progress line
func ProgressLine(fr types.FileResult) string {
	if fr.OK() {
		return fmt.Sprintf("Deployed %s to %s", fr.ID, fr.Target)
	}
	return fmt.Sprintf("Error deploying %s: %s", fr.ID, errors.UserMessage(fr.Err))
}

// DeploySummary describes a finished deployment in one line
func DeploySummary(res *types.DeployResult) string {
	if len(res.Files) == 0 {
		return "No templates selected, nothing deployed."
	}
	summary := fmt.Sprintf("Deployed %d of %d templates from the %s source to %s",
		res.Succeeded(), len(res.Files), res.Origin, res.TargetRoot)
	if n := res.Failed(); n > 0 {
		summary += fmt.Sprintf(" (%d failed)", n)
	}
	return summary
}

func writeDeploy(b *strings.Builder, res *types.DeployResult) {
	for _, w := range res.Warnings {
		fmt.Fprintf(b, "Warning: %s\n", w)
	}
	b.WriteString(DeploySummary(res) + "\n")
}

func writeList(b *strings.Builder, res *types.ListResult) {
	if len(res.Templates) == 0 {
		b.WriteString("No prompt files found.\n")
		return
	}
	b.WriteString("Available prompts:\n")
	for _, entry := range res.Templates {
		if entry.Origin == types.OriginBundled {
			fmt.Fprintf(b, "- %s (package)\n", entry.ID)
		} else {
			fmt.Fprintf(b, "- %s\n", entry.ID)
		}
	}
}

// WriteConfig renders a config result. It is shared with the terminal
// renderer, which prints configuration unstyled so it can be copied.
func WriteConfig(w io.Writer, res *types.ConfigResult) error {
	switch {
	case res.Updated:
		_, err := fmt.Fprintf(w, "Configuration updated: %s = %s\n", res.Key, config.FormatValue(res.Values[res.Key]))
		return err
	case res.Key == "":
		data, err := config.Encode(res.Values, res.Format)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case !res.Found:
		_, err := fmt.Fprintf(w, "%s is not set\n", res.Key)
		return err
	default:
		_, err := fmt.Fprintln(w, config.FormatValue(res.Values[res.Key]))
		return err
	}
}

func writeSettings(b *strings.Builder, res *types.SettingsResult) {
	if len(res.Files) == 0 {
		b.WriteString("No VS Code custom_modes.yaml files found.\n")
		return
	}
	fmt.Fprintf(b, "Settings files (%s):\n", res.Source)
	for _, f := range res.Files {
		fmt.Fprintf(b, "- %s\n", f.Path)
		if f.Error != "" {
			fmt.Fprintf(b, "    error: %s\n", f.Error)
			continue
		}
		for _, m := range f.Modes {
			fmt.Fprintf(b, "    %s: %s\n", m.Slug, m.Name)
		}
	}
}
