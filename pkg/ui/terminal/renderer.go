// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/arthur-debert/rooconf/pkg/cobrax/topics"
	"github.com/arthur-debert/rooconf/pkg/errors"
	"github.com/arthur-debert/rooconf/pkg/style"
	"github.com/arthur-debert/rooconf/pkg/types"
	"github.com/arthur-debert/rooconf/pkg/ui/text"
)

// Renderer provides rich terminal output using lipgloss styles and pterm prefixes
type Renderer struct {
	output   io.Writer
	markdown topics.Renderer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{
		output:   w,
		markdown: topics.NewGlamourRenderer(),
	}
}

// RenderResult renders a command result with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	var b strings.Builder

	switch v := result.(type) {
	case *types.DeployResult:
		r.writeDeploy(&b, v)
	case *types.ListResult:
		r.writeList(&b, v)
	case *types.PullResult:
		b.WriteString(style.SuccessLine(fmt.Sprintf("Repository cloned: %s templates in %s",
			style.Bold(fmt.Sprint(v.Templates)), style.PathStyle.Render(v.CacheDir))) + "\n")
	case *types.ShowResult:
		r.writeShow(&b, v)
	case *types.ConfigResult:
		if v.Updated {
			b.WriteString(style.SuccessLine(fmt.Sprintf("Configuration updated: %s = %s",
				style.Bold(v.Key), style.CodeStyle.Render(fmt.Sprint(v.Values[v.Key])))) + "\n")
			break
		}
		if err := text.WriteConfig(&b, v); err != nil {
			return err
		}
	case *types.SettingsResult:
		r.writeSettings(&b, v)
	default:
		fmt.Fprintf(&b, "%+v\n", result)
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderProgress prints one deployment line with a status indicator
func (r *Renderer) RenderProgress(fr types.FileResult) error {
	var line string
	if fr.OK() {
		line = fmt.Sprintf("%s %s %s %s %s",
			style.SuccessIndicator,
			style.Bold(fr.ID),
			style.OriginLabel(fr.Origin),
			style.MutedStyle.Render("→"),
			style.PathStyle.Render(fr.Target))
	} else {
		line = fmt.Sprintf("%s %s %s",
			style.ErrorIndicator,
			style.Bold(fr.ID),
			style.ErrorStyle.Render(errors.UserMessage(fr.Err)))
	}
	_, err := fmt.Fprintln(r.output, line)
	return err
}

// RenderError renders an error with the pterm error prefix
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, style.ErrorLine(err))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.InfoLine(msg))
	return err
}

func (r *Renderer) writeDeploy(b *strings.Builder, res *types.DeployResult) {
	for _, w := range res.Warnings {
		b.WriteString(style.WarningLine(w) + "\n")
	}
	summary := text.DeploySummary(res)
	switch {
	case len(res.Files) == 0:
		b.WriteString(style.InfoLine(summary) + "\n")
	case res.Failed() > 0:
		b.WriteString(style.WarningLine(summary) + "\n")
	default:
		b.WriteString(style.SuccessLine(summary) + "\n")
	}
}

func (r *Renderer) writeList(b *strings.Builder, res *types.ListResult) {
	if len(res.Templates) == 0 {
		b.WriteString(style.MutedStyle.Render("No prompt files found.") + "\n")
		return
	}

	b.WriteString(style.TitleStyle.Render("Available prompts") + "\n")
	b.WriteString(style.MutedStyle.Render(fmt.Sprintf("deploy selects from the %s source", res.ActiveOrigin)) + "\n\n")

	for _, entry := range res.Templates {
		fmt.Fprintf(b, "%s %s %s\n", style.InfoIndicator, entry.ID, style.OriginLabel(entry.Origin))
	}
}

func (r *Renderer) writeShow(b *strings.Builder, res *types.ShowResult) {
	header := fmt.Sprintf("%s %s", style.TitleStyle.Render(res.ID), style.OriginLabel(res.Origin))
	b.WriteString(header + "\n")
	if res.Path != "" {
		b.WriteString(style.PathStyle.Render(res.Path) + "\n")
	}
	b.WriteString("\n")

	body := r.markdown.Render(res.Content, path.Ext(res.ID))
	b.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		b.WriteString("\n")
	}
}

func (r *Renderer) writeSettings(b *strings.Builder, res *types.SettingsResult) {
	if len(res.Files) == 0 {
		b.WriteString(style.MutedStyle.Render("No VS Code custom_modes.yaml files found.") + "\n")
		return
	}

	b.WriteString(style.TitleStyle.Render("Roo Code settings files") + " " +
		style.MutedStyle.Render("("+res.Source+")") + "\n\n")
	for _, f := range res.Files {
		b.WriteString(style.PathStyle.Render(f.Path) + "\n")
		if f.Error != "" {
			b.WriteString(style.Indent(style.ErrorIndicator+" "+f.Error, 1) + "\n")
			continue
		}
		if len(f.Modes) == 0 {
			b.WriteString(style.Indent(style.MutedStyle.Render("no custom modes"), 1) + "\n")
		}
		for _, m := range f.Modes {
			b.WriteString(style.Indent(fmt.Sprintf("%s %s %s", style.InfoIndicator, style.Bold(m.Slug), m.Name), 1) + "\n")
		}
	}
}
