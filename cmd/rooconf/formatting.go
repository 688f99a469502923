package rooconf

import (
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/rooconf/pkg/style"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// stdoutIsTerminal decides whether help output gets styled
func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// formatBold returns the string in bold when printing to a terminal
func formatBold(s string) string {
	if !stdoutIsTerminal() {
		return s
	}
	return style.Bold(s)
}

// formatBoldUpper returns the string in uppercase, bold on a terminal
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     strings.ToUpper,
		"boldUpper": formatBoldUpper,
	})
}
