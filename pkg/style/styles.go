package style

import (
	"github.com/arthur-debert/rooconf/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	// Headers and titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	// Text styles
	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// Code and path styles
	CodeStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)
)

// Origin styles
var (
	RemoteStyle = lipgloss.NewStyle().
			Foreground(RemoteColor).
			Bold(true)

	BundledStyle = lipgloss.NewStyle().
			Foreground(BundledColor)
)

// Operation indicator styles
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	WarningIndicator = WarningStyle.Render("!")
	InfoIndicator    = InfoStyle.Render("•")
)

// OriginStyle returns the style used to label a template origin
func OriginStyle(origin types.Origin) lipgloss.Style {
	if origin == types.OriginRemote {
		return RemoteStyle
	}
	return BundledStyle
}

// OriginLabel renders origin as a styled tag, e.g. "[bundled]"
func OriginLabel(origin types.Origin) string {
	return OriginStyle(origin).Render("[" + string(origin) + "]")
}

// Helper functions
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
