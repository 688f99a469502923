// Package ui provides a unified interface for rendering command output in
// different formats. It supports terminal (rich), text (plain), and JSON.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/rooconf/pkg/errors"
	"github.com/arthur-debert/rooconf/pkg/types"
	"github.com/arthur-debert/rooconf/pkg/ui/json"
	"github.com/arthur-debert/rooconf/pkg/ui/terminal"
	"github.com/arthur-debert/rooconf/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a command result (*types.DeployResult, *types.ListResult, ...)
	RenderResult(result interface{}) error

	// RenderProgress renders one deployed (or failed) file as it happens
	RenderProgress(fr types.FileResult) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		// Buffers and pipes get plain text
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
