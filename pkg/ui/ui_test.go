// pkg/ui/ui_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test renderer selection by format

package ui_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/rooconf/pkg/types"
	"github.com/arthur-debert/rooconf/pkg/ui"
	"github.com/arthur-debert/rooconf/pkg/ui/json"
	"github.com/arthur-debert/rooconf/pkg/ui/terminal"
	"github.com/arthur-debert/rooconf/pkg/ui/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		name   string
		format ui.Format
		want   interface{}
	}{
		{name: "auto with buffer is text", format: ui.FormatAuto, want: &text.Renderer{}},
		{name: "terminal", format: ui.FormatTerminal, want: &terminal.Renderer{}},
		{name: "text", format: ui.FormatText, want: &text.Renderer{}},
		{name: "json", format: ui.FormatJSON, want: &json.Renderer{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ui.NewRenderer(tt.format, &buf)
			require.NoError(t, err)
			assert.IsType(t, tt.want, r)
		})
	}
}

func TestNewRendererUnknownFormat(t *testing.T) {
	_, err := ui.NewRenderer(ui.Format(42), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRendererMessage(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderMessage("hello"))
	require.NoError(t, r.RenderProgress(types.FileResult{ID: "a.md", Target: "/w/.roo/a.md"}))

	assert.Equal(t, "hello\nDeployed a.md to /w/.roo/a.md\n", buf.String())
}
