// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/rooconf/pkg/errors"
	"github.com/arthur-debert/rooconf/pkg/types"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

type fileView struct {
	ID     string       `json:"id"`
	Origin types.Origin `json:"origin,omitempty"`
	Target string       `json:"target"`
	Error  string       `json:"error,omitempty"`
}

type deployView struct {
	TargetRoot string       `json:"target_root"`
	Origin     types.Origin `json:"origin"`
	Deployed   int          `json:"deployed"`
	Failed     int          `json:"failed"`
	Files      []fileView   `json:"files"`
	Warnings   []string     `json:"warnings"`
}

// RenderResult renders any result type as JSON. Deployment results carry
// error messages per file.
func (r *Renderer) RenderResult(result interface{}) error {
	if res, ok := result.(*types.DeployResult); ok {
		view := deployView{
			TargetRoot: res.TargetRoot,
			Origin:     res.Origin,
			Deployed:   res.Succeeded(),
			Failed:     res.Failed(),
			Files:      make([]fileView, 0, len(res.Files)),
			Warnings:   res.Warnings,
		}
		if view.Warnings == nil {
			view.Warnings = []string{}
		}
		for _, f := range res.Files {
			fv := fileView{ID: f.ID, Origin: f.Origin, Target: f.Target}
			if f.Err != nil {
				fv.Error = errors.UserMessage(f.Err)
			}
			view.Files = append(view.Files, fv)
		}
		return r.encoder.Encode(view)
	}
	return r.encoder.Encode(result)
}

// RenderProgress is a no-op: the final result lists every file
func (r *Renderer) RenderProgress(types.FileResult) error {
	return nil
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]interface{}{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetErrorCode(err)),
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		errorObj["details"] = details
	}
	return r.encoder.Encode(errorObj)
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
