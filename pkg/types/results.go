package types

// FileResult is the outcome of deploying one template
type FileResult struct {
	ID     string `json:"id"`
	Origin Origin `json:"origin"`
	Target string `json:"target"`
	Err    error  `json:"-"`
}

// OK reports whether the file was written
func (r FileResult) OK() bool {
	return r.Err == nil
}

// DeployResult collects per-file outcomes of a deployment run
type DeployResult struct {
	TargetRoot string       `json:"target_root"`
	Origin     Origin       `json:"origin"`
	Files      []FileResult `json:"files"`
	Warnings   []string     `json:"warnings,omitempty"`
}

// Succeeded returns the number of files written
func (r *DeployResult) Succeeded() int {
	n := 0
	for _, f := range r.Files {
		if f.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of files that could not be deployed
func (r *DeployResult) Failed() int {
	return len(r.Files) - r.Succeeded()
}
