package types

// Origin names the source a template identifier was resolved from
type Origin string

const (
	// OriginRemote is the git-cloned template cache
	OriginRemote Origin = "remote"
	// OriginBundled is the template set compiled into the binary
	OriginBundled Origin = "bundled"
)

// TemplateEntry is one listed template: its identifier plus where it lives.
// ID is a slash-separated path relative to the source root.
type TemplateEntry struct {
	ID     string `json:"id"`
	Origin Origin `json:"origin"`
}
