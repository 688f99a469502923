package types

// ListResult is returned by the list command
type ListResult struct {
	// ActiveOrigin is the source that deploy selects from
	ActiveOrigin Origin          `json:"active_origin"`
	CacheDir     string          `json:"cache_dir"`
	Templates    []TemplateEntry `json:"templates"`
}

// PullResult is returned by the pull command
type PullResult struct {
	URL       string `json:"url"`
	CacheDir  string `json:"cache_dir"`
	Method    string `json:"method"`
	Templates int    `json:"templates"`
}

// ShowResult is returned by the show command
type ShowResult struct {
	ID     string `json:"id"`
	Origin Origin `json:"origin"`
	// Path is set for remote templates only
	Path    string `json:"path,omitempty"`
	Content string `json:"content"`
}

// ConfigResult is returned by the config get and set commands
type ConfigResult struct {
	Path    string                 `json:"path"`
	Key     string                 `json:"key,omitempty"`
	Found   bool                   `json:"found"`
	Updated bool                   `json:"updated"`
	Values  map[string]interface{} `json:"values"`
	// Format is the encoding for printing every key: json, yaml or toml
	Format string `json:"-"`
}

// CustomMode is one mode defined in a Roo Code custom_modes.yaml
type CustomMode struct {
	Slug   string `json:"slug"`
	Name   string `json:"name"`
	Source string `json:"source,omitempty"`
}

// SettingsFile describes one discovered custom_modes.yaml
type SettingsFile struct {
	Path  string       `json:"path"`
	Modes []CustomMode `json:"modes"`
	Error string       `json:"error,omitempty"`
}

// SettingsResult is returned by the settings command
type SettingsResult struct {
	// Source is "config", "discovered" or "none"
	Source string         `json:"source"`
	Files  []SettingsFile `json:"files"`
}
