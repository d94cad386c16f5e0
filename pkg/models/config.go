package models

// Config is the application config file, epiphany.conf.json.
// The first workspace path is the active workspace.
type Config struct {
	WorkspacePaths []string `json:"workspace_paths"`
}

// Active returns the active workspace path, or "" when none is configured.
func (c *Config) Active() string {
	if c == nil || len(c.WorkspacePaths) == 0 {
		return ""
	}
	return c.WorkspacePaths[0]
}
