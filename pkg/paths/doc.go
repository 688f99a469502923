// Package paths provides centralized path handling for roo-conf.
//
// It follows the XDG Base Directory specification for everything the tool
// owns and derives the deployment target from the working directory:
//
//   - Config: $XDG_CONFIG_HOME/roo-conf (config.json lives here)
//   - Template cache: <config dir>/templates (the cloned remote repository)
//   - State: $XDG_STATE_HOME/roo-conf (log file)
//   - Deployment target: <working dir>/.roo
//
// # Environment Variables
//
//   - ROO_CONF_CONFIG_DIR: override the config directory
//   - ROO_CONF_TEMPLATES_DIR: override the template cache directory
//
// # Usage
//
//	p, err := paths.New("") // use the current working directory
//	if err != nil {
//	    return err
//	}
//	cfgFile := p.ConfigFile()    // ~/.config/roo-conf/config.json
//	target := p.TargetPath("a.md") // <cwd>/.roo/a.md
package paths
