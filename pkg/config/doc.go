// Package config implements the persisted key/value configuration of
// roo-conf.
//
// The configuration is a flat JSON object stored at
// $XDG_CONFIG_HOME/roo-conf/config.json. Reads are layered with koanf:
//
//  1. Embedded defaults (embedded/defaults.json)
//  2. The user's config.json, if it exists
//  3. ROO_CONF_<KEY> environment variables
//
// Writes are read-modify-write of the file layer only: the whole file is
// rewritten on every set, environment overrides are never persisted and
// unknown keys are kept as they are.
//
// The loaded Config value is created once per invocation and passed into
// each operation explicitly.
package config
