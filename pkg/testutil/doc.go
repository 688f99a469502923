// Package testutil provides utilities for testing roo-conf components.
//
// Key components:
//   - TestEnvironment: isolated HOME, config dir, state dir and working
//     directory, backed by memory or a real temp directory
//   - Helpers to seed the config file and the remote template cache and to
//     inspect deployed files
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated when a test needs real
//     processes (git, editors) or real file permissions
//   - All test data should be defined inline, not in external files
package testutil
