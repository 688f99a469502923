// Package types holds the small set of types shared across roo-conf
// packages: the filesystem abstraction, template identifiers and their
// origin, and deployment results.
package types
