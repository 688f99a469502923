// Package templates resolves where prompt templates come from.
//
// A TemplateSource is one of two variants:
//
//   - RemoteSource: the git-cloned cache directory, listed recursively with
//     .git excluded; identifiers are slash-separated relative paths.
//   - BundledSource: the set compiled into the binary, listed
//     non-recursively; identifiers are file names.
//
// A Catalog composes both. When a remote repository is configured and its
// cache holds at least one template, the remote source is active and its
// content wins for any identifier both sources define. Otherwise the
// bundled source is the only one. Either way both listings remain visible
// for display.
package templates
