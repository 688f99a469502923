// Package deploy materializes selected templates into a project.
//
// Each template is read from the catalog (remote cache first), has the
// repository placeholder substituted when it is Markdown, and is written
// below the target root. Failures are recorded per file and never stop
// the rest of the batch.
package deploy
