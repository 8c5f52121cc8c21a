package domain

// WatchTarget is one directory watched for new Markdown files.
// Targets are resolved from configuration at startup and never change
// for the lifetime of the process.
type WatchTarget struct {
	// Directory is the watched directory path, kept exactly as
	// configured. Event lookup matches this literal string, so the
	// configured spelling must match what the watch events report.
	Directory string

	// RelationID optionally links pages created from this directory
	// to an existing remote record. Empty means no relation.
	RelationID string
}
