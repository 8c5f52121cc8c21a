package driven

// FileDisposer applies the configured post-sync action to a local
// file. Disposal runs only after the remote page has been created.
type FileDisposer interface {
	// Dispose archives or deletes the file at path.
	Dispose(path string) error
}
