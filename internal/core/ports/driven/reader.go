package driven

// FileReader reads local file content for the sync pipeline.
type FileReader interface {
	// ReadFile returns the full content of the file at path.
	ReadFile(path string) ([]byte, error)
}
