package domain

import "fmt"

// DisposalMode selects the post-sync fate of a local file.
type DisposalMode string

const (
	// DisposalArchive moves the file into an archived/ subdirectory
	// next to the original.
	DisposalArchive DisposalMode = "archive"

	// DisposalDelete removes the file outright.
	DisposalDelete DisposalMode = "delete"
)

// ParseDisposalMode maps a configuration string onto a disposal mode.
// The empty string selects DisposalArchive, the default.
func ParseDisposalMode(s string) (DisposalMode, error) {
	switch s {
	case "", string(DisposalArchive):
		return DisposalArchive, nil
	case string(DisposalDelete):
		return DisposalDelete, nil
	default:
		return "", fmt.Errorf("%w: unknown disposal mode %q", ErrInvalidConfig, s)
	}
}
