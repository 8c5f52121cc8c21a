package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bon-clevique/NotionSync/internal/core/domain"
	"github.com/bon-clevique/NotionSync/internal/core/ports/driven"
	"github.com/bon-clevique/NotionSync/internal/logger"
)

// ArchiveDirName is the subdirectory that receives archived files.
const ArchiveDirName = "archived"

// Ensure the disposers implement the interface.
var (
	_ driven.FileDisposer = (*Archiver)(nil)
	_ driven.FileDisposer = (*Deleter)(nil)
)

// NewDisposer returns the disposer for the given mode.
func NewDisposer(mode domain.DisposalMode) (driven.FileDisposer, error) {
	switch mode {
	case domain.DisposalArchive:
		return NewArchiver(), nil
	case domain.DisposalDelete:
		return NewDeleter(), nil
	default:
		return nil, fmt.Errorf("%w: unknown disposal mode %q", domain.ErrInvalidConfig, mode)
	}
}

// Archiver moves synced files into an archived/ subdirectory next to
// the original, keeping the file name. An archived file with the same
// name is overwritten.
type Archiver struct{}

// NewArchiver creates an archive-mode disposer.
func NewArchiver() *Archiver {
	return &Archiver{}
}

// Dispose moves path into the archived/ subdirectory of its parent,
// creating the subdirectory on first use.
func (*Archiver) Dispose(path string) error {
	archiveDir := filepath.Join(filepath.Dir(path), ArchiveDirName)
	if err := os.MkdirAll(archiveDir, 0o755); err != nil {
		return fmt.Errorf("create archive directory: %w", err)
	}

	dest := filepath.Join(archiveDir, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("archive %s: %w", filepath.Base(path), err)
	}

	logger.Info("File archived: %s -> %s/", filepath.Base(path), ArchiveDirName)
	return nil
}

// Deleter removes synced files outright.
type Deleter struct{}

// NewDeleter creates a delete-mode disposer.
func NewDeleter() *Deleter {
	return &Deleter{}
}

// Dispose removes the file at path.
func (*Deleter) Dispose(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete %s: %w", filepath.Base(path), err)
	}

	logger.Info("File deleted: %s", filepath.Base(path))
	return nil
}
