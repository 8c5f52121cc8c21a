package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bon-clevique/NotionSync/internal/core/domain"
)

// TargetsFileName is the default file name for the watch target list.
const TargetsFileName = "sync_targets.json"

// syncTarget is the on-disk JSON shape of one watch entry.
type syncTarget struct {
	Directory string `json:"directory"`
	NoteID    string `json:"note_id,omitempty"`
}

// LoadTargets reads a JSON watch target list from path. Each entry names
// a directory to watch and, optionally, the Notion page its uploads
// relate to. A missing file surfaces as an error wrapping os.ErrNotExist
// so callers can decide whether that is fatal.
func LoadTargets(path string) ([]domain.WatchTarget, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read targets file: %w", err)
	}

	var entries []syncTarget
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", domain.ErrInvalidConfig, filepath.Base(path), err)
	}

	targets := make([]domain.WatchTarget, 0, len(entries))
	for i, entry := range entries {
		if entry.Directory == "" {
			return nil, fmt.Errorf("%w: target %d has no directory", domain.ErrInvalidConfig, i)
		}
		targets = append(targets, domain.WatchTarget{
			Directory:  entry.Directory,
			RelationID: entry.NoteID,
		})
	}
	return targets, nil
}
