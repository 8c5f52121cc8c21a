package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"
)

// LogFileName is the active log file name inside the log directory.
const LogFileName = "notionsync.log"

// maxBackups is how many rotated log files are retained.
const maxBackups = 5

// OpenFile opens the daemon log file in dir, rotating a previous run's
// file out of the way first. The directory is created when missing.
// Rotated files carry a start timestamp; only the newest maxBackups
// are kept.
func OpenFile(dir string) (io.WriteCloser, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(dir, LogFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > 0 {
		rotated := fmt.Sprintf("notionsync-%s.log", time.Now().Format("20060102-150405"))
		if err := os.Rename(path, filepath.Join(dir, rotated)); err != nil {
			return nil, fmt.Errorf("rotate log file: %w", err)
		}
		cleanup(dir)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

// cleanup removes rotated files beyond the retention count. Rotated
// names embed their timestamp, so a lexical sort orders oldest first.
func cleanup(dir string) {
	matches, err := filepath.Glob(filepath.Join(dir, "notionsync-*.log"))
	if err != nil || len(matches) <= maxBackups {
		return
	}
	sort.Strings(matches)
	for _, path := range matches[:len(matches)-maxBackups] {
		os.Remove(path)
	}
}

// DefaultDir returns the platform log directory for the daemon.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", "NotionSync")
	case "windows":
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, "NotionSync", "Logs")
		}
		return filepath.Join(home, "AppData", "Local", "NotionSync", "Logs")
	default:
		if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
			return filepath.Join(dir, "notionsync")
		}
		return filepath.Join(home, ".local", "state", "notionsync")
	}
}
