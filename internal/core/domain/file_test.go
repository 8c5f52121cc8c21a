package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDetectedFile_Title tests page title derivation from file paths
func TestDetectedFile_Title(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"simple file", "/notes/My Note.md", "My Note"},
		{"nested path", "/home/user/inbox/2026-08-21 journal.md", "2026-08-21 journal"},
		{"uppercase extension", "/notes/README.MD", "README"},
		{"multiple dots keeps earlier ones", "/notes/v1.2 release.md", "v1.2 release"},
		{"no extension", "/notes/plain", "plain"},
		{"hidden file with extension", "/notes/.draft.md", ".draft"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := DetectedFile{Path: tt.path}

			assert.Equal(t, tt.expected, file.Title())
		})
	}
}
