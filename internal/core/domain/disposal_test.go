package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseDisposalMode tests configuration string mapping
func TestParseDisposalMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected DisposalMode
	}{
		{"archive", "archive", DisposalArchive},
		{"delete", "delete", DisposalDelete},
		{"empty defaults to archive", "", DisposalArchive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := ParseDisposalMode(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

// TestParseDisposalMode_Invalid tests rejection of unknown modes
func TestParseDisposalMode_Invalid(t *testing.T) {
	for _, input := range []string{"Archive", "remove", "trash", " archive"} {
		_, err := ParseDisposalMode(input)

		require.Error(t, err, "mode %q should be rejected", input)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
		assert.Contains(t, err.Error(), input)
	}
}
