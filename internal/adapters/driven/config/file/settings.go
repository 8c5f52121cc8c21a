package file

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/bon-clevique/NotionSync/internal/core/domain"
)

// SettingsFileName is the default file name for daemon settings.
const SettingsFileName = "settings.toml"

// defaultSettleDelayMS mirrors services.DefaultSettleDelay.
const defaultSettleDelayMS = 500

// Settings holds the optional daemon tunables read from settings.toml.
// Every field has a working default so the file may be absent or partial.
type Settings struct {
	// Disposal selects what happens to a file after upload,
	// "archive" or "delete".
	Disposal string `toml:"disposal"`
	// SettleDelayMS is how long a new file may keep being written
	// before it is read, in milliseconds.
	SettleDelayMS int `toml:"settle_delay_ms"`
	// LogDir overrides the platform log directory.
	LogDir string `toml:"log_dir"`
	// TitleProperty is the database title property pages are filed under.
	TitleProperty string `toml:"title_property"`
	// RelationProperty is the database relation property linking pages
	// to a target's note.
	RelationProperty string `toml:"relation_property"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Disposal:      string(domain.DisposalArchive),
		SettleDelayMS: defaultSettleDelayMS,
	}
}

// LoadSettings reads TOML settings from path. A missing file is not an
// error; the defaults are returned. Fields absent from the file keep
// their default values.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No settings file yet - that's fine, run on defaults
			return settings, nil
		}
		return Settings{}, fmt.Errorf("read settings file: %w", err)
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("%w: parse settings: %w", domain.ErrInvalidConfig, err)
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Validate checks the settings for values the daemon cannot run with.
func (s Settings) Validate() error {
	if _, err := domain.ParseDisposalMode(s.Disposal); err != nil {
		return err
	}
	if s.SettleDelayMS < 0 {
		return fmt.Errorf("%w: settle_delay_ms must not be negative", domain.ErrInvalidConfig)
	}
	return nil
}

// DisposalMode returns the parsed disposal mode, falling back to archive
// for values Validate would have rejected.
func (s Settings) DisposalMode() domain.DisposalMode {
	mode, err := domain.ParseDisposalMode(s.Disposal)
	if err != nil {
		return domain.DisposalArchive
	}
	return mode
}

// SettleDelay returns the settle delay as a duration.
func (s Settings) SettleDelay() time.Duration {
	return time.Duration(s.SettleDelayMS) * time.Millisecond
}
