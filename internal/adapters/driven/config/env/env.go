// Package env reads daemon configuration from environment variables.
// Credentials never live in files; the token and database id come from
// the environment only.
package env

import (
	"fmt"
	"os"
	"strings"

	"github.com/bon-clevique/NotionSync/internal/core/domain"
)

// Environment variables read by the daemon.
const (
	TokenVar     = "NOTION_TOKEN"
	DatabaseVar  = "NOTION_DATABASE_ID"
	WatchDirsVar = "NOTION_WATCH_DIRS"
)

// Credentials carries the Notion API token and the target database id.
type Credentials struct {
	Token      string
	DatabaseID string
}

// LoadCredentials reads the required Notion credentials from the
// environment. Both variables must be set and non-empty.
func LoadCredentials() (Credentials, error) {
	token := os.Getenv(TokenVar)
	if token == "" {
		return Credentials{}, fmt.Errorf("%w: set %s", domain.ErrMissingToken, TokenVar)
	}

	database := os.Getenv(DatabaseVar)
	if database == "" {
		return Credentials{}, fmt.Errorf("%w: set %s", domain.ErrMissingDatabase, DatabaseVar)
	}

	return Credentials{Token: token, DatabaseID: database}, nil
}

// Targets reads watch directories from NOTION_WATCH_DIRS, a
// comma-separated list of paths. The second return reports whether the
// variable was set at all, so callers can fall through to the targets
// file when it is absent. Directories named this way carry no relation.
func Targets() ([]domain.WatchTarget, bool) {
	value, ok := os.LookupEnv(WatchDirsVar)
	if !ok {
		return nil, false
	}

	var targets []domain.WatchTarget
	for _, dir := range strings.Split(value, ",") {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		targets = append(targets, domain.WatchTarget{Directory: dir})
	}
	return targets, true
}
