package config

import (
	"fmt"
	"strings"

	"github.com/Veraticus/neo-finance/internal/common"
	"github.com/Veraticus/neo-finance/internal/money"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Defaults applied when a key is unset.
const (
	DefaultDatabasePath = "$HOME/.local/share/nf/ledger.db"
	DefaultSnapshotDir  = "$HOME/.local/share/nf/snapshots"
	DefaultMonths       = 6
	maxMonths           = 120
)

// Settings is the resolved runtime configuration.
type Settings struct {
	Backend        string
	DatabasePath   string
	SnapshotDir    string
	CurrencySymbol string
	Locale         string
	LogLevel       string
	LogFormat      string
	Months         int
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", BackendSQLite)
	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("storage.dir", DefaultSnapshotDir)
	v.SetDefault("display.currency_symbol", money.DefaultSymbol)
	v.SetDefault("display.locale", money.DefaultLocale)
	v.SetDefault("analytics.months", DefaultMonths)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load reads settings from v. Values come from, in order of precedence:
// 1. Flags bound to v
// 2. NF_ environment variables
// 3. The config file
// 4. Defaults
// Paths have ~ and environment variables expanded.
func Load(v *viper.Viper) (Settings, error) {
	SetDefaults(v)

	s := Settings{
		Backend:        strings.ToLower(strings.TrimSpace(v.GetString("storage.backend"))),
		DatabasePath:   ExpandPath(v.GetString("database.path")),
		SnapshotDir:    ExpandPath(v.GetString("storage.dir")),
		CurrencySymbol: v.GetString("display.currency_symbol"),
		Locale:         v.GetString("display.locale"),
		LogLevel:       v.GetString("logging.level"),
		LogFormat:      v.GetString("logging.format"),
		Months:         v.GetInt("analytics.months"),
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the settings for consistency.
func (s Settings) Validate() error {
	switch s.Backend {
	case BackendSQLite:
		if s.DatabasePath == "" {
			return fmt.Errorf("%w: database.path is required for the sqlite backend", common.ErrMissingConfig)
		}
	case BackendFile:
		if s.SnapshotDir == "" {
			return fmt.Errorf("%w: storage.dir is required for the file backend", common.ErrMissingConfig)
		}
	default:
		return fmt.Errorf("%w: storage.backend %q (want %s or %s)", common.ErrInvalidConfig, s.Backend, BackendSQLite, BackendFile)
	}

	if s.Months < 1 || s.Months > maxMonths {
		return fmt.Errorf("%w: analytics.months must be between 1 and %d, got %d", common.ErrInvalidConfig, maxMonths, s.Months)
	}
	if _, err := common.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	if _, err := s.Formatter(); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	return nil
}

// Formatter builds the money formatter described by the display settings.
func (s Settings) Formatter() (*money.Formatter, error) {
	return money.NewFormatter(s.Locale, s.CurrencySymbol)
}
