package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/Veraticus/upkeep/internal/common"
)

// Configuration keys.
const (
	KeyLogLevel  = "logging.level"
	KeyLogFormat = "logging.format"
	KeyLocale    = "locale"
	KeySnapshot  = "snapshot"
	KeyAsOf      = "as_of"
)

// DefaultSnapshotPath is used when no snapshot is configured.
const DefaultSnapshotPath = "~/.config/upkeep/snapshot.yaml"

// Settings is the resolved configuration.
type Settings struct {
	AsOf         *time.Time // Frozen "now"; nil means the wall clock
	LogFormat    string
	Locale       string
	SnapshotPath string
	LogLevel     slog.Level
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLocale, "en")
	v.SetDefault(KeySnapshot, DefaultSnapshotPath)
}

// Load reads and validates settings from v.
func Load(v *viper.Viper) (Settings, error) {
	level, err := common.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Settings{}, err
	}

	format := v.GetString(KeyLogFormat)
	if format != "console" && format != "json" {
		return Settings{}, fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, format)
	}

	snapshot := v.GetString(KeySnapshot)
	if snapshot == "" {
		return Settings{}, fmt.Errorf("%w: %s", common.ErrMissingConfig, KeySnapshot)
	}

	settings := Settings{
		LogLevel:     level,
		LogFormat:    format,
		Locale:       v.GetString(KeyLocale),
		SnapshotPath: ExpandPath(snapshot),
	}

	if raw := v.GetString(KeyAsOf); raw != "" {
		asOf, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return Settings{}, fmt.Errorf("%w: %s must be RFC 3339: %v", common.ErrInvalidConfig, KeyAsOf, err)
		}
		settings.AsOf = &asOf
	}

	return settings, nil
}

// Clock returns the clock the settings describe.
func (s Settings) Clock() common.Clock {
	if s.AsOf != nil {
		return common.FixedClock{At: *s.AsOf}
	}
	return common.SystemClock{}
}
