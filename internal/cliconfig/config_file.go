package cliconfig

import (
	toml "github.com/pelletier/go-toml/v2"
	"os"
	"path/filepath"
)

// FileConfig mirrors Config as it is written in a TOML file.
type FileConfig struct {
	DateStyle         string `toml:"date_style"`
	TimeStyle         string `toml:"time_style"`
	TimeZoneStyle     string `toml:"time_zone_style"`
	FractionSeparator string `toml:"fraction_separator"`
	FractionDigits    *int   `toml:"fraction_digits"`
	Output            string `toml:"output"`
	Verbose           *bool  `toml:"verbose"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.iso8601/config.toml, or an empty string if there is no home directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".iso8601", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to cfg, except for flags that have been explicitly set.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("date-style", fc.DateStyle, &cfg.DateStyle)
	s.setString("time-style", fc.TimeStyle, &cfg.TimeStyle)
	s.setString("tz-style", fc.TimeZoneStyle, &cfg.TimeZoneStyle)
	s.setString("fraction-separator", fc.FractionSeparator, &cfg.FractionSeparator)
	s.setString("output", fc.Output, &cfg.Output)

	s.setInt("fraction-digits", fc.FractionDigits, &cfg.FractionDigits)

	s.setBool("verbose", fc.Verbose, &cfg.Verbose)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
