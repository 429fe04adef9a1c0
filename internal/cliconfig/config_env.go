package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (ISO8601_*), except for flags that have been
// explicitly set.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("date-style", os.Getenv("ISO8601_DATE_STYLE"), &cfg.DateStyle)
	s.setString("time-style", os.Getenv("ISO8601_TIME_STYLE"), &cfg.TimeStyle)
	s.setString("tz-style", os.Getenv("ISO8601_TZ_STYLE"), &cfg.TimeZoneStyle)
	s.setString("fraction-separator", os.Getenv("ISO8601_FRACTION_SEPARATOR"), &cfg.FractionSeparator)
	s.setString("output", os.Getenv("ISO8601_OUTPUT"), &cfg.Output)

	if err := s.setIntFromString("fraction-digits", os.Getenv("ISO8601_FRACTION_DIGITS"), &cfg.FractionDigits); err != nil {
		return err
	}

	s.setBoolFromString("verbose", os.Getenv("ISO8601_VERBOSE"), &cfg.Verbose)

	return nil
}
