package cliconfig

import (
	"errors"
	"fmt"
	"github.com/davejbax/go-iso8601"
	"slices"
	"strconv"
)

// ValidOutputs are the output formats the CLI can render results in.
var ValidOutputs = []string{"text", "json", "yaml"}

var (
	// ErrInvalidOutput is returned by Validate for an output format not in ValidOutputs.
	ErrInvalidOutput = errors.New("invalid output format")

	// ErrInvalidFractionDigits is returned by Validate for a negative number of fraction digits.
	ErrInvalidFractionDigits = errors.New("invalid fraction digits")
)

// Config holds CLI configuration. Styles are kept by name, as they appear in flags, files and the environment, and
// only converted when a codec is needed.
type Config struct {
	DateStyle         string
	TimeStyle         string
	TimeZoneStyle     string
	FractionSeparator string
	FractionDigits    int

	Output  string
	Verbose bool
}

// DefaultConfig returns a Config matching [iso8601.DefaultConfig], with text output.
func DefaultConfig() Config {
	defaults := iso8601.DefaultConfig()

	return Config{
		DateStyle:         defaults.DateStyle.String(),
		TimeStyle:         defaults.TimeStyle.String(),
		TimeZoneStyle:     defaults.TimeZoneStyle.String(),
		FractionSeparator: defaults.FractionSeparator.String(),
		FractionDigits:    defaults.FractionDigits,
		Output:            "text",
	}
}

// Validate checks that every style names a real style and that the output format is known.
func (c *Config) Validate() error {
	if _, err := c.Codec(); err != nil {
		return err
	}

	if !slices.Contains(ValidOutputs, c.Output) {
		return fmt.Errorf("%w %q: must be one of %v", ErrInvalidOutput, c.Output, ValidOutputs)
	}

	if c.FractionDigits < 0 {
		return fmt.Errorf("%w %d: must not be negative", ErrInvalidFractionDigits, c.FractionDigits)
	}

	return nil
}

// CodecConfig converts the named styles to an [iso8601.Config].
func (c *Config) CodecConfig() (iso8601.Config, error) {
	var (
		config iso8601.Config
		err    error
	)

	if config.DateStyle, err = iso8601.ParseDateStyle(c.DateStyle); err != nil {
		return config, err
	}

	if config.TimeStyle, err = iso8601.ParseTimeStyle(c.TimeStyle); err != nil {
		return config, err
	}

	if config.TimeZoneStyle, err = iso8601.ParseTimeZoneStyle(c.TimeZoneStyle); err != nil {
		return config, err
	}

	if config.FractionSeparator, err = iso8601.ParseFractionSeparator(c.FractionSeparator); err != nil {
		return config, err
	}

	config.FractionDigits = c.FractionDigits

	return config, nil
}

// Codec builds a codec from the configured styles.
func (c *Config) Codec() (*iso8601.Codec, error) {
	config, err := c.CodecConfig()
	if err != nil {
		return nil, err
	}

	return iso8601.NewCodec(config), nil
}

// configSetter applies configuration values while respecting flag precedence: a value is only applied if the
// corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if not negative and flag not changed. Zero is a meaningful number of fraction digits, so
// files use a pointer to distinguish it from an absent value.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || *value < 0 || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i < 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString accepts "true" and "1" as true, and anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
