// Package iso8601 formats and parses the date and time representations of ISO 8601: calendar, ordinal and week
// dates, in their basic (no separators) and extended forms, optionally followed by a time of day and a UTC offset.
//
// A [Codec] is configured once with the representation to use, and can then be shared freely:
//
//	codec := iso8601.NewCodec(iso8601.Config{DateStyle: iso8601.WeekLong, TimeStyle: iso8601.TimeLong, TimeZoneStyle: iso8601.TimeZoneUTC})
//	text, err := codec.FormatTime(time.Now())
//
// Parsing is lenient: anything after the year that cannot be parsed simply ends the parse, and the fields read so far
// are returned. See [Codec.Parse].
package iso8601

import (
	"errors"
	"github.com/davejbax/go-iso8601/internal/encode"
)

var (
	// ErrYearOutOfRange indicates a year that cannot be written in four digits (or, for the fixed-width records, in
	// the record's year field).
	ErrYearOutOfRange = encode.ErrYearOutOfRange

	// ErrMissingYear indicates that the text given to [Codec.Parse] does not start with a year.
	ErrMissingYear = errors.New("text does not start with a year")

	// ErrUnknownStyle is returned when looking up a style by a name that does not exist, or when a [Config] holds a
	// style value outside of its enumeration.
	ErrUnknownStyle = errors.New("unknown style")
)

// Config describes the representation a [Codec] writes and expects. The zero value is a calendar date with no time;
// [DefaultConfig] includes a time of day and UTC designator.
//
// No combination of styles is rejected.
type Config struct {
	DateStyle     DateStyle
	TimeStyle     TimeStyle
	TimeZoneStyle TimeZoneStyle

	// FractionSeparator and FractionDigits describe how a fraction of a second would be written. Neither Format nor
	// Parse handle fractions, so these are carried but never consulted.
	FractionSeparator FractionSeparator
	FractionDigits    int
}

// DefaultConfig returns the extended calendar date and time in UTC, e.g. 2015-06-23T10:56:01Z
func DefaultConfig() Config {
	return Config{
		DateStyle:         CalendarLong,
		TimeStyle:         TimeLong,
		TimeZoneStyle:     TimeZoneUTC,
		FractionSeparator: Comma,
		FractionDigits:    6,
	}
}

// Codec converts between [Clock] values and ISO 8601 text. A Codec is immutable once created, and is safe for
// concurrent use.
type Codec struct {
	config Config
}

// NewCodec returns a codec that formats and parses with the given configuration.
func NewCodec(config Config) *Codec {
	return &Codec{config: config}
}

// Config returns the configuration the codec was created with.
func (c *Codec) Config() Config {
	return c.config
}
