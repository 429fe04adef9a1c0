package iso8601

import (
	"fmt"
	"slices"
)

// DateStyle selects which of the ISO 8601 date representations is written and expected.
//
// ISO 8601-1:2019 §5.2.2 (calendar), §5.2.3 (ordinal), §5.2.4 (week)
type DateStyle int

const (
	CalendarLong  DateStyle = iota // YYYY-MM-DD
	CalendarShort                  // YYYYMMDD
	OrdinalLong                    // YYYY-DDD
	OrdinalShort                   // YYYYDDD
	WeekLong                       // YYYY-Www-D
	WeekShort                      // YYYYWwwD
)

var dateStyleNames = []string{"calendar-long", "calendar-short", "ordinal-long", "ordinal-short", "week-long", "week-short"}

func (s DateStyle) String() string {
	return styleName(s, "DateStyle", dateStyleNames)
}

// ParseDateStyle looks up a DateStyle by the name returned from its String method.
func ParseDateStyle(name string) (DateStyle, error) {
	return parseStyle[DateStyle](name, "date style", dateStyleNames)
}

// TimeStyle selects the time of day representation. [TimeNone] omits the time of day entirely.
//
// ISO 8601-1:2019 §5.3.1
type TimeStyle int

const (
	TimeNone  TimeStyle = iota
	TimeLong                    // hh:mm:ss
	TimeShort                   // hhmmss
)

var timeStyleNames = []string{"none", "long", "short"}

func (s TimeStyle) String() string {
	return styleName(s, "TimeStyle", timeStyleNames)
}

// ParseTimeStyle looks up a TimeStyle by the name returned from its String method.
func ParseTimeStyle(name string) (TimeStyle, error) {
	return parseStyle[TimeStyle](name, "time style", timeStyleNames)
}

// TimeZoneStyle selects how the UTC offset of a time is represented. [TimeZoneUTC] writes every offset as 'Z',
// whatever its value.
//
// ISO 8601-1:2019 §5.3.3, §5.3.4
type TimeZoneStyle int

const (
	TimeZoneNone  TimeZoneStyle = iota
	TimeZoneUTC                 // Z
	TimeZoneLong                // ±hh:mm
	TimeZoneShort               // ±hhmm
)

var timeZoneStyleNames = []string{"none", "utc", "long", "short"}

func (s TimeZoneStyle) String() string {
	return styleName(s, "TimeZoneStyle", timeZoneStyleNames)
}

// ParseTimeZoneStyle looks up a TimeZoneStyle by the name returned from its String method.
func ParseTimeZoneStyle(name string) (TimeZoneStyle, error) {
	return parseStyle[TimeZoneStyle](name, "time zone style", timeZoneStyleNames)
}

// FractionSeparator is the decimal sign placed before a fraction of a second.
//
// ISO 8601-1:2019 §3.2.6
type FractionSeparator int

const (
	Comma FractionSeparator = iota // ,
	Dot                            // .
)

var fractionSeparatorNames = []string{"comma", "dot"}

func (s FractionSeparator) String() string {
	return styleName(s, "FractionSeparator", fractionSeparatorNames)
}

// ParseFractionSeparator looks up a FractionSeparator by the name returned from its String method.
func ParseFractionSeparator(name string) (FractionSeparator, error) {
	return parseStyle[FractionSeparator](name, "fraction separator", fractionSeparatorNames)
}

func styleName[T ~int](style T, typeName string, names []string) string {
	if style < 0 || int(style) >= len(names) {
		return fmt.Sprintf("%s(%d)", typeName, int(style))
	}

	return names[style]
}

func parseStyle[T ~int](name string, kind string, names []string) (T, error) {
	index := slices.Index(names, name)
	if index == -1 {
		return 0, fmt.Errorf("%w: no %s named '%s'", ErrUnknownStyle, kind, name)
	}

	return T(index), nil
}
