package iso8601

import "slices"

// Positions at which the minutes begin in each date style, assuming the time is written in extended format.
// Separators are inserted right to left so that each position refers to the text as originally given.
const (
	calendarLongTimeOffset  = 13 // YYYY-MM-DDThh|
	calendarShortTimeOffset = 11 // YYYYMMDDThh|
	ordinalLongTimeOffset   = 11 // YYYY-DDDThh|
	ordinalShortTimeOffset  = 10 // YYYYDDDThh|
	weekLongTimeOffset      = 13 // YYYY-Www-DThh|
	weekShortTimeOffset     = 11 // YYYYWwwDThh|
)

// toExtended rewrites basic format text as extended format, by inserting separators at the positions the codec's
// styles put them. The layout of text is not checked: text that is not laid out as configured is rewritten
// regardless, and the parse will stop wherever the result stops making sense. Positions past the end of text are
// skipped, so truncated input is rewritten as far as it goes.
func (c *Codec) toExtended(text string) string {
	b := []byte(text)

	insert := func(index int, separator byte) {
		if index < len(b) {
			b = slices.Insert(b, index, separator)
		}
	}

	insertTime := func(minutes int) {
		switch c.config.TimeStyle {
		case TimeNone:
		case TimeLong:
			if c.config.TimeZoneStyle == TimeZoneShort {
				insert(minutes+9, ':') // hh:mm:ss±hh|
			}
		case TimeShort:
			if c.config.TimeZoneStyle == TimeZoneShort {
				insert(minutes+7, ':') // hhmmss±hh|
			}

			insert(minutes+2, ':')
			insert(minutes, ':')
		}
	}

	switch c.config.DateStyle {
	case CalendarLong:
		insertTime(calendarLongTimeOffset)
	case CalendarShort:
		insertTime(calendarShortTimeOffset)
		insert(6, '-')
		insert(4, '-')
	case OrdinalLong:
		insertTime(ordinalLongTimeOffset)
	case OrdinalShort:
		insertTime(ordinalShortTimeOffset)
		insert(4, '-')
	case WeekLong:
		insertTime(weekLongTimeOffset)
	case WeekShort:
		insertTime(weekShortTimeOffset)
		insert(7, '-')
		insert(4, '-')
	}

	return string(b)
}
