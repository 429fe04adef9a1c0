package iso8601

import (
	"fmt"
	"github.com/davejbax/go-iso8601/internal/calendar"
	"github.com/davejbax/go-iso8601/internal/scan"
)

// Parse reads text in the codec's representation. Basic format input (the Short styles) is expected to be exactly
// in the layout that Format would produce for the same configuration.
//
// Only the year is required: an error is returned if text does not start with a year ([ErrMissingYear]), or if the
// year is not in 0-9999 ([ErrYearOutOfRange]). After that, parsing stops at the first component that is absent or
// malformed, and the returned Clock holds every component read before it. Parsing "2015" therefore succeeds with
// only [FieldYear] set, whatever the configuration. Callers that need the whole text to have been consumed can
// format the result and compare.
//
// Apart from the year, only the week (0-53), weekday (0-7) and time of day components are range checked; months,
// days and ordinal days are taken as they are. The time of day is only stored if the codec's time style is not
// [TimeNone], although it is still read past so that a UTC offset after it can be found.
func (c *Codec) Parse(text string) (Clock, error) {
	s := scan.New(c.toExtended(text))

	year, ok := s.ScanInt()
	if !ok {
		return Clock{}, ErrMissingYear
	}

	if year < 0 || year > 9999 {
		return Clock{}, fmt.Errorf("%w: %d", ErrYearOutOfRange, year)
	}

	clock := Clock{Year: year, Fields: FieldYear}

	if !s.ScanString("-") {
		return clock, nil
	}

	if !c.parseDate(s, &clock) {
		return clock, nil
	}

	if !c.parseTime(s, &clock) {
		return clock, nil
	}

	parseOffset(s, &clock)
	return clock, nil
}

// parseDate reads the part of a date after the year and its separator. It reports whether the date was complete.
func (c *Codec) parseDate(s *scan.Scanner, clock *Clock) bool {
	switch c.config.DateStyle {
	case CalendarLong, CalendarShort:
		month, ok := s.ScanInt()
		if !ok {
			return false
		}

		clock.Month = month
		clock.Fields |= FieldMonth

		if !s.ScanString("-") {
			return false
		}

		day, ok := s.ScanInt()
		if !ok {
			return false
		}

		clock.Day = day
		clock.Fields |= FieldDay

	case OrdinalLong, OrdinalShort:
		ordinal, ok := s.ScanInt()
		if !ok {
			return false
		}

		clock.Month, clock.Day = calendar.MonthDay(clock.Year, ordinal)
		clock.Fields |= FieldMonth | FieldDay

	case WeekLong, WeekShort:
		if !s.ScanString("W") {
			return false
		}

		week, ok := s.ScanInt()
		if !ok || week < 0 || week > 53 {
			return false
		}

		clock.Week = week
		clock.Fields |= FieldWeek

		if !s.ScanString("-") {
			return false
		}

		weekday, ok := s.ScanInt()
		if !ok || weekday < 0 || weekday > 7 {
			return false
		}

		clock.Weekday = weekday
		clock.Fields |= FieldWeekday

	default:
		return false
	}

	return true
}

// parseTime reads the time designator and time of day. It reports whether an offset may follow.
func (c *Codec) parseTime(s *scan.Scanner, clock *Clock) bool {
	if _, ok := s.ScanCharacters("T"); !ok {
		return false
	}

	if !c.parseTimeComponent(s, &clock.Hour, 23, FieldHour, clock) {
		return false
	}

	if !s.ScanString(":") {
		return false
	}

	if !c.parseTimeComponent(s, &clock.Minute, 59, FieldMinute, clock) {
		return false
	}

	// Seconds are optional
	beforeSeconds := s.Pos()
	if s.ScanString(":") {
		if !c.parseTimeComponent(s, &clock.Second, 59, FieldSecond, clock) {
			return false
		}
	} else {
		s.Reset(beforeSeconds)
	}

	return true
}

func (c *Codec) parseTimeComponent(s *scan.Scanner, dst *int, maximum int, field Field, clock *Clock) bool {
	value, ok := s.ScanInt()
	if !ok {
		return false
	}

	if c.config.TimeStyle == TimeNone {
		return true
	}

	if value < 0 || value > maximum {
		return false
	}

	*dst = value
	clock.Fields |= field
	return true
}

// parseOffset looks ahead for a UTC designator or offset
func parseOffset(s *scan.Scanner, clock *Clock) {
	beforeOffset := s.Pos()

	s.ScanUpToString("Z")
	if s.ScanString("Z") {
		*clock = clock.WithOffset(0)
		return
	}

	s.Reset(beforeOffset)

	s.ScanUpToCharacters("+-")
	sign, ok := s.ScanCharacters("+-")
	if !ok {
		return
	}

	hours, ok := s.ScanInt()
	if !ok {
		return
	}

	minutes := 0

	// No hour offset exceeds 14, so a larger number is an hour and minute run together (e.g. +0530)
	if !s.ScanString(":") && hours > 14 {
		minutes = hours % 100
		hours = hours / 100
	} else if m, ok := s.ScanInt(); ok {
		minutes = m
	}

	offset := hours*3600 + minutes*60
	if sign == "-" {
		offset = -offset
	}

	*clock = clock.WithOffset(offset)
}
