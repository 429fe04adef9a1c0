package iso8601

import (
	"fmt"
	"github.com/davejbax/go-iso8601/internal/calendar"
	"strings"
	"time"
)

// Field identifies one component of a [Clock].
type Field uint16

const (
	FieldYear Field = 1 << iota
	FieldMonth
	FieldDay
	FieldWeek
	FieldWeekday
	FieldHour
	FieldMinute
	FieldSecond
	FieldOffset
)

var fieldNames = []struct {
	field Field
	name  string
}{
	{FieldYear, "year"},
	{FieldMonth, "month"},
	{FieldDay, "day"},
	{FieldWeek, "week"},
	{FieldWeekday, "weekday"},
	{FieldHour, "hour"},
	{FieldMinute, "minute"},
	{FieldSecond, "second"},
	{FieldOffset, "offset"},
}

// Clock is a civil date and time broken into its components, with an optional offset from UTC. Fields records which
// components hold a value; the others are zero and should be ignored. A Clock produced by [Codec.Parse] may hold any
// subset of its fields, depending on how much of the input could be read.
//
// The date is either a calendar date (Month and Day) or a week date (Week and Weekday, with Year being the ISO week-
// numbering year). Ordinal dates are always stored as calendar dates.
type Clock struct {
	Year  int
	Month int
	Day   int

	// Week is the ISO week number, and Weekday counts from Monday=1 to Sunday=7
	Week    int
	Weekday int

	Hour   int
	Minute int
	Second int

	// Offset is the number of seconds east of UTC
	Offset int

	Fields Field
}

// Date returns a Clock holding only a calendar date.
func Date(year, month, day int) Clock {
	return Clock{Year: year, Month: month, Day: day, Fields: FieldYear | FieldMonth | FieldDay}
}

// DateTime returns a Clock holding a calendar date and time of day, with no UTC offset.
func DateTime(year, month, day, hour, minute, second int) Clock {
	return Clock{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: second,
		Fields: FieldYear | FieldMonth | FieldDay | FieldHour | FieldMinute | FieldSecond,
	}
}

// WeekDate returns a Clock holding only a week date.
func WeekDate(year, week, weekday int) Clock {
	return Clock{Year: year, Week: week, Weekday: weekday, Fields: FieldYear | FieldWeek | FieldWeekday}
}

// FromTime breaks t down into a Clock in t's own location, including its UTC offset. Sub-second precision is
// discarded.
func FromTime(t time.Time) Clock {
	_, offset := t.Zone()
	return DateTime(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second()).WithOffset(offset)
}

// WithOffset returns a copy of c with its UTC offset set to the given number of seconds east of UTC.
func (c Clock) WithOffset(seconds int) Clock {
	c.Offset = seconds
	c.Fields |= FieldOffset
	return c
}

// Has reports whether every field in f is set.
func (c Clock) Has(f Field) bool {
	return c.Fields&f == f
}

// Time resolves c to a point in time. Missing fields take the first value of their range (January, the 1st,
// midnight), week dates are resolved using ISO week-numbering rules, and a Clock without an offset is taken to be in
// UTC. Out of range components are normalised in the same way as [time.Date].
func (c Clock) Time() time.Time {
	year, month, day := c.Year, 1, 1

	switch {
	case c.Has(FieldMonth) || c.Has(FieldDay):
		if c.Has(FieldMonth) {
			month = c.Month
		}

		if c.Has(FieldDay) {
			day = c.Day
		}

	case c.Has(FieldWeek):
		weekday := 1
		if c.Has(FieldWeekday) {
			weekday = c.Weekday
		}

		year, month, day = calendar.FromWeek(c.Year, c.Week, weekday)
	}

	loc := time.UTC
	if c.Has(FieldOffset) {
		loc = time.FixedZone("", c.Offset)
	}

	return time.Date(year, time.Month(month), day, c.Hour, c.Minute, c.Second, 0, loc)
}

// String lists the fields that are set, e.g. "year=2015 month=6 day=23"
func (c Clock) String() string {
	var parts []string

	for _, f := range fieldNames {
		if c.Has(f.field) {
			parts = append(parts, fmt.Sprintf("%s=%d", f.name, c.value(f.field)))
		}
	}

	return strings.Join(parts, " ")
}

// Map returns the fields that are set, keyed by their lowercase names.
func (c Clock) Map() map[string]int {
	m := make(map[string]int)

	for _, f := range fieldNames {
		if c.Has(f.field) {
			m[f.name] = c.value(f.field)
		}
	}

	return m
}

func (c Clock) value(f Field) int {
	switch f {
	case FieldYear:
		return c.Year
	case FieldMonth:
		return c.Month
	case FieldDay:
		return c.Day
	case FieldWeek:
		return c.Week
	case FieldWeekday:
		return c.Weekday
	case FieldHour:
		return c.Hour
	case FieldMinute:
		return c.Minute
	case FieldSecond:
		return c.Second
	case FieldOffset:
		return c.Offset
	default:
		panic(fmt.Sprintf("unexpected clock field %d", f))
	}
}
