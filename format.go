package iso8601

import (
	"fmt"
	"github.com/davejbax/go-iso8601/internal/calendar"
	"github.com/itchio/headway/counter"
	"io"
	"strings"
	"time"
)

// Format writes clock in the codec's representation. The clock is first resolved with [Clock.Time], so it may hold
// either a calendar or a week date; [ErrYearOutOfRange] is returned if the resolved year is not in 0-9999.
//
// The UTC offset is only written if the clock has one (see [FieldOffset]), and is never written when the time of day
// is omitted.
func (c *Codec) Format(clock Clock) (string, error) {
	t := clock.Time()
	year, m, day := t.Date()
	month := int(m)

	if year < 0 || year > 9999 {
		return "", fmt.Errorf("%w: %d", ErrYearOutOfRange, year)
	}

	var b strings.Builder

	if err := c.writeDate(&b, year, month, day); err != nil {
		return "", err
	}

	switch c.config.TimeStyle {
	case TimeNone:
		return b.String(), nil
	case TimeLong:
		fmt.Fprintf(&b, "T%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	case TimeShort:
		fmt.Fprintf(&b, "T%02d%02d%02d", t.Hour(), t.Minute(), t.Second())
	default:
		return "", fmt.Errorf("%w: %v", ErrUnknownStyle, c.config.TimeStyle)
	}

	if !clock.Has(FieldOffset) {
		return b.String(), nil
	}

	switch c.config.TimeZoneStyle {
	case TimeZoneNone:
	case TimeZoneUTC:
		b.WriteByte('Z')
	case TimeZoneLong:
		writeOffset(&b, clock.Offset, ":")
	case TimeZoneShort:
		writeOffset(&b, clock.Offset, "")
	default:
		return "", fmt.Errorf("%w: %v", ErrUnknownStyle, c.config.TimeZoneStyle)
	}

	return b.String(), nil
}

// FormatTime is shorthand for formatting [FromTime] of t.
func (c *Codec) FormatTime(t time.Time) (string, error) {
	return c.Format(FromTime(t))
}

// FormatTo formats clock and writes the result to w, returning the number of bytes written.
func (c *Codec) FormatTo(w io.Writer, clock Clock) (int64, error) {
	text, err := c.Format(clock)
	if err != nil {
		return 0, err
	}

	cw := counter.NewWriter(w)

	if _, err := io.WriteString(cw, text); err != nil {
		return cw.Count(), fmt.Errorf("failed to write formatted date: %w", err)
	}

	return cw.Count(), nil
}

func (c *Codec) writeDate(b *strings.Builder, year, month, day int) error {
	week := calendar.ISOWeek(year, month, day)
	weekday := calendar.ISOWeekday(calendar.Weekday(year, month, day))

	// Week 53 dates are assumed to belong to the previous week-numbering year. This is only right for those in early
	// January: a week 53 that ends in late December (e.g. 2015-12-31) is written against the wrong year.
	yearSegment := year
	if (c.config.DateStyle == WeekLong || c.config.DateStyle == WeekShort) && week == 53 {
		yearSegment = year - 1
	}

	fmt.Fprintf(b, "%04d", yearSegment)

	switch c.config.DateStyle {
	case CalendarLong:
		fmt.Fprintf(b, "-%02d-%02d", month, day)
	case CalendarShort:
		fmt.Fprintf(b, "%02d%02d", month, day)
	case OrdinalLong:
		fmt.Fprintf(b, "-%03d", calendar.DayOfYear(year, month, day))
	case OrdinalShort:
		fmt.Fprintf(b, "%03d", calendar.DayOfYear(year, month, day))
	case WeekLong:
		fmt.Fprintf(b, "-W%02d-%d", week, weekday)
	case WeekShort:
		fmt.Fprintf(b, "W%02d%d", week, weekday)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownStyle, c.config.DateStyle)
	}

	return nil
}

func writeOffset(b *strings.Builder, offset int, separator string) {
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}

	fmt.Fprintf(b, "%c%02d%s%02d", sign, offset/3600, separator, offset%3600/60)
}
