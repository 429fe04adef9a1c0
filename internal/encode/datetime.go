package encode

import (
	"errors"
	"fmt"
	"github.com/davejbax/go-iso8601/internal/record"
	"time"
)

var (
	// ErrYearOutOfRange indicates that a year cannot be represented in the target encoding
	ErrYearOutOfRange = errors.New("year is out of range for encoding")

	// ErrOffsetOutOfRange indicates that a UTC offset is not a whole number of 15 minute intervals, or is further
	// from UTC than a record can hold.
	ErrOffsetOutOfRange = errors.New("UTC offset cannot be represented in 15 minute intervals")

	// ErrInvalidDigits indicates that a digit field of a [record.LongDateTime] contains something other than ASCII
	// digits.
	ErrInvalidDigits = errors.New("date and time field contains non-digit characters")

	// ErrUnspecified is returned when decoding [record.ZeroLongDateTime], which does not represent any point in time.
	ErrUnspecified = errors.New("date and time is not specified")
)

// AsDateTime encodes t, in its own location, as a [record.DateTime]. Years outside 1900-2155 cannot be encoded.
func AsDateTime(t time.Time) (record.DateTime, error) {
	if t.Year() < 1900 || t.Year() > 1900+255 {
		return record.DateTime{}, fmt.Errorf("%w: %d is not in 1900-2155", ErrYearOutOfRange, t.Year())
	}

	intervals, err := offsetIntervals(t)
	if err != nil {
		return record.DateTime{}, err
	}

	return record.DateTime{
		YearsSince1900:            uint8(t.Year() - 1900),
		Month:                     uint8(t.Month()),
		Day:                       uint8(t.Day()),
		Hour:                      uint8(t.Hour()),
		Minute:                    uint8(t.Minute()),
		Second:                    uint8(t.Second()),
		GMTOffsetIn15MinIntervals: intervals,
	}, nil
}

// AsLongDateTime encodes t, in its own location, as a [record.LongDateTime]. Years outside 0-9999 cannot be encoded.
func AsLongDateTime(t time.Time) (record.LongDateTime, error) {
	if t.Year() < 0 || t.Year() > 9999 {
		return record.LongDateTime{}, fmt.Errorf("%w: %d is not in 0-9999", ErrYearOutOfRange, t.Year())
	}

	intervals, err := offsetIntervals(t)
	if err != nil {
		return record.LongDateTime{}, err
	}

	ldt := record.LongDateTime{GMTOffsetIn15MinIntervals: intervals}

	putDigits(ldt.YearDigits[:], t.Year())
	putDigits(ldt.MonthDigits[:], int(t.Month()))
	putDigits(ldt.DayDigits[:], t.Day())
	putDigits(ldt.HourDigits[:], t.Hour())
	putDigits(ldt.MinuteDigits[:], t.Minute())
	putDigits(ldt.SecondDigits[:], t.Second())
	putDigits(ldt.CentisecondsDigits[:], t.Nanosecond()/int(10*time.Millisecond))

	return ldt, nil
}

// FromDateTime decodes a [record.DateTime]. The fields are not range checked, and are normalised as by [time.Date].
func FromDateTime(d record.DateTime) time.Time {
	return time.Date(
		int(d.YearsSince1900)+1900,
		time.Month(d.Month),
		int(d.Day),
		int(d.Hour),
		int(d.Minute),
		int(d.Second),
		0,
		time.FixedZone("", int(d.GMTOffsetIn15MinIntervals)*record.OffsetInterval),
	)
}

// FromLongDateTime decodes a [record.LongDateTime].
func FromLongDateTime(d record.LongDateTime) (time.Time, error) {
	if d == record.ZeroLongDateTime {
		return time.Time{}, ErrUnspecified
	}

	fields := []struct {
		name   string
		digits []uint8
		value  int
	}{
		{name: "year", digits: d.YearDigits[:]},
		{name: "month", digits: d.MonthDigits[:]},
		{name: "day", digits: d.DayDigits[:]},
		{name: "hour", digits: d.HourDigits[:]},
		{name: "minute", digits: d.MinuteDigits[:]},
		{name: "second", digits: d.SecondDigits[:]},
		{name: "centiseconds", digits: d.CentisecondsDigits[:]},
	}

	for i := range fields {
		value, err := digitsValue(fields[i].digits)
		if err != nil {
			return time.Time{}, fmt.Errorf("could not decode %s: %w", fields[i].name, err)
		}

		fields[i].value = value
	}

	return time.Date(
		fields[0].value,
		time.Month(fields[1].value),
		fields[2].value,
		fields[3].value,
		fields[4].value,
		fields[5].value,
		fields[6].value*int(10*time.Millisecond),
		time.FixedZone("", int(d.GMTOffsetIn15MinIntervals)*record.OffsetInterval),
	), nil
}

func offsetIntervals(t time.Time) (int8, error) {
	_, offset := t.Zone()

	if offset%record.OffsetInterval != 0 {
		return 0, fmt.Errorf("%w: %ds", ErrOffsetOutOfRange, offset)
	}

	intervals := offset / record.OffsetInterval
	if intervals < record.MinOffsetIntervals || intervals > record.MaxOffsetIntervals {
		return 0, fmt.Errorf("%w: %ds", ErrOffsetOutOfRange, offset)
	}

	return int8(intervals), nil
}

// putDigits writes value as zero-padded ASCII digits filling digits
func putDigits(digits []uint8, value int) {
	for i := len(digits) - 1; i >= 0; i-- {
		digits[i] = uint8('0' + value%10)
		value /= 10
	}
}

func digitsValue(digits []uint8) (int, error) {
	value := 0

	for _, digit := range digits {
		if digit < '0' || digit > '9' {
			return 0, ErrInvalidDigits
		}

		value = value*10 + int(digit-'0')
	}

	return value, nil
}
