package iso8601

import (
	"fmt"
	"github.com/davejbax/go-iso8601/internal/encode"
	"github.com/davejbax/go-iso8601/internal/record"
	"github.com/itchio/headway/counter"
	"github.com/lunixbochs/struc"
	"io"
)

var (
	// ErrOffsetOutOfRange indicates a UTC offset that a fixed-width record cannot hold: records store offsets as a
	// number of 15 minute intervals between -12:00 and +13:00.
	ErrOffsetOutOfRange = encode.ErrOffsetOutOfRange

	// ErrInvalidDigits indicates a digit record containing something other than ASCII digits.
	ErrInvalidDigits = encode.ErrInvalidDigits

	// ErrUnspecified is returned by [ReadLongDateTime] for the all-zeros record, which means 'no date and time'.
	ErrUnspecified = encode.ErrUnspecified
)

// Sizes of the fixed-width records, in bytes.
const (
	DateTimeSize     = 7
	LongDateTimeSize = 17
)

// WriteDateTime packs clock as the 7-byte numerical date and time used in ECMA-119 directory records, keeping the
// clock's own UTC offset. Only years 1900-2155 can be written.
//
// ECMA-119 (5th ed.) §9.1.5
func WriteDateTime(w io.Writer, clock Clock) (int64, error) {
	dt, err := encode.AsDateTime(clock.Time())
	if err != nil {
		return 0, fmt.Errorf("could not encode date and time: %w", err)
	}

	return pack(w, &dt)
}

// ReadDateTime unpacks a 7-byte numerical date and time. The returned clock has all calendar date, time and offset
// fields set.
func ReadDateTime(r io.Reader) (Clock, error) {
	var dt record.DateTime
	if err := struc.Unpack(r, &dt); err != nil {
		return Clock{}, fmt.Errorf("could not unpack date and time: %w", err)
	}

	return FromTime(encode.FromDateTime(dt)), nil
}

// WriteLongDateTime packs clock as the 17-byte digit date and time used in ECMA-119 volume descriptors: the basic
// format calendar date and time (YYYYMMDDhhmmss), two digits of centiseconds, and a binary UTC offset.
//
// ECMA-119 (5th ed.) §8.4.26.1
func WriteLongDateTime(w io.Writer, clock Clock) (int64, error) {
	ldt, err := encode.AsLongDateTime(clock.Time())
	if err != nil {
		return 0, fmt.Errorf("could not encode date and time: %w", err)
	}

	return pack(w, &ldt)
}

// ReadLongDateTime unpacks a 17-byte digit date and time. [ErrUnspecified] is returned for the all-zeros record.
func ReadLongDateTime(r io.Reader) (Clock, error) {
	var ldt record.LongDateTime
	if err := struc.Unpack(r, &ldt); err != nil {
		return Clock{}, fmt.Errorf("could not unpack date and time: %w", err)
	}

	t, err := encode.FromLongDateTime(ldt)
	if err != nil {
		return Clock{}, fmt.Errorf("could not decode date and time: %w", err)
	}

	return FromTime(t), nil
}

func pack(w io.Writer, data any) (int64, error) {
	cw := counter.NewWriter(w)

	if err := struc.Pack(cw, data); err != nil {
		return cw.Count(), fmt.Errorf("could not pack structure: %w", err)
	}

	return cw.Count(), nil
}
