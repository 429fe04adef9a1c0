// Package record defines the fixed-width binary date and time records of ECMA-119 (ISO 9660), which are packed with
// the [struc] library. The digit form is an ISO 8601 basic format calendar date and time with centiseconds, followed
// by a binary UTC offset.
package record

// OffsetInterval is the unit of the UTC offset in both record types: 15 minutes, in seconds.
const OffsetInterval = 15 * 60

// Limits on the number of [OffsetInterval]s in a UTC offset (-12:00 to +13:00).
const (
	MinOffsetIntervals = -48
	MaxOffsetIntervals = 52
)

// DateTime is a numerical representation of a date and time
//
// ECMA-119 (5th ed.) §9.1.5
type DateTime struct {
	YearsSince1900            uint8
	Month                     uint8
	Day                       uint8
	Hour                      uint8
	Minute                    uint8
	Second                    uint8
	GMTOffsetIn15MinIntervals int8
}

// LongDateTime is a character (digit) representation of date and time
//
// ECMA-119 (5th ed.) §8.4.26.1
type LongDateTime struct {
	YearDigits                [4]uint8
	MonthDigits               [2]uint8
	DayDigits                 [2]uint8
	HourDigits                [2]uint8
	MinuteDigits              [2]uint8
	SecondDigits              [2]uint8
	CentisecondsDigits        [2]uint8
	GMTOffsetIn15MinIntervals int8
}

// ZeroLongDateTime represents the zero-value of the [LongDateTime] type, which means that the date and time is not
// specified.
//
// ECMA-119 (5th ed.) §8.4.26.1
var ZeroLongDateTime = LongDateTime{
	YearDigits:                [4]uint8{'0', '0', '0', '0'},
	MonthDigits:               [2]uint8{'0', '0'},
	DayDigits:                 [2]uint8{'0', '0'},
	HourDigits:                [2]uint8{'0', '0'},
	MinuteDigits:              [2]uint8{'0', '0'},
	SecondDigits:              [2]uint8{'0', '0'},
	CentisecondsDigits:        [2]uint8{'0', '0'},
	GMTOffsetIn15MinIntervals: 0,
}
