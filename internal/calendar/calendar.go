// Package calendar holds the proleptic Gregorian arithmetic that ISO 8601 date forms are built on: leap years,
// ordinal days, and the ISO week-numbering rules (weeks start on Monday, and week 1 is the first week with at least
// four days in the new year).
//
// ISO 8601-1:2019 §4.2.2, §5.2.2, §5.2.3
package calendar

import "time"

// Number of days before the first of each month, indexed from January.
var (
	daysBeforeMonth     = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
	daysBeforeMonthLeap = [12]int{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}
)

// IsLeapYear reports whether year has 366 days in the Gregorian calendar.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysBeforeMonth returns the cumulative day-count table for year: element i is the number of days in the year
// before the first day of month i+1.
func DaysBeforeMonth(year int) [12]int {
	if IsLeapYear(year) {
		return daysBeforeMonthLeap
	}

	return daysBeforeMonth
}

// DayOfYear returns the ordinal day (1-366) of a valid calendar date.
func DayOfYear(year, month, day int) int {
	return DaysBeforeMonth(year)[month-1] + day
}

// MonthDay splits an ordinal day into a month and day of month. The month is the number of month boundaries that
// lie strictly before ordinal; ordinals past the last boundary fall into December.
//
// No range checking is done: ordinals of 0 or less yield a January day of 0 or less, and an ordinal past the end
// of the year yields a December day greater than 31.
func MonthDay(year, ordinal int) (month, day int) {
	boundaries := DaysBeforeMonth(year)

	for i, startDay := range boundaries {
		if startDay >= ordinal {
			if i == 0 {
				return 1, ordinal
			}

			return i, ordinal - boundaries[i-1]
		}
	}

	return 12, ordinal - boundaries[11]
}

// Weekday returns the day of the week of a date, counting Sunday as 1 and Saturday as 7.
func Weekday(year, month, day int) int {
	return int(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday()) + 1
}

// ISOWeekday converts a weekday counted from Sunday=1 (as returned by [Weekday]) to the ISO 8601 numbering, which
// counts Monday as 1 and Sunday as 7.
func ISOWeekday(weekday int) int {
	if weekday > 1 {
		return weekday - 1
	}

	return 7
}

// ISOWeek returns the ISO 8601 week number (1-53) of a date.
func ISOWeek(year, month, day int) int {
	_, week := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

// FromWeek resolves a week date to a calendar date. year is the ISO week-numbering year and weekday uses the ISO
// numbering (Monday=1). Out of range weeks and weekdays are not rejected; they simply spill into adjacent weeks or
// years.
func FromWeek(year, week, weekday int) (y, m, d int) {
	// January 4th is always in week 1
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	week1Monday := jan4.AddDate(0, 0, 1-ISOWeekday(int(jan4.Weekday())+1))

	date := week1Monday.AddDate(0, 0, (week-1)*7+weekday-1)
	y, month, d := date.Date()

	return y, int(month), d
}
