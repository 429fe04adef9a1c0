package iso8601_test

import (
	"github.com/davejbax/go-iso8601"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestClock_Time(t *testing.T) {
	cases := []struct {
		name     string
		input    iso8601.Clock
		expected time.Time
	}{
		{"year only", iso8601.Clock{Year: 2015, Fields: iso8601.FieldYear}, time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"year and month", iso8601.Clock{Year: 2015, Month: 6, Fields: iso8601.FieldYear | iso8601.FieldMonth}, time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"calendar date", iso8601.Date(2015, 6, 23), time.Date(2015, 6, 23, 0, 0, 0, 0, time.UTC)},
		{"week date", iso8601.WeekDate(2015, 26, 2), time.Date(2015, 6, 23, 0, 0, 0, 0, time.UTC)},
		{"week without weekday", iso8601.Clock{Year: 2015, Week: 26, Fields: iso8601.FieldYear | iso8601.FieldWeek}, time.Date(2015, 6, 22, 0, 0, 0, 0, time.UTC)},
		{"week 53 in the next calendar year", iso8601.WeekDate(2015, 53, 7), time.Date(2016, 1, 3, 0, 0, 0, 0, time.UTC)},
		{"week 1 in the previous calendar year", iso8601.WeekDate(2020, 1, 1), time.Date(2019, 12, 30, 0, 0, 0, 0, time.UTC)},
		{"date and time", iso8601.DateTime(2015, 6, 23, 10, 56, 1), time.Date(2015, 6, 23, 10, 56, 1, 0, time.UTC)},
		{"offset", iso8601.DateTime(2015, 6, 23, 10, 56, 1).WithOffset(-5 * 3600), time.Date(2015, 6, 23, 15, 56, 1, 0, time.UTC)},
		{"normalised", iso8601.Date(2015, 2, 29), time.Date(2015, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			actual := c.input.Time()
			assert.True(t, c.expected.Equal(actual), "Time should resolve %v to %v, got %v", c.input, c.expected, actual)
		})
	}
}

func TestClock_Time_Location(t *testing.T) {
	_, offset := iso8601.DateTime(2015, 6, 23, 10, 56, 1).WithOffset(19800).Time().Zone()
	assert.Equal(t, 19800, offset, "Time should be in a location with the clock's offset")

	assert.Equal(t, time.UTC, iso8601.Date(2015, 6, 23).Time().Location(), "Time should be in UTC for a clock without an offset")
}

func TestFromTime(t *testing.T) {
	input := time.Date(2015, 6, 23, 10, 56, 1, 999, time.FixedZone("IST", 19800))
	expected := iso8601.Clock{
		Year:   2015,
		Month:  6,
		Day:    23,
		Hour:   10,
		Minute: 56,
		Second: 1,
		Offset: 19800,
		Fields: iso8601.FieldYear | iso8601.FieldMonth | iso8601.FieldDay | iso8601.FieldHour | iso8601.FieldMinute | iso8601.FieldSecond | iso8601.FieldOffset,
	}

	assert.Equal(t, expected, iso8601.FromTime(input), "FromTime should break a time down in its own location")
}

func TestClock_Has(t *testing.T) {
	clock := iso8601.WeekDate(2015, 26, 2)

	assert.True(t, clock.Has(iso8601.FieldWeek), "Has should report a set field")
	assert.True(t, clock.Has(iso8601.FieldWeek|iso8601.FieldWeekday), "Has should report a set of fields that are all set")
	assert.False(t, clock.Has(iso8601.FieldWeek|iso8601.FieldDay), "Has should not report a set of fields that are partially set")
	assert.False(t, clock.Has(iso8601.FieldOffset), "Has should not report an unset field")
}

func TestClock_String(t *testing.T) {
	cases := []struct {
		input    iso8601.Clock
		expected string
	}{
		{iso8601.Clock{}, ""},
		{iso8601.Date(2015, 6, 23), "year=2015 month=6 day=23"},
		{iso8601.WeekDate(2015, 26, 2), "year=2015 week=26 weekday=2"},
		{iso8601.DateTime(2015, 6, 23, 10, 56, 1).WithOffset(-18000), "year=2015 month=6 day=23 hour=10 minute=56 second=1 offset=-18000"},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, c.input.String(), "String should list exactly the fields that are set")
	}
}

func TestClock_Map(t *testing.T) {
	clock := iso8601.Clock{Year: 2015, Month: 13, Day: 99, Fields: iso8601.FieldYear | iso8601.FieldMonth}

	assert.Equal(t, map[string]int{"year": 2015, "month": 13}, clock.Map(), "Map should only hold fields that are set")
	assert.Empty(t, iso8601.Clock{}.Map(), "Map should be empty for a clock with no fields")
}
