package iso8601

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCodec_toExtended(t *testing.T) {
	cases := []struct {
		config   Config
		input    string
		expected string
	}{
		{Config{CalendarShort, TimeShort, TimeZoneShort, Comma, 0}, "20150623T105601+0530", "2015-06-23T10:56:01+05:30"},
		{Config{CalendarShort, TimeShort, TimeZoneUTC, Comma, 0}, "20150623T105601Z", "2015-06-23T10:56:01Z"},
		{Config{CalendarShort, TimeNone, TimeZoneNone, Comma, 0}, "20150623", "2015-06-23"},
		{Config{CalendarLong, TimeShort, TimeZoneLong, Comma, 0}, "2015-06-23T105601+05:30", "2015-06-23T10:56:01+05:30"},
		{Config{CalendarLong, TimeLong, TimeZoneShort, Comma, 0}, "2015-06-23T10:56:01-0500", "2015-06-23T10:56:01-05:00"},
		{Config{CalendarLong, TimeLong, TimeZoneLong, Comma, 0}, "2015-06-23T10:56:01-05:00", "2015-06-23T10:56:01-05:00"},
		{Config{OrdinalShort, TimeShort, TimeZoneShort, Comma, 0}, "2015174T105601+0530", "2015-174T10:56:01+05:30"},
		{Config{OrdinalLong, TimeShort, TimeZoneNone, Comma, 0}, "2015-174T105601", "2015-174T10:56:01"},
		{Config{WeekShort, TimeShort, TimeZoneShort, Comma, 0}, "2015W262T105601+0530", "2015-W26-2T10:56:01+05:30"},
		{Config{WeekLong, TimeShort, TimeZoneShort, Comma, 0}, "2015-W26-2T105601+0530", "2015-W26-2T10:56:01+05:30"},

		// Truncated input is rewritten as far as it goes
		{Config{CalendarShort, TimeShort, TimeZoneShort, Comma, 0}, "2015", "2015"},
		{Config{CalendarShort, TimeShort, TimeZoneShort, Comma, 0}, "20150", "2015-0"},
		{Config{WeekShort, TimeShort, TimeZoneShort, Comma, 0}, "2015W26", "2015-W26"},
		{Config{CalendarShort, TimeShort, TimeZoneShort, Comma, 0}, "20150623T10", "2015-06-23T10"},
		{Config{CalendarShort, TimeShort, TimeZoneShort, Comma, 0}, "", ""},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%v %v %v %s", c.config.DateStyle, c.config.TimeStyle, c.config.TimeZoneStyle, c.input), func(t *testing.T) {
			t.Parallel()

			codec := NewCodec(c.config)
			assert.Equal(t, c.expected, codec.toExtended(c.input), "toExtended should insert separators where the configured styles put them")
		})
	}
}
