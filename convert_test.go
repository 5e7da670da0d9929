package englishcron

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"every 15 seconds", "0/15 * * * * ? *"},
		{"Run every 15 second", "0/15 * * * * ? *"},
		{"Run every 15 sec", "0/15 * * * * ? *"},
		{"Run every 15 secs", "0/15 * * * * ? *"},
		{"Run every second", "* * * * * ? *"},
		{"Run every minute", "0 * * * * ? *"},
		{"Run every 5 minutes", "0 0/5 * * * ? *"},
		{"Run every hour", "* * * * * ? *"},
		{"every 3 hours", "* * 0/3 * * ? *"},
		{"Run every 10 hours", "* * 0/10 * * ? *"},

		{"at 10:00 am", "0 0 10 * * ? *"},
		{"At 12:00 AM", "0 0 0 * * ? *"},
		{"noon", "0 0 12 * * ? *"},
		{"midnight", "0 0 0 * * ? *"},
		{"every day at 17:25", "0 25 17 */1 * ? *"},
		{"Run at 10:00 am every day", "0 0 10 */1 * ? *"},
		{"Run at 6:30 pm every day", "0 30 18 */1 * ? *"},

		{"on Sunday at 12:00", "0 0 12 ? * SUN *"},
		{"7pm every Thursday", "0 0 19 ? * THU *"},
		{"run at 6:00 pm every Monday through Friday", "0 0 18 ? * MON-FRI *"},
		{"5:15am every Tuesdays", "0 15 5 ? * TUE *"},
		{"At 05:15 AM, only on Tuesday", "0 15 5 ? * TUE *"},
		{"midnight on tuesdays", "0 0 0 ? * TUE *"},
		{"Run at noon every Sunday", "0 0 12 ? * SUN *"},
		{"Run at 3:45 pm every Friday", "0 45 15 ? * FRI *"},
		{"Run at 9:00 am every weekend", "0 0 9 ? * SAT,SUN *"},
		{"Run at 8:00 am every weekday", "0 0 8 ? * MON-FRI *"},
		{"Run every 30 minutes on weekends", "0 0/30 * ? * SAT,SUN *"},
		{"on Monday and Wednesday and Friday at 7:00", "0 0 7 ? * MON,WED,FRI *"},
		{"on Friday and Monday at 7:00", "0 0 7 ? * MON,FRI *"},
		{"Friday through Monday", "* * * ? * FRI-MON *"},
		{"Run every 10 minutes Monday through Friday", "0 0/10 * ? * MON-FRI *"},
		{"Every 10 minutes, Monday through Friday", "0 0/10 * ? * MON-FRI *"},
		{"Every 15 seconds, only on Friday", "0/15 * * ? * FRI *"},

		{"Run at midnight on the 1st and 15th of the month", "0 0 0 1,15 * ? *"},
		{"Run at 12:45 pm every 2nd day of the month", "0 45 12 2 * ? *"},
		{"Run every 3rd day at noon", "0 0 12 3 * ? *"},
		{"on the 15th and the 1st", "* * * 1,15 * ? *"},

		{"Run every minute from January to March", "0 * * * JAN-MAR ? *"},
		{"in January and July", "* * * * JAN,JUL ? *"},

		{"in 2019 and 2020", "* * * * * ? 2019,2020"},
		{"from 2019 to 2022", "* * * * * ? 2019-2022"},
		{
			"every 3rd day at 2:55 am from January to August in 2019 and 2020",
			"0 55 2 3 JAN-AUG ? 2019,2020",
		},

		{
			"Run every 5 minutes Monday through Friday between 8:00 am and 5:55 pm",
			"0 0/5 8-17 ? * MON-FRI *",
		},
		{
			"Run every 10 minutes Monday through Friday between 8:00 am and 8:00 pm",
			"0 0/10 8-20 ? * MON-FRI *",
		},
		{
			"Run every 5 minutes Monday through Friday between 8:00 am and 8:00 am",
			"0 0/5 8-8 ? * MON-FRI *",
		},
		{"Run every 3 minutes between 2:00 pm and 4:00 pm", "0 0/3 14-16 * * ? *"},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Convert(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	cases := []struct {
		input string
		kind  ErrorKind
	}{
		{"gibberish no pattern here", UnrecognizedPhrase},
		{"", UnrecognizedPhrase},
		{"please just do the thing", UnrecognizedPhrase},
		{"at 25:99", MalformedTime},
		{"at 17pm", MalformedTime},
		{"at 13am", MalformedTime},
		{"at 24:00", MalformedTime},
		{"every 75 minutes", OutOfRangeValue},
		{"every 60 seconds", OutOfRangeValue},
		{"every 24 hours", OutOfRangeValue},
		{"on the 32nd", OutOfRangeValue},
		{"in 1950", OutOfRangeValue},
		{"in 2150", OutOfRangeValue},
		{"on the 1st and 15th every Monday", ConflictingFields},
		{"every day on Monday", ConflictingFields},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Convert(tc.input)
			require.Error(t, err)
			assert.Empty(t, got)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tc.kind, perr.Kind, "error was %v", err)
		})
	}
}

func TestConvert_StepProperty(t *testing.T) {
	fields := map[string]int{
		"seconds": 0,
		"minutes": 1,
		"hours":   2,
	}

	for unit, index := range fields {
		for _, n := range []int{2, 7, 15, 23} {
			input := fmt.Sprintf("every %d %s", n, unit)
			got, err := Convert(input)
			require.NoError(t, err, input)

			want := []string{"*", "*", "*", "*", "*", "?", "*"}
			want[index] = fmt.Sprintf("0/%d", n)
			assert.Equal(t, strings.Join(want, " "), got, input)
		}
	}
}

func TestConvert_WeekdayRangeProperty(t *testing.T) {
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	codes := []string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

	for i, from := range days {
		for j, to := range days {
			input := fmt.Sprintf("%s through %s", from, to)
			got, err := Convert(input)
			require.NoError(t, err, input)
			assert.Equal(t, fmt.Sprintf("* * * ? * %s-%s *", codes[i], codes[j]), got, input)
		}
	}
}

func TestConvert_Deterministic(t *testing.T) {
	inputs := []string{
		"every 15 seconds",
		"at 6:00 pm every Monday through Friday",
		"every 3rd day at 2:55 am from January to August in 2019 and 2020",
	}
	for _, input := range inputs {
		first, err1 := Convert(input)
		second, err2 := Convert(input)
		assert.Equal(t, first, second)
		assert.Equal(t, err1, err2)
	}
}

func TestConverter_WithYearBounds(t *testing.T) {
	c, err := New(WithYearBounds(1900, 2200))
	require.NoError(t, err)

	got, err := c.Convert("in 1950")
	require.NoError(t, err)
	assert.Equal(t, "* * * * * ? 1950", got)

	_, err = c.Convert("in 2300")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, OutOfRangeValue, perr.Kind)
}

func TestMustConvert(t *testing.T) {
	assert.Equal(t, "0/15 * * * * ? *", MustConvert("every 15 seconds"))
	assert.Panics(t, func() { MustConvert("gibberish") })
}
