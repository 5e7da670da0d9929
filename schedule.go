package englishcron

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
)

// scheduleParser accepts the six leading fields of a generated expression.
var scheduleParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
)

// Schedule converts text and parses the result into a cron.Schedule for
// next-run computation. The year field has no counterpart in classic cron: a
// wildcard year is dropped, a specific one is rejected.
func (c *Converter) Schedule(text string) (cron.Schedule, error) {
	expr, err := c.Convert(text)
	if err != nil {
		return nil, err
	}

	fields := strings.Fields(expr)
	if year := fields[len(fields)-1]; year != "*" {
		return nil, errors.Errorf("year-constrained schedule %q cannot run under cron", expr)
	}

	schedule, err := scheduleParser.Parse(strings.Join(fields[:len(fields)-1], " "))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing generated expression %q", expr)
	}
	return schedule, nil
}

// Schedule converts text into a running schedule using the default converter.
func Schedule(text string) (cron.Schedule, error) {
	return defaultConverter.Schedule(text)
}
