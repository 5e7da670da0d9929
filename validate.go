package englishcron

import "strconv"

type fieldBounds struct {
	field fieldID
	min   int
	max   int
}

// validate range-checks every numeric value in the composed record. Named
// values (weekday and month codes) are valid by construction. Any violation
// fails the whole conversion; nothing is clamped.
func (c *Converter) validate(r *record) error {
	checks := []fieldBounds{
		{fieldSeconds, 0, 59},
		{fieldMinutes, 0, 59},
		{fieldHours, 0, 23},
		{fieldDayOfMonth, 1, 31},
		{fieldMonth, 1, 12},
		{fieldYear, c.minYear, c.maxYear},
	}
	for _, check := range checks {
		if err := checkField(r.fields[check.field], check); err != nil {
			return err
		}
	}
	return nil
}

func checkField(v fieldValue, b fieldBounds) error {
	switch v.kind {
	case valueStep:
		if v.nums[1] < 1 {
			return outOfRange(b.field.String(), strconv.Itoa(v.nums[1]))
		}
	case valueWildStep:
		if v.nums[0] < 1 {
			return outOfRange(b.field.String(), strconv.Itoa(v.nums[0]))
		}
		if v.nums[0] > b.max {
			return outOfRange(b.field.String(), strconv.Itoa(v.nums[0]))
		}
		return nil
	}
	for _, n := range v.nums {
		if n < b.min || n > b.max {
			return outOfRange(b.field.String(), strconv.Itoa(n))
		}
	}
	return nil
}
