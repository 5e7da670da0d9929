package englishcron

// A fragment is a partial schedule contribution produced by one recognizer
// for one schedule dimension. Applying a fragment writes its cron fields into
// the record; applying a later fragment over the same field overwrites the
// earlier value.
type fragment interface {
	apply(r *record)
}

// intervalStep is an "every N <unit>" phrase. When the unit was given without
// a count ("every minute"), explicit is false and the field collapses to a
// wildcard instead of a 0/1 step.
type intervalStep struct {
	unit     Unit
	n        int
	explicit bool
}

func (f intervalStep) apply(r *record) {
	switch f.unit {
	case UnitSeconds:
		r.fields[fieldSeconds] = stepOrStar(f.n, f.explicit)
	case UnitMinutes:
		r.fields[fieldMinutes] = stepOrStar(f.n, f.explicit)
	case UnitHours:
		r.fields[fieldHours] = stepOrStar(f.n, f.explicit)
	case UnitDays:
		r.fields[fieldDayOfMonth] = wildStep(f.n)
		r.authoredDom = true
	}
}

func stepOrStar(n int, explicit bool) fieldValue {
	if !explicit {
		return star()
	}
	return step(0, n)
}

// timeOfDay is an "at H[:MM][am|pm]" phrase, already resolved to 24h.
type timeOfDay struct {
	hour   int
	minute int
}

func (f timeOfDay) apply(r *record) {
	r.fields[fieldHours] = single(f.hour)
	r.fields[fieldMinutes] = single(f.minute)
}

// hourRange is a "between <time> and <time>" phrase. Only the hours of the
// bounds participate; both ends are inclusive.
type hourRange struct {
	start int
	end   int
}

func (f hourRange) apply(r *record) {
	r.fields[fieldHours] = numRange(f.start, f.end)
}

// weekdaySet holds either an ordered list of weekdays or a verbatim
// "X through Y" pair.
type weekdaySet struct {
	days      []Weekday
	rangeForm bool
}

func (f weekdaySet) apply(r *record) {
	if f.rangeForm {
		r.fields[fieldDayOfWeek] = nameRange(f.days[0].Code(), f.days[1].Code())
	} else {
		codes := make([]string, len(f.days))
		for i, d := range f.days {
			codes[i] = d.Code()
		}
		r.fields[fieldDayOfWeek] = nameList(codes)
	}
	r.authoredDow = true
}

// dayOfMonthList holds ascending, deduplicated days of the month.
type dayOfMonthList struct {
	values []int
}

func (f dayOfMonthList) apply(r *record) {
	r.fields[fieldDayOfMonth] = list(f.values)
	r.authoredDom = true
}

// monthSpan holds either a "from X to Y" month range or a month list.
type monthSpan struct {
	rangeForm bool
	start     Month
	end       Month
	list      []Month
}

func (f monthSpan) apply(r *record) {
	if f.rangeForm {
		r.fields[fieldMonth] = nameRange(f.start.Code(), f.end.Code())
		return
	}
	codes := make([]string, len(f.list))
	for i, m := range f.list {
		codes[i] = m.Code()
	}
	r.fields[fieldMonth] = nameList(codes)
}

// yearSpan holds either a year range or an ascending year list.
type yearSpan struct {
	rangeForm bool
	start     int
	end       int
	list      []int
}

func (f yearSpan) apply(r *record) {
	if f.rangeForm {
		r.fields[fieldYear] = numRange(f.start, f.end)
	} else {
		r.fields[fieldYear] = list(f.list)
	}
}
