package englishcron

// A recognizer scans the whole token sequence for one schedule dimension and
// yields at most one fragment. Recognizers do not consume tokens, so several
// dimensions can be read out of a single sentence. A sub-grammar that does
// not fully match yields no fragment rather than a partial one.
type recognizer func(ts []Token) (fragment, bool, error)

// recognizers in fixed application order: when two dimensions claim the same
// cron field, the later one wins during composition.
var recognizers = []recognizer{
	recognizeInterval,
	recognizeTimeOfDay,
	recognizeWeekday,
	recognizeDayOfMonth,
	recognizeMonth,
	recognizeYear,
}

func recognize(ts []Token) ([]fragment, error) {
	var frags []fragment
	for _, rec := range recognizers {
		frag, ok, err := rec(ts)
		if err != nil {
			return nil, err
		}
		if ok {
			frags = append(frags, frag)
		}
	}
	return frags, nil
}

func isKeyword(t Token, k Keyword) bool {
	return t.Kind == TokenKeyword && t.Keyword == k
}

// recognizeInterval matches "every N <unit>" and "every <unit>". The last
// full match in the sentence wins.
func recognizeInterval(ts []Token) (fragment, bool, error) {
	var frag fragment
	found := false
	for i, t := range ts {
		if !isKeyword(t, KeywordEvery) {
			continue
		}
		if i+2 < len(ts) && ts[i+1].Kind == TokenNumber && ts[i+2].Kind == TokenUnit {
			frag = intervalStep{unit: ts[i+2].Unit, n: ts[i+1].Number, explicit: true}
			found = true
			continue
		}
		if i+1 < len(ts) && ts[i+1].Kind == TokenUnit {
			frag = intervalStep{unit: ts[i+1].Unit, n: 1}
			found = true
		}
	}
	return frag, found, nil
}

// recognizeTimeOfDay matches "between <time> and <time>" as an hour range,
// otherwise the first time literal as a fixed time of day.
func recognizeTimeOfDay(ts []Token) (fragment, bool, error) {
	for i, t := range ts {
		if isKeyword(t, KeywordBetween) &&
			i+3 < len(ts) &&
			ts[i+1].Kind == TokenTime &&
			isKeyword(ts[i+2], KeywordAnd) &&
			ts[i+3].Kind == TokenTime {
			start, _, err := resolveClock(ts[i+1])
			if err != nil {
				return nil, false, err
			}
			end, _, err := resolveClock(ts[i+3])
			if err != nil {
				return nil, false, err
			}
			return hourRange{start: start, end: end}, true, nil
		}
	}
	for _, t := range ts {
		if t.Kind != TokenTime {
			continue
		}
		hour, minute, err := resolveClock(t)
		if err != nil {
			return nil, false, err
		}
		return timeOfDay{hour: hour, minute: minute}, true, nil
	}
	return nil, false, nil
}

// resolveClock converts a time literal to 24h form. Out-of-grammar values
// ("25:99", "17pm") are malformed rather than out of range.
func resolveClock(t Token) (hour, minute int, err error) {
	hour, minute = t.Hour, t.Minute
	if minute > 59 {
		return 0, 0, malformedTime(t.Text)
	}
	switch t.Meridiem {
	case "pm":
		switch {
		case hour > 12:
			return 0, 0, malformedTime(t.Text)
		case hour < 12:
			hour += 12
		}
	case "am":
		switch {
		case hour > 12:
			return 0, 0, malformedTime(t.Text)
		case hour == 12:
			hour = 0
		}
	default:
		if hour > 23 {
			return 0, 0, malformedTime(t.Text)
		}
	}
	return hour, minute, nil
}

// recognizeWeekday matches "X through Y" as a range, otherwise a list of
// weekday names joined by "and" or adjacency. Lists are emitted in calendar
// order Monday..Sunday; ranges are kept verbatim, even reversed ones.
func recognizeWeekday(ts []Token) (fragment, bool, error) {
	for i, t := range ts {
		if t.Kind != TokenWeekday {
			continue
		}
		if i+2 < len(ts) && isKeyword(ts[i+1], KeywordThrough) && ts[i+2].Kind == TokenWeekday {
			return weekdaySet{days: []Weekday{t.Weekday, ts[i+2].Weekday}, rangeForm: true}, true, nil
		}
		days := []Weekday{t.Weekday}
		for j := i + 1; j < len(ts); j++ {
			if ts[j].Kind == TokenWeekday {
				days = append(days, ts[j].Weekday)
				continue
			}
			if isKeyword(ts[j], KeywordAnd) && j+1 < len(ts) && ts[j+1].Kind == TokenWeekday {
				days = append(days, ts[j+1].Weekday)
				j++
				continue
			}
			break
		}
		return weekdaySet{days: uniqueWeekdays(days)}, true, nil
	}
	return nil, false, nil
}

func uniqueWeekdays(days []Weekday) []Weekday {
	var seen [7]bool
	for _, d := range days {
		seen[d] = true
	}
	out := make([]Weekday, 0, len(days))
	for d := Monday; d <= Sunday; d++ {
		if seen[d] {
			out = append(out, d)
		}
	}
	return out
}

// recognizeDayOfMonth collects ordinals ("1st and 15th", "every 3rd day")
// into an ascending day-of-month list.
func recognizeDayOfMonth(ts []Token) (fragment, bool, error) {
	var values []int
	for _, t := range ts {
		if t.Kind == TokenOrdinal {
			values = append(values, t.Number)
		}
	}
	if len(values) == 0 {
		return nil, false, nil
	}
	return dayOfMonthList{values: sortedUnique(values)}, true, nil
}

// recognizeMonth matches "<Month> to <Month>" as a range, otherwise a list of
// month names.
func recognizeMonth(ts []Token) (fragment, bool, error) {
	for i, t := range ts {
		if t.Kind != TokenMonth {
			continue
		}
		if i+2 < len(ts) &&
			(isKeyword(ts[i+1], KeywordTo) || isKeyword(ts[i+1], KeywordThrough)) &&
			ts[i+2].Kind == TokenMonth {
			return monthSpan{rangeForm: true, start: t.Month, end: ts[i+2].Month}, true, nil
		}
		months := []Month{t.Month}
		for j := i + 1; j < len(ts); j++ {
			if ts[j].Kind == TokenMonth {
				months = append(months, ts[j].Month)
				continue
			}
			if isKeyword(ts[j], KeywordAnd) && j+1 < len(ts) && ts[j+1].Kind == TokenMonth {
				months = append(months, ts[j+1].Month)
				j++
				continue
			}
			break
		}
		return monthSpan{list: uniqueMonths(months)}, true, nil
	}
	return nil, false, nil
}

func uniqueMonths(months []Month) []Month {
	var seen [13]bool
	for _, m := range months {
		seen[m] = true
	}
	out := make([]Month, 0, len(months))
	for m := January; m <= December; m++ {
		if seen[m] {
			out = append(out, m)
		}
	}
	return out
}

// recognizeYear collects 4-digit numbers into a year list, or a "Y to Y"
// pair into a year range.
func recognizeYear(ts []Token) (fragment, bool, error) {
	for i, t := range ts {
		if !isYear(t) {
			continue
		}
		if i+2 < len(ts) &&
			(isKeyword(ts[i+1], KeywordTo) || isKeyword(ts[i+1], KeywordThrough)) &&
			isYear(ts[i+2]) {
			return yearSpan{rangeForm: true, start: t.Number, end: ts[i+2].Number}, true, nil
		}
		years := []int{t.Number}
		for j := i + 1; j < len(ts); j++ {
			if isYear(ts[j]) {
				years = append(years, ts[j].Number)
				continue
			}
			if isKeyword(ts[j], KeywordAnd) && j+1 < len(ts) && isYear(ts[j+1]) {
				years = append(years, ts[j+1].Number)
				j++
				continue
			}
			break
		}
		return yearSpan{list: sortedUnique(years)}, true, nil
	}
	return nil, false, nil
}

func isYear(t Token) bool {
	return t.Kind == TokenNumber && t.Number >= 1000 && t.Number <= 9999
}
