package englishcron

import (
	"sort"
	"strconv"
	"strings"
)

// fieldID indexes the cron fields in output order.
type fieldID int

const (
	fieldSeconds fieldID = iota
	fieldMinutes
	fieldHours
	fieldDayOfMonth
	fieldMonth
	fieldDayOfWeek
	fieldYear
	numFields
)

var fieldNames = [numFields]string{
	"seconds", "minutes", "hours", "day-of-month", "month", "day-of-week", "year",
}

func (f fieldID) String() string { return fieldNames[f] }

type valueKind int

const (
	valueUnset valueKind = iota
	valueStar
	valueQuestion
	valueSingle   // nums[0]
	valueStep     // nums[0]/nums[1]
	valueWildStep // */nums[0]
	valueList     // nums comma-joined
	valueRange    // nums[0]-nums[1]
	valueNameList // names comma-joined
	valueNameRange
)

// fieldValue is one rendered cron field. Numeric payloads stay as ints until
// serialization so the validator can bounds-check them.
type fieldValue struct {
	kind  valueKind
	nums  []int
	names []string
}

func star() fieldValue        { return fieldValue{kind: valueStar} }
func question() fieldValue    { return fieldValue{kind: valueQuestion} }
func single(n int) fieldValue { return fieldValue{kind: valueSingle, nums: []int{n}} }

func step(from, by int) fieldValue {
	return fieldValue{kind: valueStep, nums: []int{from, by}}
}

func wildStep(by int) fieldValue { return fieldValue{kind: valueWildStep, nums: []int{by}} }
func list(nums []int) fieldValue { return fieldValue{kind: valueList, nums: nums} }
func numRange(a, b int) fieldValue {
	return fieldValue{kind: valueRange, nums: []int{a, b}}
}
func nameList(names []string) fieldValue {
	return fieldValue{kind: valueNameList, names: names}
}
func nameRange(a, b string) fieldValue {
	return fieldValue{kind: valueNameRange, names: []string{a, b}}
}

func (v fieldValue) set() bool { return v.kind != valueUnset }

func (v fieldValue) render() string {
	switch v.kind {
	case valueStar, valueUnset:
		return "*"
	case valueQuestion:
		return "?"
	case valueSingle:
		return strconv.Itoa(v.nums[0])
	case valueStep:
		return strconv.Itoa(v.nums[0]) + "/" + strconv.Itoa(v.nums[1])
	case valueWildStep:
		return "*/" + strconv.Itoa(v.nums[0])
	case valueList:
		parts := make([]string, len(v.nums))
		for i, n := range v.nums {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, ",")
	case valueRange:
		return strconv.Itoa(v.nums[0]) + "-" + strconv.Itoa(v.nums[1])
	case valueNameList:
		return strings.Join(v.names, ",")
	case valueNameRange:
		return v.names[0] + "-" + v.names[1]
	}
	return "*"
}

// record is the schedule being assembled. Fields start unset and are filled
// by fragments, then the exclusivity and default-fill passes.
type record struct {
	fields      [numFields]fieldValue
	authoredDom bool
	authoredDow bool
}

// compose merges fragments into a complete record. Fragments are applied in
// recognizer order, so a later fragment claiming an already-set field wins.
// Day-of-month and day-of-week are mutually exclusive: whichever was not
// authored is forced to the "?" marker, and authoring both is an error.
func compose(frags []fragment) (*record, error) {
	rec := &record{}
	for _, f := range frags {
		f.apply(rec)
	}

	if rec.authoredDom && rec.authoredDow {
		return nil, conflictingFields()
	}
	switch {
	case rec.fields[fieldDayOfWeek].set():
		if !rec.fields[fieldDayOfMonth].set() {
			rec.fields[fieldDayOfMonth] = question()
		}
	case rec.fields[fieldDayOfMonth].set():
		rec.fields[fieldDayOfWeek] = question()
	default:
		rec.fields[fieldDayOfMonth] = star()
		rec.fields[fieldDayOfWeek] = question()
	}

	// Seconds default to 0 only when the phrase pinned down minute-level
	// detail; a purely coarse schedule leaves them wild.
	if !rec.fields[fieldSeconds].set() {
		if rec.fields[fieldMinutes].set() {
			rec.fields[fieldSeconds] = single(0)
		} else {
			rec.fields[fieldSeconds] = star()
		}
	}
	for _, f := range []fieldID{fieldMinutes, fieldHours, fieldMonth, fieldYear} {
		if !rec.fields[f].set() {
			rec.fields[f] = star()
		}
	}
	return rec, nil
}

// String renders the record as the canonical 7-field cron expression.
func (r *record) String() string {
	parts := make([]string, numFields)
	for i := fieldID(0); i < numFields; i++ {
		parts[i] = r.fields[i].render()
	}
	return strings.Join(parts, " ")
}

func sortedUnique(nums []int) []int {
	sort.Ints(nums)
	out := nums[:0]
	for _, n := range nums {
		if len(out) == 0 || n != out[len(out)-1] {
			out = append(out, n)
		}
	}
	return out
}
