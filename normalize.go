package englishcron

import (
	"regexp"
	"strings"
)

var (
	// Anything that is not a letter, digit, colon or space separates words
	// and carries no meaning ("Run at 6:00pm, please!").
	rePunctuation = regexp.MustCompile(`[^a-z0-9: ]+`)

	// Joins a trailing meridiem onto the number it qualifies, so "6:00 pm"
	// and "7 pm" tokenize the same as "6:00pm" and "7pm".
	reMeridiem = regexp.MustCompile(`([0-9])\s+(am|pm)\b`)
)

// synonyms expands unit abbreviations and 3-letter weekday/month names to the
// canonical words the tokenizer understands.
var synonyms = map[string]string{
	"sec":  "seconds",
	"secs": "seconds",
	"min":  "minutes",
	"mins": "minutes",
	"hr":   "hours",
	"hrs":  "hours",

	"mon": "monday",
	"tue": "tuesday",
	"wed": "wednesday",
	"thu": "thursday",
	"fri": "friday",
	"sat": "saturday",
	"sun": "sunday",

	"jan":  "january",
	"feb":  "february",
	"mar":  "march",
	"apr":  "april",
	"jun":  "june",
	"jul":  "july",
	"aug":  "august",
	"sep":  "september",
	"sept": "september",
	"oct":  "october",
	"nov":  "november",
	"dec":  "december",
}

// normalize lowercases the input, strips punctuation, glues meridiems onto
// their numbers and expands abbreviations. It always succeeds; degenerate
// input yields an empty string.
func normalize(input string) string {
	s := strings.ToLower(input)
	s = rePunctuation.ReplaceAllString(s, " ")
	s = reMeridiem.ReplaceAllString(s, "$1$2")

	words := strings.Fields(s)
	for i, w := range words {
		if full, ok := synonyms[w]; ok {
			words[i] = full
		}
	}
	return strings.Join(words, " ")
}
