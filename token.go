package englishcron

import (
	"regexp"
	"strconv"
	"strings"
)

// TokenKind discriminates the typed lexical units produced by tokenize.
type TokenKind int

const (
	TokenNumber TokenKind = iota
	TokenTime
	TokenWeekday
	TokenMonth
	TokenOrdinal
	TokenUnit
	TokenKeyword
)

// Unit is a schedule interval unit.
type Unit int

const (
	UnitSeconds Unit = iota
	UnitMinutes
	UnitHours
	UnitDays
)

// Keyword is a connector word that anchors or joins schedule phrases.
type Keyword int

const (
	KeywordEvery Keyword = iota
	KeywordAt
	KeywordOn
	KeywordThrough
	KeywordFrom
	KeywordTo
	KeywordIn
	KeywordAnd
	KeywordBetween
)

// Weekday enumerates days in calendar order Monday through Sunday, the order
// weekday lists are emitted in.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayCodes = [...]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

// Code returns the 3-letter uppercase cron code for the weekday.
func (d Weekday) Code() string { return weekdayCodes[d] }

// Month enumerates months January(1) through December(12).
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthCodes = [...]string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

// Code returns the 3-letter uppercase cron code for the month.
func (m Month) Code() string { return monthCodes[m-1] }

// Token is one typed lexical unit. Kind selects which value fields are set.
// Time tokens carry the literal hour and minute as written; meridiem
// resolution and range checks happen in the time-of-day recognizer.
type Token struct {
	Kind TokenKind
	Text string

	Number   int
	Hour     int
	Minute   int
	Meridiem string // "am", "pm" or empty
	Weekday  Weekday
	Month    Month
	Unit     Unit
	Keyword  Keyword
}

var (
	reClock        = regexp.MustCompile(`^([0-9]{1,2}):([0-9]{2})(am|pm)?$`)
	reHourMeridiem = regexp.MustCompile(`^([0-9]{1,2})(am|pm)$`)
	reOrdinal      = regexp.MustCompile(`^([0-9]+)(st|nd|rd|th)$`)
	reNumber       = regexp.MustCompile(`^[0-9]+$`)
)

var weekdayNames = map[string]Weekday{
	"monday": Monday, "mondays": Monday,
	"tuesday": Tuesday, "tuesdays": Tuesday,
	"wednesday": Wednesday, "wednesdays": Wednesday,
	"thursday": Thursday, "thursdays": Thursday,
	"friday": Friday, "fridays": Friday,
	"saturday": Saturday, "saturdays": Saturday,
	"sunday": Sunday, "sundays": Sunday,
}

var monthNames = map[string]Month{
	"january":   January,
	"february":  February,
	"march":     March,
	"april":     April,
	"may":       May,
	"june":      June,
	"july":      July,
	"august":    August,
	"september": September,
	"october":   October,
	"november":  November,
	"december":  December,
}

var unitWords = map[string]Unit{
	"second": UnitSeconds, "seconds": UnitSeconds,
	"minute": UnitMinutes, "minutes": UnitMinutes,
	"hour": UnitHours, "hours": UnitHours,
	"day": UnitDays, "days": UnitDays,
}

var keywordWords = map[string]Keyword{
	"every":   KeywordEvery,
	"at":      KeywordAt,
	"on":      KeywordOn,
	"through": KeywordThrough,
	"from":    KeywordFrom,
	"to":      KeywordTo,
	"in":      KeywordIn,
	"and":     KeywordAnd,
	"between": KeywordBetween,
}

// tokenize converts normalized text into an ordered token sequence. Each word
// is classified by the first matcher that accepts it: time literal, ordinal,
// plain number, then name and keyword lookup. Unrecognized words are filler
// and dropped, so tokenize never fails; an all-filler input yields an empty
// sequence.
func tokenize(normalized string) []Token {
	var tokens []Token
	for _, word := range strings.Fields(normalized) {
		switch {
		case word == "noon":
			tokens = append(tokens, Token{Kind: TokenTime, Text: word, Hour: 12})
		case word == "midnight":
			tokens = append(tokens, Token{Kind: TokenTime, Text: word})
		case word == "weekend" || word == "weekends":
			tokens = append(tokens,
				Token{Kind: TokenWeekday, Text: word, Weekday: Saturday},
				Token{Kind: TokenWeekday, Text: word, Weekday: Sunday})
		case word == "weekday" || word == "weekdays":
			// Shorthand for the Monday through Friday range.
			tokens = append(tokens,
				Token{Kind: TokenWeekday, Text: word, Weekday: Monday},
				Token{Kind: TokenKeyword, Text: word, Keyword: KeywordThrough},
				Token{Kind: TokenWeekday, Text: word, Weekday: Friday})
		default:
			if tok, ok := classify(word); ok {
				tokens = append(tokens, tok)
			}
		}
	}
	return tokens
}

func classify(word string) (Token, bool) {
	if m := reClock.FindStringSubmatch(word); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		return Token{Kind: TokenTime, Text: word, Hour: hour, Minute: minute, Meridiem: m[3]}, true
	}
	if m := reHourMeridiem.FindStringSubmatch(word); m != nil {
		hour, _ := strconv.Atoi(m[1])
		return Token{Kind: TokenTime, Text: word, Hour: hour, Meridiem: m[2]}, true
	}
	if m := reOrdinal.FindStringSubmatch(word); m != nil {
		n, _ := strconv.Atoi(m[1])
		return Token{Kind: TokenOrdinal, Text: word, Number: n}, true
	}
	if reNumber.MatchString(word) {
		n, _ := strconv.Atoi(word)
		return Token{Kind: TokenNumber, Text: word, Number: n}, true
	}
	if d, ok := weekdayNames[word]; ok {
		return Token{Kind: TokenWeekday, Text: word, Weekday: d}, true
	}
	if m, ok := monthNames[word]; ok {
		return Token{Kind: TokenMonth, Text: word, Month: m}, true
	}
	if u, ok := unitWords[word]; ok {
		return Token{Kind: TokenUnit, Text: word, Unit: u}, true
	}
	if k, ok := keywordWords[word]; ok {
		return Token{Kind: TokenKeyword, Text: word, Keyword: k}, true
	}
	return Token{}, false
}
