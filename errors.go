package englishcron

import "fmt"

// ErrorKind classifies conversion failures.
type ErrorKind int

const (
	// UnrecognizedPhrase means no recognizer produced a fragment from the input.
	UnrecognizedPhrase ErrorKind = iota

	// MalformedTime means a time literal had an out-of-grammar structure,
	// such as "25:99" or "17pm".
	MalformedTime

	// OutOfRangeValue means a recognized value failed the field bounds check.
	OutOfRangeValue

	// ConflictingFields means both day-of-month and day-of-week were given
	// specific values, which cron cannot express simultaneously.
	ConflictingFields
)

func (k ErrorKind) String() string {
	switch k {
	case UnrecognizedPhrase:
		return "unrecognized phrase"
	case MalformedTime:
		return "malformed time"
	case OutOfRangeValue:
		return "out of range value"
	case ConflictingFields:
		return "conflicting fields"
	}
	return "unknown"
}

// ParseError is returned when an English phrase cannot be converted.
// Field names the cron field involved and Token holds the offending input
// text; either may be empty when not applicable.
type ParseError struct {
	Kind  ErrorKind
	Field string
	Token string
}

func (e *ParseError) Error() string {
	switch {
	case e.Field != "" && e.Token != "":
		return fmt.Sprintf("%s: %q in field %s", e.Kind, e.Token, e.Field)
	case e.Token != "":
		return fmt.Sprintf("%s: %q", e.Kind, e.Token)
	case e.Field != "":
		return fmt.Sprintf("%s: field %s", e.Kind, e.Field)
	}
	return e.Kind.String()
}

func unrecognized() *ParseError {
	return &ParseError{Kind: UnrecognizedPhrase}
}

func malformedTime(token string) *ParseError {
	return &ParseError{Kind: MalformedTime, Token: token}
}

func outOfRange(field, token string) *ParseError {
	return &ParseError{Kind: OutOfRangeValue, Field: field, Token: token}
}

func conflictingFields() *ParseError {
	return &ParseError{Kind: ConflictingFields, Field: "day-of-month/day-of-week"}
}
