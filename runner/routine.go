package runner

import "errors"

var (
	// ErrRepeatable indicates the routine should be retried immediately.
	ErrRepeatable = errors.New("temporary error")

	// ErrRepeatNextRun indicates the routine may be retried when the schedule
	// next allows.
	ErrRepeatNextRun = errors.New("attempt at next scheduled run")

	// ErrPermanentFailure indicates the entry should be removed from the tab.
	ErrPermanentFailure = errors.New("never repeat this entry")

	// ErrRunnerFailure indicates the runner should cease all operations.
	ErrRunnerFailure = errors.New("cease all runner operations")
)

// Routine is a registerable function. Passed arguments are obtained from the
// Entry. The context is cancelled when the entry or the runner is stopped.
type Routine func(ctx Context, args map[string]interface{}) error
