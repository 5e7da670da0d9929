package runner

import (
	"time"

	englishcron "github.com/yonasBSD/english-to-cron"
)

// RunPolicy defines running behaviour of an entry.
type RunPolicy int

const (
	// RunParallel runs an entry while ignoring other running instances.
	RunParallel RunPolicy = 0

	// CancelRunning cancels previously running instances before starting.
	CancelRunning RunPolicy = 1

	// SingleInstanceOnly cancels previously running instances and awaits
	// cancellation confirmation before starting.
	SingleInstanceOnly RunPolicy = 2

	// SkipIfRunning ignores the entry if another instance is currently running.
	SkipIfRunning RunPolicy = 3
)

// Entry specifies a single crontab entry: a routine executed on an
// English-language schedule.
type Entry struct {
	// Globally unique ID. Filled with a random ID by Runner.Add when empty.
	ID string

	// Expression is the English schedule description, e.g. "every 15 seconds"
	// or "at 6:00 pm every Monday through Friday".
	Expression string

	// Routine-identifier to be executed.
	Routine string

	// Arguments passed to the Routine. Arguments should be JSON serializable
	// if a persistent tab is used.
	Args map[string]interface{}

	Policy RunPolicy

	nextRun time.Time
	lastRun time.Time
}

// Next returns the time when the entry should be scheduled next.
func (e Entry) Next(t time.Time) (time.Time, error) {
	schedule, err := englishcron.Schedule(e.Expression)
	if err != nil {
		return time.Time{}, err
	}
	return schedule.Next(t), nil
}

// MustNext calls Next and panics if an error is returned.
func (e Entry) MustNext(t time.Time) time.Time {
	next, err := e.Next(t)
	if err != nil {
		panic(err)
	}
	return next
}

// ByTimeAsc orders entries by their next activation time.
type ByTimeAsc []*Entry

func (b ByTimeAsc) Len() int { return len(b) }
func (b ByTimeAsc) Less(i, j int) bool {
	now := time.Now()
	return b[i].MustNext(now).Before(b[j].MustNext(now))
}
func (b ByTimeAsc) Swap(i, j int) { b[i], b[j] = b[j], b[i] }

// Unique ensures all items are unique by removing entries with duplicate IDs.
// Ordering is not preserved.
func (b ByTimeAsc) Unique() ByTimeAsc {
	set := make(map[string]struct{})
	uniques := b[:0]

	for _, entry := range b {
		if _, exists := set[entry.ID]; exists {
			continue
		}
		set[entry.ID] = struct{}{}
		uniques = append(uniques, entry)
	}
	return uniques
}
