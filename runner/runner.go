// Package runner executes routines on English-language schedules. It is a
// cron manager whose crontab entries are written in plain English ("every 15
// seconds", "at 6:00 pm every Monday through Friday") and converted through
// the englishcron package. It supports per-entry run policies, cancellation,
// and persistent storage of entries.
package runner

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	englishcron "github.com/yonasBSD/english-to-cron"
)

const (
	// DefaultPeriod is the default period between runner wakenings
	DefaultPeriod = time.Second
)

var (
	// ErrRoutineExists is returned by Register if the provided routine ID is
	// already present in the registry.
	ErrRoutineExists = errors.New("routine already registered")
	// ErrRoutineNotExists is returned if an entry names a routine that was
	// never registered.
	ErrRoutineNotExists = errors.New("routine not registered")
)

// New is the constructor for Runner.
func New(opts ...Option) (*Runner, error) {
	r := &Runner{
		registry: make(map[string]Routine),
		contexts: make(map[string]Context),
		nextRuns: make(map[string]time.Time),
		errors:   make(chan error, 100),
		stop:     make(chan struct{}, 1),
	}

	for _, opt := range opts {
		err := opt(r)
		if err != nil {
			return nil, err
		}
	}

	if r.period == 0 {
		r.period = DefaultPeriod
	}
	if r.tab == nil {
		r.tab = NewMemoryTab()
	}
	return r, nil
}

// Runner periodically wakes, loads the tab and fires due entries.
type Runner struct {
	rmu      sync.RWMutex
	registry map[string]Routine
	tab      Tab

	cmu      sync.RWMutex
	contexts map[string]Context

	emu      sync.Mutex
	nextRuns map[string]time.Time

	smu     sync.RWMutex
	running bool

	period time.Duration
	log    chan Log
	errors chan error
	stop   chan struct{}
}

// Register a routine under an ID. Registration should complete before Start.
func (r *Runner) Register(id string, routine Routine) error {
	r.rmu.Lock()
	defer r.rmu.Unlock()

	if _, exists := r.registry[id]; exists {
		return ErrRoutineExists
	}
	r.registry[id] = routine
	return nil
}

// Add validates an entry's English expression and stores it in the tab. An
// empty ID is replaced with a random one.
func (r *Runner) Add(entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if _, err := englishcron.Schedule(entry.Expression); err != nil {
		return errors.Wrapf(err, "invalid schedule %q", entry.Expression)
	}
	return r.tab.Put(entry)
}

// Remove an entry from the tab. Does not cancel a running instance.
func (r *Runner) Remove(entry Entry) error {
	return r.tab.Remove(entry)
}

// Start the runner. Blocks until Stop is called or the tab fails.
func (r *Runner) Start() error {
	r.setRunning(true)
	defer r.setRunning(false)

	ticker := time.NewTicker(r.period)
	defer ticker.Stop()

	for {
		if err := r.tick(time.Now()); err != nil {
			return err
		}

		select {
		case <-r.stop:
			return nil
		case <-ticker.C:
		}
	}
}

// tick fires every entry whose next activation time has passed. Activation
// times live in the runner rather than on entries, so stateless tabs (such as
// GormTab) work without rehydrating scheduling state.
func (r *Runner) tick(now time.Time) error {
	entries, err := r.tab.All()
	if err != nil {
		return errors.Wrap(err, "loading tab")
	}

	r.emu.Lock()
	defer r.emu.Unlock()

	live := make(map[string]struct{}, len(entries))
	for _, entry := range ByTimeAsc(entries).Unique() {
		live[entry.ID] = struct{}{}

		next, known := r.nextRuns[entry.ID]
		if !known {
			next, err = entry.Next(now)
			if err != nil {
				r.report(errors.Wrapf(err, "scheduling entry %s", entry.ID))
				continue
			}
			r.nextRuns[entry.ID] = next
			continue
		}

		if next.After(now) {
			continue
		}

		r.rmu.RLock()
		routine, ok := r.registry[entry.Routine]
		r.rmu.RUnlock()
		if !ok {
			r.report(errors.Wrapf(ErrRoutineNotExists, "entry %s", entry.ID))
			continue
		}

		entry.lastRun = now
		entry.nextRun = entry.MustNext(now)
		r.nextRuns[entry.ID] = entry.nextRun
		go r.runRoutine(routine, entry, now)
	}

	// Forget activation times of removed entries.
	for id := range r.nextRuns {
		if _, ok := live[id]; !ok {
			delete(r.nextRuns, id)
		}
	}
	return nil
}

// Stop the runner. Running routines are not cancelled.
func (r *Runner) Stop() {
	select {
	case r.stop <- struct{}{}:
	default:
	}
}

// StopAll stops the runner and all running routines.
func (r *Runner) StopAll() {
	r.Stop()
	r.CancelAll()
}

// CancelAll cancels all running routines.
func (r *Runner) CancelAll() {
	r.cmu.RLock()
	defer r.cmu.RUnlock()

	for _, ctx := range r.contexts {
		ctx.Cancel()
	}
}

// Cancel a specific entry while running. If it is not running, Cancel is a
// noop.
func (r *Runner) Cancel(id string) {
	r.cmu.RLock()
	defer r.cmu.RUnlock()

	if ctx, exists := r.contexts[id]; exists {
		ctx.Cancel()
	}
}

// IsRunning returns true if the runner loop is active.
func (r *Runner) IsRunning() bool {
	r.smu.RLock()
	defer r.smu.RUnlock()

	return r.running
}

// Log returns the log channel, if one was configured.
func (r *Runner) Log() chan Log {
	return r.log
}

// Errors returns the error channel.
func (r *Runner) Errors() chan error {
	return r.errors
}

func (r *Runner) setRunning(v bool) {
	r.smu.Lock()
	defer r.smu.Unlock()

	r.running = v
}

func (r *Runner) report(err error) {
	select {
	case r.errors <- err:
	default:
	}
}

func (r *Runner) runRoutine(routine Routine, entry *Entry, started time.Time) {
	switch entry.Policy {
	case SingleInstanceOnly:
		if ctx := r.context(entry.ID); ctx != nil {
			ctx.Cancel()
			for ctx.Running() {
				runtime.Gosched()
			}
		}
	case CancelRunning:
		if ctx := r.context(entry.ID); ctx != nil {
			ctx.Cancel()
		}
	case SkipIfRunning:
		if ctx := r.context(entry.ID); ctx != nil && ctx.Running() {
			return
		}
	}

	ctx := newContext(context.Background(), *entry)
	r.cmu.Lock()
	r.contexts[entry.ID] = ctx
	r.cmu.Unlock()

	record := newLog(*entry, started)

	err := backoff.Retry(
		func() error {
			ctx.Start()
			err := routine(ctx, entry.Args)
			ctx.Cancel()

			switch {
			case err == nil:
				return nil
			case errors.Is(err, ErrRepeatable):
				return err
			case errors.Is(err, ErrRepeatNextRun):
				return backoff.Permanent(err)
			case errors.Is(err, ErrPermanentFailure):
				if tabErr := r.tab.Remove(*entry); tabErr != nil {
					r.report(tabErr)
				}
				return backoff.Permanent(err)
			case errors.Is(err, ErrRunnerFailure):
				r.Stop()
				return backoff.Permanent(err)
			}
			return backoff.Permanent(err)
		}, backoff.NewExponentialBackOff())

	record.Ended = time.Now()
	record.Err = err

	if r.log != nil {
		select {
		case r.log <- record:
		default:
		}
	}
	if err != nil {
		r.report(err)
	}
}

func (r *Runner) context(id string) Context {
	r.cmu.RLock()
	defer r.cmu.RUnlock()

	return r.contexts[id]
}
