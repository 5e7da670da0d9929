package runner

import "time"

// Option is a constructor function
type Option func(*Runner) error

// WithTab sets a storage backend for the runner
func WithTab(tab Tab) Option {
	return func(r *Runner) error {
		r.tab = tab
		return nil
	}
}

// WithLog sets a log channel
func WithLog(log chan Log) Option {
	return func(r *Runner) error {
		r.log = log
		return nil
	}
}

// WithErrors sets an error channel
func WithErrors(errs chan error) Option {
	return func(r *Runner) error {
		r.errors = errs
		return nil
	}
}

// WithPeriod sets the period between runner wakenings.
//
// Period defaults to DefaultPeriod.
func WithPeriod(period time.Duration) Option {
	return func(r *Runner) error {
		r.period = period
		return nil
	}
}
