package runner

var std, _ = New()

// Configure the global runner.
func Configure(opts ...Option) error {
	for _, opt := range opts {
		err := opt(std)
		if err != nil {
			return err
		}
	}
	return nil
}

// Register a routine with the global runner.
func Register(id string, routine Routine) error {
	return std.Register(id, routine)
}

// Start the global runner.
func Start() error {
	return std.Start()
}

// Add a new entry to the global crontab.
func Add(entry Entry) error {
	return std.Add(entry)
}

// Stop the global runner.
func Stop() {
	std.Stop()
}

// StopAll stops the global runner and all running routines.
func StopAll() {
	std.StopAll()
}

// CancelAll cancels all running routines.
func CancelAll() {
	std.CancelAll()
}

// Cancel a specific entry in the global runner while running. If it is not
// running, Cancel is a noop.
func Cancel(id string) {
	std.Cancel(id)
}

// Remove an entry from the global crontab. Does not cancel a running
// instance.
func Remove(entry Entry) error {
	return std.Remove(entry)
}

// IsRunning returns true if the global runner is running.
func IsRunning() bool {
	return std.IsRunning()
}

// Errors returns the global runner error channel.
func Errors() chan error {
	return std.Errors()
}
