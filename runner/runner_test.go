package runner

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Register(t *testing.T) {
	runner, err := New()
	require.NoError(t, err)

	rt := func(ctx Context, args map[string]interface{}) error {
		return nil
	}

	// first time registration should not error
	err = runner.Register("RT", rt)
	assert.NoError(t, err)

	// re-registration should
	err = runner.Register("RT", rt)
	assert.Error(t, err)
}

func TestRunner_Add(t *testing.T) {
	tab := NewMemoryTab()
	runner, err := New(WithTab(tab))
	require.NoError(t, err)

	err = runner.Add(Entry{Expression: "every 15 seconds"})
	assert.NoError(t, err)

	entries, err := tab.All()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].ID)
}

func TestRunner_AddInvalidExpression(t *testing.T) {
	runner, err := New()
	require.NoError(t, err)

	err = runner.Add(Entry{Expression: "gibberish"})
	assert.Error(t, err)
}

func TestRunner_Stop(t *testing.T) {
	runner, err := New()
	require.NoError(t, err)

	go func() {
		err = runner.Start()
		require.NoError(t, err)
	}()
	time.Sleep(100 * time.Millisecond)

	assert.True(t, runner.IsRunning())
	assert.NotPanics(t, func() { runner.Stop() })
	time.Sleep(100 * time.Millisecond)
	assert.False(t, runner.IsRunning())
}

func TestRunner_StopAll(t *testing.T) {
	runner, err := New()
	require.NoError(t, err)

	go func() {
		err = runner.Start()
		require.NoError(t, err)
	}()
	time.Sleep(100 * time.Millisecond)

	assert.True(t, runner.IsRunning())
	assert.NotPanics(t, func() { runner.StopAll() })
	time.Sleep(100 * time.Millisecond)
	assert.False(t, runner.IsRunning())
}

func TestRunner_Remove(t *testing.T) {
	tab := NewMemoryTab()
	runner, err := New(WithTab(tab))
	require.NoError(t, err)

	err = runner.Add(Entry{ID: "ID", Expression: "every 15 seconds"})
	require.NoError(t, err)

	err = runner.Remove(Entry{ID: "ID"})
	assert.NoError(t, err)

	entries, err := tab.All()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunner_Cancel(t *testing.T) {
	if testing.Short() {
		t.Skip("slow scheduling test")
	}

	runner, err := New(WithPeriod(100 * time.Millisecond))
	require.NoError(t, err)

	canceled := make(chan bool)
	started := make(chan struct{})
	rt := func(ctx Context, args map[string]interface{}) error {
		// signals the job has started
		started <- struct{}{}

		for {
			select {
			case <-ctx.Done():
				canceled <- true
				return ctx.Err()
			default:
				runtime.Gosched()
			}
		}
	}

	require.NoError(t, runner.Register("RT", rt))
	require.NoError(t, runner.Add(Entry{ID: "ID", Routine: "RT", Expression: "every 1 second"}))

	go func() {
		err := runner.Start()
		require.NoError(t, err)
	}()
	defer runner.Stop()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("routine did not start")
	}

	runner.Cancel("ID")

	select {
	case <-canceled:
	case <-time.After(5 * time.Second):
		t.Fatal("routine was not canceled")
	}
}

func TestRunner_RunsDueEntry(t *testing.T) {
	if testing.Short() {
		t.Skip("slow scheduling test")
	}

	log := make(chan Log, 10)
	runner, err := New(WithPeriod(100*time.Millisecond), WithLog(log))
	require.NoError(t, err)

	ran := make(chan map[string]interface{}, 1)
	rt := func(ctx Context, args map[string]interface{}) error {
		select {
		case ran <- args:
		default:
		}
		return nil
	}

	require.NoError(t, runner.Register("RT", rt))
	require.NoError(t, runner.Add(Entry{
		ID:         "ID",
		Routine:    "RT",
		Expression: "every 1 second",
		Args:       map[string]interface{}{"name": "value"},
	}))

	go func() {
		err := runner.Start()
		require.NoError(t, err)
	}()
	defer runner.Stop()

	select {
	case args := <-ran:
		assert.Equal(t, "value", args["name"])
	case <-time.After(5 * time.Second):
		t.Fatal("routine did not run")
	}

	select {
	case record := <-log:
		assert.Equal(t, "ID", record.Entry.ID)
		assert.NoError(t, record.Err)
	case <-time.After(5 * time.Second):
		t.Fatal("no log record emitted")
	}
}

func TestRunner_UnknownRoutineReported(t *testing.T) {
	if testing.Short() {
		t.Skip("slow scheduling test")
	}

	errs := make(chan error, 10)
	runner, err := New(WithPeriod(100*time.Millisecond), WithErrors(errs))
	require.NoError(t, err)

	require.NoError(t, runner.Add(Entry{ID: "ID", Routine: "missing", Expression: "every 1 second"}))

	go func() {
		err := runner.Start()
		require.NoError(t, err)
	}()
	defer runner.Stop()

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, ErrRoutineNotExists)
	case <-time.After(5 * time.Second):
		t.Fatal("no error reported")
	}
}
