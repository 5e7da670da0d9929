package runner

import (
	"context"
	"sync"
)

// Context is used to control running routines.
type Context interface {
	context.Context
	Start()
	Running() bool
	Cancel()
	Entry() Entry
}

type runCtx struct {
	mu sync.RWMutex
	context.Context
	entry   Entry
	cancel  context.CancelFunc
	running bool
}

func (c *runCtx) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.running = true
}

func (c *runCtx) Running() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.running
}

func (c *runCtx) Cancel() {
	c.mu.Lock()
	c.running = false
	c.mu.Unlock()

	c.cancel()
}

func (c *runCtx) Entry() Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.entry
}

// newContext derives a cancellable routine context from a parent context.
func newContext(parent context.Context, entry Entry) Context {
	ctx, cancel := context.WithCancel(parent)

	return &runCtx{
		Context: ctx,
		cancel:  cancel,
		entry:   entry,
	}
}
