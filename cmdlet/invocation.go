package cmdlet

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrStopped is the cancellation cause of a stopped invocation.
var ErrStopped = errors.New("invocation stopped")

// Invocation owns the cancellation signal of one remote call. The signal is
// triggered at most once, and never after the call completed.
type Invocation struct {
	ID      string
	Command string
	Started time.Time

	ctx    context.Context
	cancel context.CancelCauseFunc

	mu        sync.Mutex
	stopped   bool
	completed bool
}

func newInvocation(ctx context.Context, command string, timeout time.Duration) (*Invocation, context.CancelFunc) {
	var release context.CancelFunc = func() {}
	if timeout > 0 {
		ctx, release = context.WithTimeout(ctx, timeout)
	}
	ctx, cancel := context.WithCancelCause(ctx)
	inv := &Invocation{
		ID:      uuid.NewString(),
		Command: command,
		Started: time.Now(),
		ctx:     ctx,
		cancel:  cancel,
	}
	return inv, release
}

// Context is the context the remote call observes.
func (i *Invocation) Context() context.Context { return i.ctx }

// Stop triggers the cancellation signal. It reports whether this call
// triggered it; stopping twice or after completion does nothing.
func (i *Invocation) Stop() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.stopped || i.completed {
		return false
	}
	i.stopped = true
	i.cancel(ErrStopped)
	return true
}

// Stopped reports whether the signal was triggered.
func (i *Invocation) Stopped() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.stopped
}

// complete marks the call finished and releases the context.
func (i *Invocation) complete() {
	i.mu.Lock()
	i.completed = true
	stopped := i.stopped
	i.mu.Unlock()
	if !stopped {
		i.cancel(nil)
	}
}

// Tracker holds the in-flight invocations so an interrupt can stop them.
type Tracker struct {
	mu       sync.Mutex
	inflight map[string]*Invocation
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{inflight: make(map[string]*Invocation)}
}

func (t *Tracker) add(i *Invocation) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inflight[i.ID] = i
}

func (t *Tracker) remove(i *Invocation) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.inflight, i.ID)
}

// StopAll stops every in-flight invocation and returns how many were stopped.
func (t *Tracker) StopAll() int {
	t.mu.Lock()
	pending := make([]*Invocation, 0, len(t.inflight))
	for _, i := range t.inflight {
		pending = append(pending, i)
	}
	t.mu.Unlock()

	n := 0
	for _, i := range pending {
		if i.Stop() {
			n++
		}
	}
	return n
}

// Len returns the number of in-flight invocations.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.inflight)
}
