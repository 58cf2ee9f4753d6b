package validkit

import (
	"context"
	"sync"
)

// StateChange is one committed transition of an engine, as delivered to
// Watch subscribers.
type StateChange struct {
	// Status is the state the engine moved to.
	Status Status

	// Message is the user-facing invalid text, "" for any other status.
	Message string

	// Value is the candidate value that triggered the transition, "" for
	// Reset.
	Value string
}

type watcher struct {
	ch     chan StateChange
	closed bool
	mu     sync.RWMutex
}

func (w *watcher) send(c StateChange) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		return
	}

	select {
	case w.ch <- c:
	default:
		// Full buffer: this watcher misses the transition rather than
		// blocking the engine.
	}
}

func (w *watcher) close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.closed {
		w.closed = true
		close(w.ch)
	}
}

// Watch returns a channel delivering every state transition the engine
// commits from now on; consecutive identical transitions are delivered once.
// The subscription lives until ctx is cancelled, at which point the channel
// is closed. A context that can never be cancelled keeps the subscription
// for the engine's lifetime.
//
// Delivery is non-blocking: transitions that arrive while the subscriber's
// buffer is full are dropped for that subscriber. Size the buffer with
// WithWatchBuffer when bursts matter.
func (e *Engine) Watch(ctx context.Context) <-chan StateChange {
	w := &watcher{ch: make(chan StateChange, e.watchBuffer)}

	e.mu.Lock()
	if e.watchers == nil {
		e.watchers = make(map[*watcher]struct{})
	}
	e.watchers[w] = struct{}{}
	e.mu.Unlock()

	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			e.mu.Lock()
			delete(e.watchers, w)
			e.mu.Unlock()
			w.close()
		}()
	}

	return w.ch
}

// publishLocked delivers c to every watcher without blocking. Must be called
// with e.mu held.
func (e *Engine) publishLocked(c StateChange) {
	for w := range e.watchers {
		w.send(c)
	}
}
