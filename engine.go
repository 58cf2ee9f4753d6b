package validkit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dmitrymomot/validkit/pkg/cache"
	"github.com/dmitrymomot/validkit/pkg/debounce"
)

// CheckFunc performs the actual validation of a value, typically against a
// remote system. It returns "" for a valid value and a user-facing message
// for an invalid one.
//
// A non-nil error marks a fault: the engine reports the invalid state using
// the error's text, or the engine's fallback message when the text is
// unusable. Errors matching context.Canceled or context.DeadlineExceeded are
// faults like any other unless the attempt was superseded or the caller's
// context ended, in which case the outcome is discarded silently.
//
// The context passed to the check is cancelled when a newer attempt
// supersedes this one or when Reset is called. Cancellation is cooperative:
// the engine never terminates a running check, it only discards its outcome.
type CheckFunc func(ctx context.Context, value string) (message string, err error)

// errCheckPanic marks a recovered panic whose value carried no usable text.
var errCheckPanic = errors.New("check function panicked")

// Engine validates field values asynchronously, one value at a time. It
// coalesces bursts of candidate values, cancels superseded attempts, caches
// verdicts, and exposes the resulting state through getters and Watch.
//
// An Engine is safe for concurrent use. State is private to the instance;
// two engines never share verdicts or in-flight work.
type Engine struct {
	id       uuid.UUID
	check    CheckFunc
	debounce *debounce.Debouncer
	cache    *cache.LRU[string, string] // nil when caching is disabled
	log      *slog.Logger

	minLength     int
	validateEmpty bool
	fallback      string
	watchBuffer   int

	mu      sync.Mutex
	status  Status
	message string
	last    string
	hasLast bool
	// attempt identifies the newest accepted attempt. It is also bumped on
	// skip, scheduling, and Reset, so outcomes of older attempts can never
	// commit no matter when they settle, and a scheduled attempt can only
	// start while its claim is still the newest.
	attempt      uint64
	cancel       context.CancelFunc
	watchers     map[*watcher]struct{}
	lastChange   StateChange
	hasPublished bool
}

// New creates an Engine around the given check function. It panics when
// check is nil.
//
// Without options the engine validates immediately on ValidateDebounced (no
// quiet period), skips empty values, and keeps no cache.
func New(check CheckFunc, opts ...Option) *Engine {
	if check == nil {
		panic("validkit: check function must not be nil")
	}

	s := settings{
		fallback:    DefaultFallbackMessage,
		watchBuffer: defaultWatchBuffer,
	}
	for _, opt := range opts {
		opt(&s)
	}

	logger := s.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	e := &Engine{
		id:            uuid.New(),
		check:         check,
		debounce:      debounce.New(s.debounce),
		minLength:     s.minLength,
		validateEmpty: s.validateEmpty,
		fallback:      s.fallback,
		watchBuffer:   max(s.watchBuffer, 1),
		status:        StatusIdle,
	}
	e.log = logger.With(slog.String("engine_id", e.id.String()))

	if s.cacheEnabled {
		e.cache = cache.New[string, string](s.cacheCapacity)
	}

	return e
}

// Validate runs the check for value and returns the resolved message: "" for
// a valid, skipped, or superseded value, the user-facing text otherwise. It
// never returns an error and never propagates a panic from the check.
//
// Calling Validate cancels the previous attempt's context and discards any
// debounced attempt still waiting, even when this call itself ends up
// skipped or answered from the cache. When the caller's ctx ends before the
// check does, the attempt is abandoned: Validate returns "" and the engine
// stays pending until the next attempt or Reset.
func (e *Engine) Validate(ctx context.Context, value string) string {
	return e.validate(ctx, value, 0)
}

// validate resolves one attempt. A zero claim starts a fresh attempt that
// supersedes scheduled and in-flight work. A non-zero claim resumes the
// attempt reserved by ValidateDebounced; it backs off when anything newer
// took over between the timer firing and this call reaching the lock, so a
// superseded schedule can never re-enter as a fresh attempt.
func (e *Engine) validate(ctx context.Context, value string, claim uint64) string {
	e.mu.Lock()

	if claim == 0 {
		e.debounce.Stop()
		e.cancelAttemptLocked()
	} else if claim != e.attempt {
		e.log.Debug("scheduled attempt discarded", slog.Uint64("attempt", claim))
		e.mu.Unlock()
		return ""
	}

	if reason, skipped := e.skipReason(value); skipped {
		e.attempt++
		e.setStateLocked(StatusIdle, "", value)
		e.log.DebugContext(ctx, "value skipped", slog.String("reason", reason), slog.Int("value_len", len(value)))
		e.mu.Unlock()
		return ""
	}

	id := claim
	if id == 0 {
		e.attempt++
		id = e.attempt
	}
	e.last, e.hasLast = value, true
	e.setStateLocked(StatusPending, "", value)
	e.log.DebugContext(ctx, "attempt accepted", slog.Uint64("attempt", id), slog.Int("value_len", len(value)))

	if e.cache != nil {
		if msg, ok := e.cache.Get(value); ok {
			e.setVerdictLocked(msg, value)
			e.log.DebugContext(ctx, "verdict served from cache", slog.Uint64("attempt", id))
			e.mu.Unlock()
			return msg
		}
	}

	runCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.mu.Unlock()

	msg, err := e.runCheck(runCtx, value)

	e.mu.Lock()
	defer e.mu.Unlock()

	if id != e.attempt {
		// A newer attempt, skip, or Reset took over while the check ran.
		e.log.Debug("stale attempt discarded", slog.Uint64("attempt", id))
		return ""
	}
	e.cancelAttemptLocked()

	if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) && ctx.Err() != nil {
		// Only the caller's own context ending is an abandonment. A context
		// error with a live caller came from inside the check and falls
		// through as a fault; engine-initiated cancellation never reaches
		// here because it always pairs with an attempt bump.
		e.log.Debug("attempt abandoned", slog.Uint64("attempt", id))
		return ""
	}

	if err != nil {
		text := err.Error()
		if strings.TrimSpace(text) == "" || errors.Is(err, errCheckPanic) {
			text = e.fallback
		}
		e.setVerdictLocked(text, value)
		e.log.DebugContext(ctx, "check fault", slog.Uint64("attempt", id), slog.String("error", err.Error()))
		return text
	}

	if e.cache != nil {
		e.cache.Put(value, msg)
	}
	e.setVerdictLocked(msg, value)
	return msg
}

// ValidateDebounced schedules a validation of value after the configured
// quiet period and returns immediately. The engine turns pending right away;
// the check runs only if no newer attempt arrives before the period elapses.
// Out of any burst of calls, only the newest value is validated.
func (e *Engine) ValidateDebounced(ctx context.Context, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cancelAttemptLocked()
	e.attempt++
	claim := e.attempt
	e.setStateLocked(StatusPending, "", value)
	e.log.DebugContext(ctx, "attempt scheduled", slog.Uint64("attempt", claim), slog.Duration("debounce", e.debounce.Wait()))

	e.debounce.Schedule(func() {
		e.validate(ctx, value, claim)
	})
}

// Reset cancels any in-flight or scheduled attempt and returns the engine to
// idle with no message and no last validated value. The verdict cache is not
// touched; use ClearCache for that.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.debounce.Stop()
	e.cancelAttemptLocked()
	e.attempt++
	e.last, e.hasLast = "", false
	e.setStateLocked(StatusIdle, "", "")
	e.log.Debug("engine reset")
}

// ClearCache drops every cached verdict. It is a no-op when caching is
// disabled and never changes the engine's state.
func (e *Engine) ClearCache() {
	if e.cache != nil {
		e.cache.Clear()
	}
}

// CacheSize returns the number of cached verdicts, 0 when caching is
// disabled.
func (e *Engine) CacheSize() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.Len()
}

// Status returns the engine's current validation state.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Message returns the current user-facing invalid message, "" when the
// engine is not in the invalid state.
func (e *Engine) Message() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.message
}

// Valid reports whether the most recent attempt passed.
func (e *Engine) Valid() bool {
	return e.Status() == StatusValid
}

// Invalid reports whether the most recent attempt failed.
func (e *Engine) Invalid() bool {
	return e.Status() == StatusInvalid
}

// Pending reports whether an attempt is scheduled or in flight.
func (e *Engine) Pending() bool {
	return e.Status() == StatusPending
}

// Idle reports whether no attempt has been accepted since construction, the
// last candidate was skipped, or the engine was reset.
func (e *Engine) Idle() bool {
	return e.Status() == StatusIdle
}

// LastValidatedValue returns the most recent value accepted for validation
// and whether one exists. Skipped candidates and attempts still waiting out
// the debounce period do not count.
func (e *Engine) LastValidatedValue() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last, e.hasLast
}

// skipReason reports whether value must be skipped under the engine's rules.
func (e *Engine) skipReason(value string) (string, bool) {
	if value == "" && !e.validateEmpty {
		return "empty value", true
	}
	if e.minLength > 0 && utf8.RuneCountInString(value) < e.minLength {
		return "below min length", true
	}
	return "", false
}

// runCheck invokes the check function, converting panics into faults. A
// panic with an error value keeps that error; anything else maps to
// errCheckPanic and ends up as the fallback message.
func (e *Engine) runCheck(ctx context.Context, value string) (msg string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rErr, ok := r.(error); ok {
				err = rErr
			} else {
				err = errCheckPanic
			}
			msg = ""
			e.log.Error("check function panicked", slog.Any("panic", r))
		}
	}()

	return e.check(ctx, value)
}

// cancelAttemptLocked cancels the in-flight attempt's context, if any.
// Must be called with e.mu held.
func (e *Engine) cancelAttemptLocked() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

// setVerdictLocked commits a resolved verdict: "" turns the engine valid,
// anything else invalid with that message. Must be called with e.mu held.
func (e *Engine) setVerdictLocked(msg, value string) {
	if msg == "" {
		e.setStateLocked(StatusValid, "", value)
		return
	}
	e.setStateLocked(StatusInvalid, msg, value)
}

// setStateLocked updates status and message and publishes the change to
// watchers. Consecutive identical changes are published once. Must be called
// with e.mu held.
func (e *Engine) setStateLocked(status Status, msg, value string) {
	e.status = status
	e.message = msg

	change := StateChange{Status: status, Message: msg, Value: value}
	if e.hasPublished && change == e.lastChange {
		return
	}
	e.lastChange = change
	e.hasPublished = true
	e.publishLocked(change)
}
