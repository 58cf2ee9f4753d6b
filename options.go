package validkit

import (
	"log/slog"
	"time"
)

// Default user-facing messages. All of them can be replaced per engine with
// WithFallbackMessage or WithTakenMessage.
const (
	// DefaultFallbackMessage is shown when a check fails in a way that
	// carries no usable text, such as a panic with a non-error value.
	DefaultFallbackMessage = "Validation failed. Please try again."

	// DefaultEmailTakenMessage is the preset message of NewEmailCheck.
	DefaultEmailTakenMessage = "This email is already registered."

	// DefaultUsernameTakenMessage is the preset message of NewUsernameCheck.
	DefaultUsernameTakenMessage = "This username is already taken."

	// DefaultTakenMessage is the preset message of NewUniqueCheck.
	DefaultTakenMessage = "This value is already in use."
)

const defaultWatchBuffer = 8

type settings struct {
	debounce      time.Duration
	cacheEnabled  bool
	cacheCapacity int
	minLength     int
	validateEmpty bool
	fallback      string
	takenMessage  string
	logger        *slog.Logger
	watchBuffer   int
}

// Option configures an Engine created by New or one of the check factories.
type Option func(*settings)

// WithDebounce sets the quiet period used by ValidateDebounced. Without it
// debounced attempts fire on the next timer tick.
func WithDebounce(d time.Duration) Option {
	return func(s *settings) {
		s.debounce = d
	}
}

// WithCache enables verdict caching. A positive capacity bounds the cache to
// that many entries with LRU eviction; zero or negative means unbounded.
func WithCache(capacity int) Option {
	return func(s *settings) {
		s.cacheEnabled = true
		s.cacheCapacity = capacity
	}
}

// WithoutCache disables verdict caching. Useful with factories, which enable
// an unbounded cache by default.
func WithoutCache() Option {
	return func(s *settings) {
		s.cacheEnabled = false
	}
}

// WithMinLength skips candidate values shorter than n runes. Skipped values
// return the engine to idle without invoking the check.
func WithMinLength(n int) Option {
	return func(s *settings) {
		s.minLength = n
	}
}

// WithValidateEmpty makes the engine validate empty values instead of
// skipping them, for required fields where emptiness itself is a verdict.
func WithValidateEmpty() Option {
	return func(s *settings) {
		s.validateEmpty = true
	}
}

// WithFallbackMessage replaces DefaultFallbackMessage. An empty msg is
// ignored.
func WithFallbackMessage(msg string) Option {
	return func(s *settings) {
		if msg != "" {
			s.fallback = msg
		}
	}
}

// WithTakenMessage replaces the preset taken-message of a check factory.
// It has no effect on engines built directly with New, where the check
// function owns its messages.
func WithTakenMessage(msg string) Option {
	return func(s *settings) {
		s.takenMessage = msg
	}
}

// WithLogger sets the logger for debug-level engine events. A nil logger is
// ignored; the default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithWatchBuffer sets the channel buffer of subscriptions created by Watch.
// Values below 1 are raised to 1.
func WithWatchBuffer(n int) Option {
	return func(s *settings) {
		s.watchBuffer = n
	}
}
