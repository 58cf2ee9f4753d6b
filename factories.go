package validkit

import "context"

// ExistsFunc answers whether value is already taken in some backing store.
// The pkg/checker package provides ready-made implementations for Postgres,
// Redis, MongoDB, and HTTP endpoints; any function with this shape works.
type ExistsFunc func(ctx context.Context, value string) (bool, error)

// NewEmailCheck builds an engine that flags already-registered emails. The
// preset skips values shorter than 5 runes, caches verdicts without bound,
// and reports DefaultEmailTakenMessage. Trailing options override any of
// that, including WithTakenMessage for the text and WithoutCache to disable
// caching. Panics when exists is nil.
func NewEmailCheck(exists ExistsFunc, opts ...Option) *Engine {
	return newExistsEngine(exists, DefaultEmailTakenMessage, 5, opts)
}

// NewUsernameCheck builds an engine that flags taken usernames. The preset
// skips values shorter than 3 runes, caches verdicts without bound, and
// reports DefaultUsernameTakenMessage. Panics when exists is nil.
func NewUsernameCheck(exists ExistsFunc, opts ...Option) *Engine {
	return newExistsEngine(exists, DefaultUsernameTakenMessage, 3, opts)
}

// NewUniqueCheck builds an engine that flags values already present in some
// store, with no minimum length. Verdicts are cached without bound and
// reported as DefaultTakenMessage. Panics when exists is nil.
func NewUniqueCheck(exists ExistsFunc, opts ...Option) *Engine {
	return newExistsEngine(exists, DefaultTakenMessage, 0, opts)
}

func newExistsEngine(exists ExistsFunc, defaultMsg string, minLength int, opts []Option) *Engine {
	if exists == nil {
		panic("validkit: exists function must not be nil")
	}

	taken := defaultMsg
	if msg := peekTakenMessage(opts); msg != "" {
		taken = msg
	}

	check := func(ctx context.Context, value string) (string, error) {
		found, err := exists(ctx, value)
		if err != nil {
			return "", err
		}
		if found {
			return taken, nil
		}
		return "", nil
	}

	preset := []Option{WithCache(0)}
	if minLength > 0 {
		preset = append(preset, WithMinLength(minLength))
	}

	return New(check, append(preset, opts...)...)
}

// peekTakenMessage extracts WithTakenMessage from opts before the check
// function is built; the other options apply through New as usual.
func peekTakenMessage(opts []Option) string {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return s.takenMessage
}
