// Package validkit runs expensive field validations asynchronously and
// keeps exactly one answer live per field: the one for the newest value.
//
// It exists for checks that leave the process, such as "is this username
// taken", where typing produces a burst of candidate values, answers arrive
// out of order, and only the latest value matters. Cheap structural rules
// (length, format, required) belong in a synchronous validator; validkit
// picks up where those stop.
//
// Key Features:
//
//   - Debounced validation that coalesces a burst of values into one check
//   - Cooperative cancellation of superseded attempts via context.Context
//   - Strictly last-value-wins commits, regardless of completion order
//   - Optional LRU verdict cache so repeated values skip the backend
//   - Skip rules for empty and too-short values
//   - Observable state via getters and a Watch channel
//   - Ready-made existence checkers for Postgres, Redis, MongoDB, and HTTP
//     in pkg/checker
//
// Basic Usage:
//
//	engine := validkit.New(func(ctx context.Context, value string) (string, error) {
//		taken, err := store.UsernameTaken(ctx, value)
//		if err != nil {
//			return "", err
//		}
//		if taken {
//			return "This username is already taken.", nil
//		}
//		return "", nil
//	}, validkit.WithMinLength(3), validkit.WithCache(256))
//
//	if msg := engine.Validate(ctx, "alice"); msg != "" {
//		// show msg next to the field
//	}
//
// Debounced Usage:
//
// For keystroke-driven input, schedule instead of calling directly. The
// engine turns pending immediately and checks only the value that survives
// the quiet period:
//
//	engine := validkit.NewUsernameCheck(existsFn, validkit.WithDebounce(300*time.Millisecond))
//
//	for _, v := range []string{"a", "al", "ali", "alice"} {
//		engine.ValidateDebounced(ctx, v)
//	}
//	// only "alice" reaches the backend
//
// State Observation:
//
// Getters return a consistent snapshot at any time. Watch streams every
// committed transition until its context ends:
//
//	changes := engine.Watch(ctx)
//	go func() {
//		for c := range changes {
//			render(c.Status, c.Message)
//		}
//	}()
//
// Each engine owns its state, cache, and in-flight attempt. Nothing is
// shared between instances and there are no package-level registries, so
// two fields on the same form get two engines.
//
// Error Semantics:
//
// A check reports an invalid value through its message, not through an
// error. Returned errors mark faults and surface as the invalid state with
// the error's text, or with the engine's fallback message when the text is
// unusable. Panics inside a check are recovered and treated the same way.
// A context cancellation error is discarded silently only when a newer
// attempt already owns the state or the caller abandoned the attempt (the
// engine then stays pending until the next attempt or Reset); a context
// error produced inside the check, such as an expired internal timeout, is
// a fault like any other.
package validkit
