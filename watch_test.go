package validkit_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit"
)

func recvChange(t *testing.T, ch <-chan validkit.StateChange) validkit.StateChange {
	t.Helper()

	select {
	case c, ok := <-ch:
		require.True(t, ok, "watch channel closed early")
		return c
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a state change")
		return validkit.StateChange{}
	}
}

func assertNoChange(t *testing.T, ch <-chan validkit.StateChange) {
	t.Helper()

	select {
	case c := <-ch:
		t.Fatalf("unexpected state change: %+v", c)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestEngine_Watch(t *testing.T) {
	t.Parallel()

	t.Run("delivers transitions in commit order", func(t *testing.T) {
		t.Parallel()

		eng := validkit.New(countingCheck(&atomic.Int32{}, map[string]string{
			"admin": "Taken.",
		}))

		watchCtx, cancel := context.WithCancel(context.Background())
		defer cancel()
		changes := eng.Watch(watchCtx)

		ctx := context.Background()
		eng.Validate(ctx, "admin")
		eng.Validate(ctx, "alice")
		eng.Reset()

		assert.Equal(t, validkit.StateChange{Status: validkit.StatusPending, Value: "admin"}, recvChange(t, changes))
		assert.Equal(t, validkit.StateChange{Status: validkit.StatusInvalid, Message: "Taken.", Value: "admin"}, recvChange(t, changes))
		assert.Equal(t, validkit.StateChange{Status: validkit.StatusPending, Value: "alice"}, recvChange(t, changes))
		assert.Equal(t, validkit.StateChange{Status: validkit.StatusValid, Value: "alice"}, recvChange(t, changes))
		assert.Equal(t, validkit.StateChange{Status: validkit.StatusIdle}, recvChange(t, changes))
	})

	t.Run("debounced cycle publishes one pending", func(t *testing.T) {
		t.Parallel()

		eng := validkit.New(countingCheck(&atomic.Int32{}, nil), validkit.WithDebounce(30*time.Millisecond))

		watchCtx, cancel := context.WithCancel(context.Background())
		defer cancel()
		changes := eng.Watch(watchCtx)

		eng.ValidateDebounced(context.Background(), "alice")

		assert.Equal(t, validkit.StateChange{Status: validkit.StatusPending, Value: "alice"}, recvChange(t, changes))
		assert.Equal(t, validkit.StateChange{Status: validkit.StatusValid, Value: "alice"}, recvChange(t, changes))
		assertNoChange(t, changes)
	})

	t.Run("subscription ends with its context", func(t *testing.T) {
		t.Parallel()

		eng := validkit.New(countingCheck(&atomic.Int32{}, nil))

		watchCtx, cancel := context.WithCancel(context.Background())
		changes := eng.Watch(watchCtx)

		cancel()

		require.Eventually(t, func() bool {
			select {
			case _, ok := <-changes:
				return !ok
			default:
				return false
			}
		}, time.Second, 5*time.Millisecond, "channel must close after the context ends")

		// Transitions after the subscription ended are not delivered anywhere.
		eng.Validate(context.Background(), "alice")
		assert.True(t, eng.Valid())
	})

	t.Run("slow subscriber misses transitions without blocking", func(t *testing.T) {
		t.Parallel()

		eng := validkit.New(countingCheck(&atomic.Int32{}, nil), validkit.WithWatchBuffer(1))

		watchCtx, cancel := context.WithCancel(context.Background())
		defer cancel()
		changes := eng.Watch(watchCtx)

		done := make(chan struct{})
		go func() {
			defer close(done)
			// Nobody reads while these run; only the first fits the buffer.
			eng.Validate(context.Background(), "alice")
			eng.Validate(context.Background(), "bob")
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("a full watch buffer must not block the engine")
		}

		first := recvChange(t, changes)
		assert.Equal(t, validkit.StatusPending, first.Status)
		assert.Equal(t, "alice", first.Value)
		assert.True(t, eng.Valid())
	})

	t.Run("multiple watchers receive independently", func(t *testing.T) {
		t.Parallel()

		eng := validkit.New(countingCheck(&atomic.Int32{}, nil))

		watchCtx, cancel := context.WithCancel(context.Background())
		defer cancel()
		a := eng.Watch(watchCtx)
		b := eng.Watch(watchCtx)

		eng.Validate(context.Background(), "alice")

		for _, ch := range []<-chan validkit.StateChange{a, b} {
			assert.Equal(t, validkit.StatusPending, recvChange(t, ch).Status)
			assert.Equal(t, validkit.StatusValid, recvChange(t, ch).Status)
		}
	})
}
