package checker_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/checker"
)

func TestHTTP(t *testing.T) {
	t.Parallel()

	taken := map[string]bool{
		"admin":       true,
		"with space&": true,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("fail") == "yes" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if taken[r.URL.Query().Get("value")] {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	ctx := context.Background()

	t.Run("200 means taken", func(t *testing.T) {
		t.Parallel()

		exists := checker.HTTP(srv.Client(), srv.URL+"/check", "value")

		got, err := exists(ctx, "admin")
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("404 means free", func(t *testing.T) {
		t.Parallel()

		exists := checker.HTTP(srv.Client(), srv.URL+"/check", "value")

		got, err := exists(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("other statuses are faults", func(t *testing.T) {
		t.Parallel()

		exists := checker.HTTP(srv.Client(), srv.URL+"/check?fail=yes", "value")

		_, err := exists(ctx, "admin")
		require.Error(t, err)
		assert.ErrorIs(t, err, checker.ErrUnexpectedStatus)
	})

	t.Run("values are query escaped", func(t *testing.T) {
		t.Parallel()

		exists := checker.HTTP(srv.Client(), srv.URL+"/check", "value")

		got, err := exists(ctx, "with space&")
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("endpoint query parameters survive", func(t *testing.T) {
		t.Parallel()

		echo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("source") == "signup" && r.URL.Query().Get("v") == "alice" {
				w.WriteHeader(http.StatusOK)
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer echo.Close()

		exists := checker.HTTP(echo.Client(), echo.URL+"/check?source=signup", "v")

		got, err := exists(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("nil client uses the default", func(t *testing.T) {
		t.Parallel()

		exists := checker.HTTP(nil, srv.URL+"/check", "value")

		got, err := exists(ctx, "admin")
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("cancelled context is a request fault", func(t *testing.T) {
		t.Parallel()

		exists := checker.HTTP(srv.Client(), srv.URL+"/check", "value")

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := exists(cancelled, "admin")
		require.Error(t, err)
		assert.ErrorIs(t, err, checker.ErrRequestFailed)
	})

	t.Run("panics on bad construction", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { checker.HTTP(nil, "/relative", "value") })
		assert.Panics(t, func() { checker.HTTP(nil, "://bad", "value") })
		assert.Panics(t, func() { checker.HTTP(nil, srv.URL, "") })
	})
}
