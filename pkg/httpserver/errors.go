package httpserver

import "errors"

var (
	// ErrStart wraps listener and serve failures surfaced by Run.
	ErrStart = errors.New("HTTP server failed to start")

	// ErrAlreadyRunning is reported when Run is called on a server whose
	// listener is already up. It arrives wrapped with ErrStart.
	ErrAlreadyRunning = errors.New("HTTP server is already running")

	// ErrShutdown is returned when the graceful stop does not complete,
	// typically because draining outlived the shutdown timeout.
	ErrShutdown = errors.New("HTTP server did not shut down cleanly")
)
