package httpserver

import (
	"context"
	"log/slog"
	"net/http"
)

// Probe verifies one dependency the server needs before it can take
// traffic. A nil error means the dependency is reachable.
type Probe func(context.Context) error

// HealthCheckHandler builds a probe endpoint. With no probes it answers
// liveness: 200 "ALIVE". With probes it answers readiness: 200 "READY" when
// every probe passes, 500 "NOT_READY" as soon as one fails. Probe errors are
// logged, never written to the client.
func HealthCheckHandler(ctx context.Context, log *slog.Logger, probes ...Probe) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, body := http.StatusOK, "ALIVE"
		if len(probes) > 0 {
			body = "READY"
			for _, probe := range probes {
				if err := probe(ctx); err != nil {
					log.ErrorContext(ctx, "Readiness probe failed", slog.Any("error", err))
					status, body = http.StatusInternalServerError, "NOT_READY"
					break
				}
			}
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}
