package transport

import (
	"log/slog"
	"net/http"
	"time"
)

// Logger returns middleware that logs each request's method, URL,
// request identity, outcome, and duration.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return Func(func(r *http.Request) (*http.Response, error) {
			start := time.Now()

			resp, err := next.RoundTrip(r)
			if err != nil {
				logger.Error(
					"request failed",
					"method", r.Method,
					"url", r.URL.String(),
					"request_id", r.Header.Get(RequestIDHeader),
					"duration", time.Since(start),
					"error", err,
				)

				return nil, err
			}

			logger.Info(
				"request",
				"method", r.Method,
				"url", r.URL.String(),
				"request_id", r.Header.Get(RequestIDHeader),
				"status", resp.StatusCode,
				"duration", time.Since(start),
			)

			return resp, nil
		})
	}
}
