package transport

import (
	"net/http"

	"github.com/google/uuid"
)

// Header carrying the request identity on outgoing calls.
const RequestIDHeader = "X-Request-ID"

// RequestID returns middleware that stamps each outgoing request with a
// fresh identifier so client and service logs correlate. Requests that
// already carry one pass through untouched.
func RequestID() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return Func(func(r *http.Request) (*http.Response, error) {
			if r.Header.Get(RequestIDHeader) == "" {
				r = r.Clone(r.Context())
				r.Header.Set(RequestIDHeader, uuid.NewString())
			}

			return next.RoundTrip(r)
		})
	}
}
