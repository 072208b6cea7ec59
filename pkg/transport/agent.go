package transport

import "net/http"

// Agent returns middleware that stamps outgoing requests with a
// User-Agent identifying the client build. Requests that already set
// one pass through untouched.
func Agent(agent string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return Func(func(r *http.Request) (*http.Response, error) {
			if r.Header.Get("User-Agent") == "" {
				r = r.Clone(r.Context())
				r.Header.Set("User-Agent", agent)
			}

			return next.RoundTrip(r)
		})
	}
}
