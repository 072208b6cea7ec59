// Package transport provides client-side HTTP round-tripper middleware:
// an ordered decoration stack plus the request identity and logging
// decorators installed on outgoing service calls.
package transport

import "net/http"

// Middleware decorates an http.RoundTripper.
type Middleware func(http.RoundTripper) http.RoundTripper

// System manages an ordered stack of round-tripper middleware.
type System interface {
	Use(mw Middleware)
	Apply(base http.RoundTripper) http.RoundTripper
}

type stack struct {
	mws []Middleware
}

// New creates an empty middleware System.
func New() System {
	return &stack{
		mws: []Middleware{},
	}
}

func (s *stack) Use(mw Middleware) {
	s.mws = append(s.mws, mw)
}

// Apply wraps base so the first Middleware added observes each request
// first. A nil base falls back to http.DefaultTransport.
func (s *stack) Apply(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}

	for i := len(s.mws) - 1; i >= 0; i-- {
		base = s.mws[i](base)
	}

	return base
}

// Func adapts a function to http.RoundTripper.
type Func func(*http.Request) (*http.Response, error)

func (f Func) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
