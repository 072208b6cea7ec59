package extractor

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBaseURL = errors.New("invalid service base URL")
	ErrInvalidTimeout = errors.New("invalid service timeout")
)

// Failure describes a submission that produced no usable result. A
// Status of zero means the breakdown happened before an interpretable
// response was obtained: connection refused, timeout, an unreadable
// body, or a success status wrapping undecodable content. Any other
// Status carries the service's HTTP status and its detail message.
type Failure struct {
	Status int
	Detail string
}

func (f *Failure) Error() string {
	if f.Status == 0 {
		return fmt.Sprintf("extraction failed: %s", f.Detail)
	}

	return fmt.Sprintf("extraction failed: status %d: %s", f.Status, f.Detail)
}

// Transport reports whether the failure happened before any response
// could be interpreted.
func (f *Failure) Transport() bool {
	return f.Status == 0
}

// AsFailure unwraps err into a *Failure when it carries one.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}

	return nil, false
}
