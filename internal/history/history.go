// Package history keeps a local record of settled submission attempts
// so past extractions can be reviewed without the service.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entry is one settled submission attempt.
type Entry struct {
	ID          uuid.UUID
	SubmittedAt time.Time
	Label       string
	FileName    string
	FileSize    int64
	Phase       string
	Method      string
	RequestTime float64
	Notice      string
}

// System provides access to the submission record.
type System interface {
	// Record appends one settled attempt. Zero ID and SubmittedAt
	// fields are filled in.
	Record(ctx context.Context, entry Entry) error

	// List returns the most recent attempts, newest first. A
	// non-positive limit applies the default.
	List(ctx context.Context, limit int) ([]Entry, error)

	// Clear removes every recorded attempt.
	Clear(ctx context.Context) error

	Close() error
}
