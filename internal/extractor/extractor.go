// Package extractor is the client for the remote PDF data-extraction
// service. It owns the wire contract: multipart submission, response
// decoding, and the Failure outcome that classification consumes.
package extractor

import (
	"context"
	"encoding/json"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/submission"
)

// System is the contract the rest of the client programs against.
// The production implementation is Client; tests substitute their own.
type System interface {
	// Extract submits one document with its label and schema and returns
	// the decoded result. All failure modes return *Failure.
	Extract(ctx context.Context, req submission.Request) (*Result, error)

	// Health probes the service liveness endpoint.
	Health(ctx context.Context) (*Health, error)

	// Stats fetches the service's raw statistics blob. The shape is
	// intentionally opaque; callers render it, they do not interpret it.
	Stats(ctx context.Context) (json.RawMessage, error)
}
