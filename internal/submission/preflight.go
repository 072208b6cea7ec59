package submission

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Preflight opens the file with pdfcpu and returns its page count,
// catching corrupt or mislabeled content before an upload is attempted.
// It runs after Validate and only when enabled in configuration; a
// failure surfaces as a local validation notice, never a network call.
func Preflight(file File) (int, error) {
	count, err := api.PageCount(bytes.NewReader(file.Data), nil)
	if err != nil {
		return 0, fmt.Errorf("not a readable PDF: %w", err)
	}
	return count, nil
}
