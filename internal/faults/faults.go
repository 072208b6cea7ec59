// Package faults turns failed extraction outcomes into the messages
// shown to the user. Classification is total: every status code,
// including ones the service never documents, yields a non-empty
// message, and outcomes without an interpretable response yield a
// connectivity message.
package faults

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/extractor"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/submission"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/pkg/formatting"
)

// Classify maps a failed extraction outcome to a user-facing message.
// A nil failure classifies the same as a transport failure without
// detail.
func Classify(failure *extractor.Failure) string {
	if failure == nil || failure.Transport() {
		return connectivity(failure)
	}

	switch failure.Status {
	case http.StatusBadRequest:
		return badRequest(failure.Detail)
	case http.StatusRequestEntityTooLarge:
		return fmt.Sprintf(
			"The file exceeds the %s limit accepted by the service.",
			formatting.FormatBytes(submission.MaxFileSize, 0),
		)
	case http.StatusUnsupportedMediaType:
		return "Unsupported file type. Only PDF documents are accepted."
	case http.StatusUnprocessableEntity:
		return fmt.Sprintf(
			"The service could not process the submission: %s. Check that every field is filled in correctly.",
			failure.Detail,
		)
	case http.StatusInternalServerError:
		return fmt.Sprintf(
			"The service hit an internal error: %s. Try again in a few minutes.",
			failure.Detail,
		)
	case http.StatusServiceUnavailable:
		return "The extraction service is temporarily unavailable. Try again shortly."
	default:
		return fmt.Sprintf("The request failed with status %d: %s", failure.Status, failure.Detail)
	}
}

func connectivity(failure *extractor.Failure) string {
	msg := "Could not get a readable response from the extraction service."

	if failure != nil && failure.Detail != "" {
		msg = fmt.Sprintf("%s (%s)", msg, failure.Detail)
	}

	return msg + " Check that the service is running and reachable."
}

// badRequest inspects the detail text for the two rejection causes the
// service reports with status 400. Matching is case-sensitive: the
// service spells "JSON" verbatim in its detail messages regardless of
// their language.
func badRequest(detail string) string {
	if strings.Contains(detail, "JSON") {
		return fmt.Sprintf("The service rejected the schema as malformed JSON: %s", detail)
	}

	if strings.Contains(detail, "file") {
		return fmt.Sprintf("The service could not read the file; it may be corrupted: %s", detail)
	}

	return fmt.Sprintf("The service rejected the submission as invalid: %s", detail)
}
