package submission

import (
	"path/filepath"
	"strings"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/schema"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/pkg/formatting"
)

// Validate runs the submission gate: ordered checks that short-circuit at
// the first failure, so the user sees one actionable message at a time
// when several inputs are wrong. Pure and idempotent; runs once at submit
// time, not on every keystroke.
func Validate(req Request) schema.Outcome {
	if strings.TrimSpace(req.Label) == "" {
		return schema.Invalid("label is required")
	}

	if strings.TrimSpace(req.SchemaText) == "" {
		return schema.Invalid("extraction schema is required")
	}

	if req.File.Name == "" {
		return schema.Invalid("no file selected")
	}

	if !strings.EqualFold(filepath.Ext(req.File.Name), Extension) {
		return schema.Invalid("file must be a PDF (.pdf)")
	}

	if req.File.Size > MaxFileSize {
		return schema.Invalidf("file exceeds the %s limit", formatting.FormatBytes(MaxFileSize, 0))
	}

	if out := schema.Validate(req.SchemaText); out.Failed() {
		return schema.Invalidf("invalid schema: %s", out.Reason)
	}

	return schema.Valid()
}
