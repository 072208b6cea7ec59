// Package highlight colors JSON for terminal display. Colorization is
// best-effort: when it is disabled or fails, callers get their text
// back unchanged.
package highlight

import (
	"bytes"
	"encoding/json"

	"github.com/alecthomas/chroma/v2/quick"
)

const (
	lexer     = "json"
	formatter = "terminal256"
	style     = "monokai"
)

// JSON returns source with terminal syntax colors applied.
func JSON(source string, enabled bool) string {
	if !enabled {
		return source
	}

	var buf bytes.Buffer
	if err := quick.Highlight(&buf, source, lexer, formatter, style); err != nil {
		return source
	}

	return buf.String()
}

// Blob pretty-prints a raw JSON document and colorizes it. Content
// that does not indent cleanly is returned as-is, uncolored.
func Blob(raw []byte, enabled bool) string {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		return string(raw)
	}

	return JSON(pretty.String(), enabled)
}
