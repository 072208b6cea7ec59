// Package render converts successful extraction results into render
// plans: ordered field descriptors plus a formatted performance
// summary. Plans are plain data so any presentation surface can paint
// them without knowing how they were produced.
package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/extractor"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/pkg/formatting"
)

const (
	// EmptyValue marks a field the service could not find.
	EmptyValue = "(not found)"

	// NoFields is the single placeholder entry carried by a plan whose
	// result had no extracted fields at all.
	NoFields = "(nothing extracted)"

	// UnknownMethod labels results whose pipeline method was absent.
	UnknownMethod = "Unknown"
)

// Field is one renderable extracted value.
type Field struct {
	Key     string
	Display string
	Empty   bool
}

// Summary carries the formatted performance labels for one extraction.
type Summary struct {
	Time   string
	Method string
	Size   string
}

// Plan is everything a presentation surface needs to paint one
// successful extraction.
type Plan struct {
	Fields      []Field
	Performance Summary
}

// methodNames translates pipeline method identifiers to display labels.
// Unrecognized identifiers pass through unchanged.
var methodNames = map[string]string{
	"llm-full":     "Full LLM extraction",
	"llm-fallback": "LLM fallback",
	"cache-l1":     "L1 cache (memory)",
	"cache-l2":     "L2 cache (disk)",
	"cache-l3":     "L3 cache (partial)",
	"template":     "Learned template",
}

// Build produces the render plan for a successful extraction. Fields
// appear in the order the service emitted them.
func Build(result *extractor.Result) Plan {
	plan := Plan{
		Performance: Summary{
			Time:   formatting.FormatSeconds(result.Metadata.RequestTime),
			Method: MethodLabel(result.Metadata.Pipeline.Method),
			Size:   formatting.FormatBytes(result.Metadata.FileSize, 1),
		},
	}

	if result.Data == nil || result.Data.Len() == 0 {
		plan.Fields = []Field{{Display: NoFields, Empty: true}}
		return plan
	}

	plan.Fields = make([]Field, 0, result.Data.Len())

	for _, key := range result.Data.Keys {
		display, empty := renderValue(result.Data.Values[key])
		plan.Fields = append(plan.Fields, Field{
			Key:     key,
			Display: display,
			Empty:   empty,
		})
	}

	return plan
}

// MethodLabel translates a pipeline method identifier into its display
// label. Chained methods are split on "->", translated segment by
// segment, and rejoined with an arrow.
func MethodLabel(method string) string {
	if method == "" {
		return UnknownMethod
	}

	segments := strings.Split(method, "->")
	labels := make([]string, 0, len(segments))

	for _, segment := range segments {
		if name, ok := methodNames[segment]; ok {
			labels = append(labels, name)
		} else {
			labels = append(labels, segment)
		}
	}

	return strings.Join(labels, " → ")
}

// StepsLabel renders the pipeline's per-stage sequence with friendly
// names. An empty sequence yields an empty string.
func StepsLabel(steps []string) string {
	if len(steps) == 0 {
		return ""
	}

	labels := make([]string, 0, len(steps))
	for _, step := range steps {
		labels = append(labels, MethodLabel(step))
	}

	return strings.Join(labels, " → ")
}

// renderValue maps one extracted value to its display form. Null and
// empty-string values render as the empty marker; structured values are
// pretty-printed; scalars keep their wire representation.
func renderValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return EmptyValue, true
	case string:
		if v == "" {
			return EmptyValue, true
		}
		return v, false
	case json.Number:
		return v.String(), false
	case bool:
		return strconv.FormatBool(v), false
	default:
		pretty, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Sprintf("%v", v), false
		}
		return string(pretty), false
	}
}
