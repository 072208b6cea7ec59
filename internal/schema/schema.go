// Package schema validates the user-supplied key-description schema that
// tells the extraction service which fields to pull from a document.
//
// A schema is a flat JSON object mapping field names to human-readable
// descriptions, e.g. {"nome": "Nome completo do titular"}. Validation is
// pure and side-effect free so presentation layers can run it on every
// edit without debouncing concerns.
package schema

import (
	"errors"
	"strings"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/pkg/formatting"
)

// Field is one schema entry: the name the service should extract and its
// human-readable description.
type Field struct {
	Name        string
	Description string
}

// Schema is a validated flat mapping of field names to descriptions,
// preserving the order the user wrote them in.
type Schema struct {
	Fields []Field
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	return len(s.Fields)
}

// Names returns the field names in schema order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Parse validates text and returns the decoded schema when the outcome is
// StateValid. Blank text yields a nil schema with a neutral outcome.
func Parse(text string) (*Schema, Outcome) {
	if strings.TrimSpace(text) == "" {
		return nil, Neutral()
	}

	obj, err := formatting.DecodeObject([]byte(text))
	if err != nil {
		if errors.Is(err, formatting.ErrNotObject) {
			return nil, Invalid("must be a flat object of the form {field: description}")
		}
		return nil, Invalidf("malformed JSON: %v", err)
	}

	if obj.Len() == 0 {
		return nil, Invalid("must contain at least one field")
	}

	s := &Schema{Fields: make([]Field, 0, obj.Len())}
	for _, name := range obj.Keys {
		desc, ok := obj.Values[name].(string)
		if !ok || strings.TrimSpace(desc) == "" {
			return nil, Invalidf("field '%s' must have a non-empty string description", name)
		}
		s.Fields = append(s.Fields, Field{Name: name, Description: desc})
	}

	return s, Valid()
}

// Validate checks text without retaining the parsed schema.
func Validate(text string) Outcome {
	_, outcome := Parse(text)
	return outcome
}
