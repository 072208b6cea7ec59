package schema_test

import (
	"strings"
	"testing"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/schema"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		state  schema.State
		reason string
	}{
		{"empty text is neutral", "", schema.StateNeutral, ""},
		{"whitespace-only text is neutral", "  \n\t ", schema.StateNeutral, ""},
		{"single field", `{"nome": "Nome"}`, schema.StateValid, ""},
		{"multiple fields", `{"nome": "Nome completo", "numero_oab": "Número de inscrição"}`, schema.StateValid, ""},
		{"malformed JSON", `{"nome": `, schema.StateInvalid, "malformed JSON"},
		{"trailing garbage", `{"nome": "Nome"} x`, schema.StateInvalid, "malformed JSON"},
		{"array", `["nome"]`, schema.StateInvalid, "flat object"},
		{"null", `null`, schema.StateInvalid, "flat object"},
		{"string scalar", `"nome"`, schema.StateInvalid, "flat object"},
		{"empty object", `{}`, schema.StateInvalid, "at least one field"},
		{"empty description", `{"nome": ""}`, schema.StateInvalid, "field 'nome'"},
		{"whitespace description", `{"nome": "   "}`, schema.StateInvalid, "field 'nome'"},
		{"numeric description", `{"nome": 123}`, schema.StateInvalid, "field 'nome'"},
		{"nested object value", `{"nome": {"x": "y"}}`, schema.StateInvalid, "field 'nome'"},
		{"null value", `{"nome": null}`, schema.StateInvalid, "field 'nome'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schema.Validate(tt.text)
			if got.State != tt.state {
				t.Fatalf("Validate(%q).State = %v, want %v (reason: %q)", tt.text, got.State, tt.state, got.Reason)
			}
			if tt.reason == "" && got.Reason != "" {
				t.Errorf("Validate(%q).Reason = %q, want empty", tt.text, got.Reason)
			}
			if tt.reason != "" && !strings.Contains(got.Reason, tt.reason) {
				t.Errorf("Validate(%q).Reason = %q, want substring %q", tt.text, got.Reason, tt.reason)
			}
		})
	}
}

func TestValidateReportsFirstOffendingKey(t *testing.T) {
	got := schema.Validate(`{"ok": "fine", "bad": "", "worse": 1}`)
	if got.State != schema.StateInvalid {
		t.Fatalf("State = %v, want StateInvalid", got.State)
	}
	if !strings.Contains(got.Reason, "'bad'") {
		t.Errorf("Reason = %q, want the first offending key 'bad'", got.Reason)
	}
}

func TestParse(t *testing.T) {
	t.Run("preserves field order", func(t *testing.T) {
		s, outcome := schema.Parse(`{"nome": "Nome", "cpf": "CPF", "validade": "Data de validade"}`)
		if !outcome.Passed() || s == nil {
			t.Fatalf("Parse failed: %+v", outcome)
		}

		want := []string{"nome", "cpf", "validade"}
		got := s.Names()
		if len(got) != len(want) {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("neutral yields nil schema", func(t *testing.T) {
		s, outcome := schema.Parse("")
		if s != nil {
			t.Errorf("Parse(\"\") schema = %+v, want nil", s)
		}
		if outcome.State != schema.StateNeutral {
			t.Errorf("Parse(\"\") state = %v, want StateNeutral", outcome.State)
		}
		if !outcome.Passed() {
			t.Error("neutral outcome should pass")
		}
	})

	t.Run("descriptions retained", func(t *testing.T) {
		s, outcome := schema.Parse(`{"nome": "Nome completo do titular"}`)
		if !outcome.Passed() || s == nil {
			t.Fatalf("Parse failed: %+v", outcome)
		}
		if s.Fields[0].Description != "Nome completo do titular" {
			t.Errorf("Description = %q", s.Fields[0].Description)
		}
	})
}

func TestValidateIsIdempotent(t *testing.T) {
	inputs := []string{
		"",
		`{"nome": "Nome"}`,
		`{"nome": ""}`,
		`not json`,
	}

	for _, text := range inputs {
		first := schema.Validate(text)
		second := schema.Validate(text)
		if first != second {
			t.Errorf("Validate(%q) not stable: %+v then %+v", text, first, second)
		}
	}
}
