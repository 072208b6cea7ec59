package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/controller"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/extractor"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/history"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/render"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/pkg/formatting"
)

func TestPrintPlan(t *testing.T) {
	plan := &render.Plan{
		Fields: []render.Field{
			{Key: "nome", Display: "Maria Silva"},
			{Key: "validade", Display: render.EmptyValue, Empty: true},
			{Key: "endereco", Display: "{\n  \"uf\": \"SP\"\n}"},
		},
		Performance: render.Summary{Time: "1.50s", Method: "Learned template", Size: "500.0 KB"},
	}

	var b strings.Builder
	printPlan(&b, plan, printStyles{})

	out := b.String()

	for _, expected := range []string{
		"nome", "Maria Silva",
		"validade", render.EmptyValue,
		"Learned template in 1.50s (500.0 KB)",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("output missing %q:\n%s", expected, out)
		}
	}

	// Continuation lines of multi-line values stay right of the key column.
	if !strings.Contains(out, "\n            \"uf\": \"SP\"") {
		t.Errorf("multi-line value not indented:\n%s", out)
	}
}

func TestPrintPlanPlaceholder(t *testing.T) {
	plan := &render.Plan{
		Fields:      []render.Field{{Display: render.NoFields, Empty: true}},
		Performance: render.Summary{Time: "0.10s", Method: "Unknown", Size: "0 B"},
	}

	var b strings.Builder
	printPlan(&b, plan, printStyles{})

	if !strings.Contains(b.String(), render.NoFields) {
		t.Errorf("output missing placeholder:\n%s", b.String())
	}
}

func TestPrintOutcomeJSON(t *testing.T) {
	t.Run("success carries ordered data", func(t *testing.T) {
		data, err := formatting.DecodeObject([]byte(`{"zeta": "1", "alpha": "2"}`))
		if err != nil {
			t.Fatalf("decode fixture: %v", err)
		}

		snap := controller.Snapshot{
			Phase: controller.PhaseSucceeded,
			Result: &extractor.Result{
				Data: data,
				Metadata: extractor.Metadata{
					RequestTime: 1.5,
					FileName:    "doc.pdf",
					Pipeline:    extractor.Pipeline{Method: "cache-l1"},
				},
			},
		}

		var b strings.Builder
		if err := printOutcomeJSON(&b, snap); err != nil {
			t.Fatalf("printOutcomeJSON error: %v", err)
		}

		var decoded struct {
			Phase    string          `json:"phase"`
			Data     json.RawMessage `json:"data"`
			Metadata json.RawMessage `json:"metadata"`
		}

		if err := json.Unmarshal([]byte(b.String()), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v\n%s", err, b.String())
		}

		if decoded.Phase != "succeeded" {
			t.Errorf("phase = %q", decoded.Phase)
		}

		if decoded.Data == nil || decoded.Metadata == nil {
			t.Fatalf("output missing data or metadata:\n%s", b.String())
		}

		if zeta := strings.Index(b.String(), "zeta"); zeta > strings.Index(b.String(), "alpha") {
			t.Errorf("data keys reordered:\n%s", b.String())
		}
	})

	t.Run("failure carries the notice", func(t *testing.T) {
		snap := controller.Snapshot{
			Phase:  controller.PhaseFailed,
			Notice: "The extraction service is temporarily unavailable. Try again shortly.",
		}

		var b strings.Builder
		if err := printOutcomeJSON(&b, snap); err != nil {
			t.Fatalf("printOutcomeJSON error: %v", err)
		}

		out := b.String()

		if !strings.Contains(out, `"failed"`) || !strings.Contains(out, "temporarily unavailable") {
			t.Errorf("unexpected failure output:\n%s", out)
		}

		if strings.Contains(out, `"data"`) {
			t.Errorf("failed outcome must not carry data:\n%s", out)
		}
	})
}

func TestEntryDetail(t *testing.T) {
	succeeded := history.Entry{Method: "llm-full->template", RequestTime: 1.5}
	if got := entryDetail(succeeded); !strings.Contains(got, "Full LLM extraction") || !strings.Contains(got, "1.50s") {
		t.Errorf("entryDetail(succeeded) = %q", got)
	}

	failed := history.Entry{Notice: "Unsupported file type. Only PDF documents are accepted."}
	if got := entryDetail(failed); got != failed.Notice {
		t.Errorf("entryDetail(failed) = %q", got)
	}
}
