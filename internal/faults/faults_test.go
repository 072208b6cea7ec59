package faults_test

import (
	"strings"
	"testing"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/extractor"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/faults"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		failure  *extractor.Failure
		contains []string
		excludes []string
	}{
		{
			name:     "nil failure",
			failure:  nil,
			contains: []string{"extraction service", "running"},
		},
		{
			name:     "transport failure carries detail",
			failure:  &extractor.Failure{Detail: "connection refused"},
			contains: []string{"connection refused", "running"},
		},
		{
			name:     "400 malformed schema",
			failure:  &extractor.Failure{Status: 400, Detail: "extraction_schema deve ser um JSON válido"},
			contains: []string{"malformed JSON", "extraction_schema deve ser um JSON válido"},
		},
		{
			name:     "400 corrupted file",
			failure:  &extractor.Failure{Status: 400, Detail: "could not parse file contents"},
			contains: []string{"corrupted", "could not parse file contents"},
		},
		{
			name:     "400 generic invalid data",
			failure:  &extractor.Failure{Status: 400, Detail: "label contains control characters"},
			contains: []string{"invalid", "label contains control characters"},
			excludes: []string{"malformed JSON", "corrupted"},
		},
		{
			name:     "400 matching is case-sensitive",
			failure:  &extractor.Failure{Status: 400, Detail: "bad json payload"},
			contains: []string{"invalid"},
			excludes: []string{"malformed JSON"},
		},
		{
			name:     "413 fixed message ignores detail",
			failure:  &extractor.Failure{Status: 413, Detail: "ignore me entirely"},
			contains: []string{"10 MB"},
			excludes: []string{"ignore me entirely"},
		},
		{
			name:     "415 fixed message",
			failure:  &extractor.Failure{Status: 415, Detail: "whatever"},
			contains: []string{"PDF"},
			excludes: []string{"whatever"},
		},
		{
			name:     "422 prompts field check",
			failure:  &extractor.Failure{Status: 422, Detail: "label is required"},
			contains: []string{"label is required", "field"},
		},
		{
			name:     "500 suggests retry",
			failure:  &extractor.Failure{Status: 500, Detail: "Erro interno na extração"},
			contains: []string{"Erro interno na extração", "again"},
		},
		{
			name:     "503 fixed message",
			failure:  &extractor.Failure{Status: 503, Detail: "maintenance window"},
			contains: []string{"temporarily unavailable"},
			excludes: []string{"maintenance window"},
		},
		{
			name:     "unmapped status falls back to generic",
			failure:  &extractor.Failure{Status: 404, Detail: "no such route"},
			contains: []string{"404", "no such route"},
		},
		{
			name:     "unmapped redirect status",
			failure:  &extractor.Failure{Status: 301, Detail: "moved"},
			contains: []string{"301", "moved"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := faults.Classify(tt.failure)

			if msg == "" {
				t.Fatal("classification must never produce an empty message")
			}

			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("message %q missing %q", msg, want)
				}
			}

			for _, unwanted := range tt.excludes {
				if strings.Contains(msg, unwanted) {
					t.Errorf("message %q should not contain %q", msg, unwanted)
				}
			}
		})
	}
}

func TestClassifyTotal(t *testing.T) {
	for status := 100; status < 600; status++ {
		if msg := faults.Classify(&extractor.Failure{Status: status, Detail: "d"}); msg == "" {
			t.Fatalf("status %d produced an empty message", status)
		}
	}
}
