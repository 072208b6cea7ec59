package history_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/controller"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/history"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/submission"
)

func newSystem(t *testing.T) history.System {
	t.Helper()

	path := filepath.Join(t.TempDir(), "history", "extrato.db")

	system, err := history.NewSystem(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewSystem() error: %v", err)
	}

	t.Cleanup(func() {
		if err := system.Close(); err != nil {
			t.Errorf("Close() error: %v", err)
		}
	})

	return system
}

func TestRecordAndList(t *testing.T) {
	system := newSystem(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	entries := []history.Entry{
		{
			SubmittedAt: base,
			Label:       "carteira_oab",
			FileName:    "doc.pdf",
			FileSize:    512000,
			Phase:       "succeeded",
			Method:      "llm-full",
			RequestTime: 1.8,
		},
		{
			SubmittedAt: base.Add(time.Minute),
			Label:       "cnh",
			FileName:    "cnh.pdf",
			FileSize:    2048,
			Phase:       "failed",
			Notice:      "The extraction service is temporarily unavailable. Try again shortly.",
		},
	}

	for _, entry := range entries {
		if err := system.Record(ctx, entry); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	listed, err := system.List(ctx, 10)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	if len(listed) != 2 {
		t.Fatalf("entry count = %d, expected 2", len(listed))
	}

	if listed[0].Label != "cnh" {
		t.Errorf("first entry label = %q, expected newest first", listed[0].Label)
	}

	if listed[0].ID == uuid.Nil {
		t.Error("recorded entry must be assigned an id")
	}

	if listed[1].Method != "llm-full" {
		t.Errorf("method = %q", listed[1].Method)
	}

	if listed[1].RequestTime != 1.8 {
		t.Errorf("request time = %v", listed[1].RequestTime)
	}

	if !listed[1].SubmittedAt.Equal(base) {
		t.Errorf("submitted at = %v, expected %v", listed[1].SubmittedAt, base)
	}
}

func TestListLimit(t *testing.T) {
	system := newSystem(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		entry := history.Entry{
			SubmittedAt: base.Add(time.Duration(i) * time.Second),
			Label:       "carteira_oab",
			FileName:    "doc.pdf",
			Phase:       "succeeded",
		}

		if err := system.Record(ctx, entry); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	listed, err := system.List(ctx, 3)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	if len(listed) != 3 {
		t.Errorf("entry count = %d, expected limit of 3", len(listed))
	}
}

func TestClear(t *testing.T) {
	system := newSystem(t)
	ctx := context.Background()

	if err := system.Record(ctx, history.Entry{Label: "cnh", FileName: "cnh.pdf", Phase: "failed"}); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	if err := system.Clear(ctx); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}

	listed, err := system.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	if len(listed) != 0 {
		t.Errorf("entry count after clear = %d", len(listed))
	}
}

func TestReopenPersists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extrato.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	system, err := history.NewSystem(path, logger)
	if err != nil {
		t.Fatalf("NewSystem() error: %v", err)
	}

	if err := system.Record(ctx, history.Entry{Label: "carteira_oab", FileName: "doc.pdf", Phase: "succeeded"}); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	if err := system.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	reopened, err := history.NewSystem(path, logger)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer reopened.Close()

	listed, err := reopened.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	if len(listed) != 1 {
		t.Fatalf("entry count after reopen = %d, expected 1", len(listed))
	}
}

func TestObserverRecordsSettledAttempts(t *testing.T) {
	system := newSystem(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	observe := history.Observer(system, logger)

	req := submission.Request{
		Label: "carteira_oab",
		File:  submission.File{Name: "doc.pdf", Size: 512000},
	}

	observe(controller.Transition{
		From:    controller.PhaseIdle,
		To:      controller.PhaseValidating,
		Request: req,
	})

	observe(controller.Transition{
		From:    controller.PhaseSubmitting,
		To:      controller.PhaseFailed,
		Request: req,
		Snapshot: controller.Snapshot{
			Phase:  controller.PhaseFailed,
			Notice: "The extraction service is temporarily unavailable. Try again shortly.",
		},
	})

	listed, err := system.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	if len(listed) != 1 {
		t.Fatalf("entry count = %d, only settled phases should be recorded", len(listed))
	}

	entry := listed[0]

	if entry.Phase != "failed" {
		t.Errorf("phase = %q", entry.Phase)
	}

	if entry.Label != "carteira_oab" || entry.FileName != "doc.pdf" {
		t.Errorf("request fields not carried: %+v", entry)
	}

	if entry.Notice == "" {
		t.Error("failure notice must be recorded")
	}
}
