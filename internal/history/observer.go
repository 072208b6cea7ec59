package history

import (
	"context"
	"log/slog"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/controller"
)

// Observer adapts a history System into a controller observer that
// records every settled attempt. Recording failures are logged, never
// surfaced: the submission outcome must not depend on local storage.
func Observer(system System, logger *slog.Logger) func(controller.Transition) {
	logger = logger.With("system", "history")

	return func(t controller.Transition) {
		if t.To != controller.PhaseSucceeded && t.To != controller.PhaseFailed {
			return
		}

		entry := Entry{
			Label:    t.Request.Label,
			FileName: t.Request.File.Name,
			FileSize: t.Request.File.Size,
			Phase:    t.To.String(),
			Notice:   t.Snapshot.Notice,
		}

		if result := t.Snapshot.Result; result != nil {
			entry.Method = result.Metadata.Pipeline.Method
			entry.RequestTime = result.Metadata.RequestTime
		}

		if err := system.Record(context.Background(), entry); err != nil {
			logger.Error("record submission", "error", err)
		}
	}
}
