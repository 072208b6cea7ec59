// Package infrastructure provides core system initialization for
// application startup. It assembles the shared dependencies (logging,
// the extraction service client, the submission controller, and the
// optional submission record) that presentation surfaces require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/config"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/controller"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/extractor"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/history"
)

// Infrastructure holds the core systems shared by every command.
// History is nil when the submission record is disabled.
type Infrastructure struct {
	Logger     *slog.Logger
	Service    extractor.System
	Controller *controller.Controller
	History    history.System
}

// New creates an Infrastructure from the application configuration.
func New(cfg *config.Config) (*Infrastructure, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	cfg.Service.UserAgent = "extrato/" + cfg.Version

	service, err := extractor.New(&cfg.Service, logger)
	if err != nil {
		return nil, fmt.Errorf("extractor init failed: %w", err)
	}

	ctrl := controller.New(service, logger)
	ctrl.SetPreflight(!cfg.Client.SkipPreflight)

	infra := &Infrastructure{
		Logger:     logger,
		Service:    service,
		Controller: ctrl,
	}

	if cfg.History.Enabled {
		record, err := history.NewSystem(cfg.History.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("history init failed: %w", err)
		}

		infra.History = record
		ctrl.Observe(history.Observer(record, logger))
	}

	return infra, nil
}

// Close releases resources held by optional systems.
func (i *Infrastructure) Close() error {
	if i.History != nil {
		return i.History.Close()
	}
	return nil
}
