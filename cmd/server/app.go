package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jairajrenjith/Witti/internal/config"
	"github.com/jairajrenjith/Witti/internal/platform/gemini"
	"github.com/jairajrenjith/Witti/internal/service"
)

// application holds the assembled dependencies of the running server.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	quipService service.QuipService
}

// newApplication wires the provider adapter and application service. The
// Gemini client is constructed exactly once here; its initialization outcome
// (client or recorded error) is fixed for the process lifetime.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
) (*application, error) {
	generator, err := gemini.NewQuipGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create quip generator: %w", err)
	}

	quipService, err := service.NewQuipService(generator, cfg.LLM.ModelName, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create quip service: %w", err)
	}

	return &application{
		config:      cfg,
		logger:      logger,
		quipService: quipService,
	}, nil
}
