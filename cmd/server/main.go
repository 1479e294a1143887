// Package main implements the entry point for the Witti server, which
// answers user questions with short, confidently wrong quips generated via
// the Gemini API.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/jairajrenjith/Witti/internal/config"
	"github.com/jairajrenjith/Witti/internal/platform/logger"
	"github.com/joho/godotenv"
)

func main() {
	app, err := initializeApp(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and wires the
// application components. Returns the assembled application or any
// initialization error.
//
// A missing Gemini API key is NOT an initialization error here: the adapter
// records it and every request surfaces it, so the widget can show its
// configuration banner while the server keeps serving.
func initializeApp(ctx context.Context) (*application, error) {
	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"api_key_present", cfg.LLM.GeminiAPIKey != "")

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to build application: %w", err)
	}

	return app, nil
}
