package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jairajrenjith/Witti/internal/generation"
)

// ErrEmptyQuestion indicates the caller supplied an empty or whitespace-only
// question. The API layer maps this to HTTP 400 Bad Request.
var ErrEmptyQuestion = errors.New("question cannot be empty")

// QuipResult is the application-level output of an answered question.
type QuipResult struct {
	Question  string
	Answer    string
	Model     string
	LatencyMS int64
}

// QuipService answers user questions with short quips.
type QuipService interface {
	// Ask validates the question, delegates to the generator, and returns
	// the answered result. Errors from the generator are returned unchanged
	// so callers can classify them with errors.Is.
	Ask(ctx context.Context, question string) (QuipResult, error)
}

// quipService is the default QuipService implementation.
type quipService struct {
	generator generation.QuipGenerator
	model     string
	logger    *slog.Logger
}

// NewQuipService creates a QuipService backed by the given generator.
// The model name is only used to annotate results.
func NewQuipService(
	generator generation.QuipGenerator,
	model string,
	logger *slog.Logger,
) (QuipService, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &quipService{
		generator: generator,
		model:     model,
		logger:    logger,
	}, nil
}

func (s *quipService) Ask(ctx context.Context, question string) (QuipResult, error) {
	if strings.TrimSpace(question) == "" {
		return QuipResult{}, ErrEmptyQuestion
	}

	start := time.Now()
	answer, err := s.generator.GenerateQuip(ctx, question)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		s.logger.ErrorContext(ctx, "quip generation failed",
			"latency_ms", latency,
			"error", err)
		return QuipResult{}, err
	}

	s.logger.InfoContext(ctx, "quip generated",
		"latency_ms", latency,
		"answer_length", len(answer))

	return QuipResult{
		Question:  question,
		Answer:    answer,
		Model:     s.model,
		LatencyMS: latency,
	}, nil
}
