package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jairajrenjith/Witti/internal/config"
	"github.com/jairajrenjith/Witti/internal/generation"
	"google.golang.org/genai"
)

// contentCaller is the narrow slice of the genai client used by the
// generator. *genai.Models satisfies it directly; tests inject a fake.
type contentCaller interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

var _ contentCaller = (*genai.Models)(nil)

// QuipGenerator implements the generation.QuipGenerator interface using
// Google's Gemini API to answer user questions with short quips.
//
// Exactly one of {caller, initErr} is set by the constructor and neither is
// ever re-evaluated: a failed initialization is permanent for the process
// lifetime. All remaining state is read-only after construction, so
// concurrent GenerateQuip calls are independent.
type QuipGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// model is the Gemini model identifier used for every call
	model string

	// caller performs the generation request; nil when initialization failed
	caller contentCaller

	// initErr is the initialization error recorded at startup, if any
	initErr error
}

// NewQuipGenerator creates the Gemini-backed quip generator. It is intended
// to run exactly once, at process startup.
//
// A missing, empty, or whitespace-only API key — or a failure constructing
// the client — does not abort startup: the error is recorded on the
// generator, logged once, and returned from every subsequent GenerateQuip
// call. No network call is attempted in that case. The constructor itself
// only fails on programmer error (nil logger).
func NewQuipGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
) (*QuipGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	g := &QuipGenerator{
		logger: logger,
		model:  cfg.ModelName,
	}
	if g.model == "" {
		g.model = config.DefaultModelName
	}

	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		g.initErr = fmt.Errorf("%w: Gemini API key is missing or empty", generation.ErrNotConfigured)
		logger.ErrorContext(ctx, "Gemini client initialization failed",
			"error", g.initErr)
		return g, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		g.initErr = fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrNotConfigured, err)
		logger.ErrorContext(ctx, "Gemini client initialization failed",
			"error", g.initErr)
		return g, nil
	}

	g.caller = client.Models
	logger.InfoContext(ctx, "Gemini client initialized", "model", g.model)
	return g, nil
}

// GenerateQuip produces a short answer for the given question.
//
// The recorded initialization error takes priority over everything else and
// is returned without any network attempt. Otherwise a single generation
// call is made — no retry, no timeout beyond the underlying transport — and
// the trimmed response text is returned. Call failures are logged and then
// classified via ClassifyProviderError.
func (g *QuipGenerator) GenerateQuip(ctx context.Context, question string) (string, error) {
	if g.initErr != nil {
		return "", g.initErr
	}
	if g.caller == nil {
		return "", generation.ErrClientUnavailable
	}

	prompt := BuildPrompt(question)
	g.logger.DebugContext(ctx, "Calling Gemini API",
		"model", g.model,
		"prompt_length", len(prompt))

	resp, err := g.caller.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"model", g.model,
			"error", err)
		return "", ClassifyProviderError(err)
	}

	text, ok := responseText(resp)
	if !ok {
		g.logger.WarnContext(ctx, "Gemini response carried no text payload",
			"model", g.model)
		return "", generation.ErrInvalidResponse
	}

	answer := strings.TrimSpace(text)
	g.logger.DebugContext(ctx, "Gemini API call succeeded",
		"answer_length", len(answer))
	return answer, nil
}

// responseText extracts the concatenated text parts of the first candidate.
// The second return value reports whether any text payload was present.
func responseText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", false
	}

	var sb strings.Builder
	found := false
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Text == "" {
			continue
		}
		found = true
		sb.WriteString(part.Text)
	}
	return sb.String(), found
}
