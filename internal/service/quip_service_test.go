package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/jairajrenjith/Witti/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator returns a canned answer or error and records invocations.
type stubGenerator struct {
	answer string
	err    error
	calls  int
}

func (s *stubGenerator) GenerateQuip(ctx context.Context, question string) (string, error) {
	s.calls++
	return s.answer, s.err
}

func newTestService(t *testing.T, gen generation.QuipGenerator) QuipService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := NewQuipService(gen, "gemini-2.0-flash", logger)
	require.NoError(t, err)
	return svc
}

func TestNewQuipServiceNilDependencies(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewQuipService(nil, "m", logger)
	assert.Error(t, err, "nil generator should be rejected")

	_, err = NewQuipService(&stubGenerator{}, "m", nil)
	assert.Error(t, err, "nil logger should be rejected")
}

// TestAskRejectsEmptyQuestion verifies the caller-side non-empty check:
// blank questions never reach the generator.
func TestAskRejectsEmptyQuestion(t *testing.T) {
	gen := &stubGenerator{answer: "No."}
	svc := newTestService(t, gen)

	for _, q := range []string{"", "   ", "\n\t"} {
		_, err := svc.Ask(context.Background(), q)
		assert.ErrorIs(t, err, ErrEmptyQuestion, "question %q", q)
	}
	assert.Equal(t, 0, gen.calls, "generator should not be invoked for blank questions")
}

func TestAskReturnsResult(t *testing.T) {
	gen := &stubGenerator{answer: "Obviously not."}
	svc := newTestService(t, gen)

	result, err := svc.Ask(context.Background(), "Why?")

	require.NoError(t, err)
	assert.Equal(t, "Why?", result.Question)
	assert.Equal(t, "Obviously not.", result.Answer)
	assert.Equal(t, "gemini-2.0-flash", result.Model)
	assert.GreaterOrEqual(t, result.LatencyMS, int64(0))
}

// TestAskPassesGeneratorErrorsThrough verifies generator errors are returned
// unchanged so the API layer can classify them.
func TestAskPassesGeneratorErrorsThrough(t *testing.T) {
	gen := &stubGenerator{err: generation.ErrQuotaExceeded}
	svc := newTestService(t, gen)

	_, err := svc.Ask(context.Background(), "Why?")

	assert.ErrorIs(t, err, generation.ErrQuotaExceeded)

	passthrough := errors.New("Some obscure network blip")
	gen.err = passthrough
	_, err = svc.Ask(context.Background(), "Why?")
	assert.Equal(t, passthrough, err, "pass-through errors keep their identity")
}
