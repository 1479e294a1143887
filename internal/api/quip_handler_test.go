package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jairajrenjith/Witti/internal/generation"
	"github.com/jairajrenjith/Witti/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubQuipService returns a canned result or error.
type stubQuipService struct {
	result service.QuipResult
	err    error
}

func (s *stubQuipService) Ask(ctx context.Context, question string) (service.QuipResult, error) {
	if s.err != nil {
		return service.QuipResult{}, s.err
	}
	result := s.result
	result.Question = question
	return result, nil
}

func newTestHandler(svc service.QuipService) *QuipHandler {
	return NewQuipHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/quips", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAskSuccess(t *testing.T) {
	svc := &stubQuipService{result: service.QuipResult{
		Answer:    "Obviously not.",
		Model:     "gemini-2.0-flash",
		LatencyMS: 42,
	}}
	handler := newTestHandler(svc)

	rec := postJSON(t, handler.Ask, `{"question":"Why?"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp QuipResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Why?", resp.Question)
	assert.Equal(t, "Obviously not.", resp.Answer)
	assert.Equal(t, "gemini-2.0-flash", resp.Model)
}

func TestAskRejectsBadBodies(t *testing.T) {
	handler := newTestHandler(&stubQuipService{})

	tests := map[string]string{
		"malformed json": `{"question":`,
		"missing field":  `{}`,
		"empty question": `{"question":""}`,
		"unknown field":  `{"question":"Why?","extra":true}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			rec := postJSON(t, handler.Ask, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

// TestAskMapsServiceErrors verifies the taxonomy reaches the wire with the
// right status code and a safe message.
func TestAskMapsServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			"not configured",
			generation.ErrNotConfigured,
			http.StatusServiceUnavailable,
			"Invalid API key or insufficient permissions",
		},
		{
			"quota",
			generation.ErrQuotaExceeded,
			http.StatusTooManyRequests,
			"Quota exceeded, try again later",
		},
		{
			"invalid response",
			generation.ErrInvalidResponse,
			http.StatusBadGateway,
			"Response not in expected text format",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := newTestHandler(&stubQuipService{err: tc.err})

			rec := postJSON(t, handler.Ask, `{"question":"Why?"}`)

			require.Equal(t, tc.wantStatus, rec.Code)
			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantError, resp["error"])
		})
	}
}

func TestShareSuccess(t *testing.T) {
	handler := newTestHandler(&stubQuipService{})

	rec := postJSON(t, handler.Share, `{"question":"Why?","answer":"Obviously not."}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["text"], "Why?")
	assert.Contains(t, resp["text"], "Obviously not.")
	assert.Equal(t, float64(2000), resp["clear_after_ms"])
	assert.NotEmpty(t, resp["id"])
}

func TestShareRejectsMissingAnswer(t *testing.T) {
	handler := newTestHandler(&stubQuipService{})

	rec := postJSON(t, handler.Share, `{"question":"Why?"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
