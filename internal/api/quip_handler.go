package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jairajrenjith/Witti/internal/api/shared"
	"github.com/jairajrenjith/Witti/internal/service"
	"github.com/jairajrenjith/Witti/internal/share"
)

// AskRequest represents the request body for asking a question.
type AskRequest struct {
	Question string `json:"question" validate:"required,min=1,max=500"`
}

// QuipResponse represents the response data for an answered question.
type QuipResponse struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Model     string `json:"model"`
	LatencyMS int64  `json:"latency_ms"`
}

// ShareRequest represents the request body for composing a share payload.
type ShareRequest struct {
	Question string `json:"question" validate:"required,min=1,max=500"`
	Answer   string `json:"answer"   validate:"required,min=1"`
}

// QuipHandler handles quip-related HTTP requests.
type QuipHandler struct {
	quipService service.QuipService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewQuipHandler creates a new QuipHandler.
func NewQuipHandler(quipService service.QuipService, logger *slog.Logger) *QuipHandler {
	return &QuipHandler{
		quipService: quipService,
		validator:   validator.New(),
		logger:      logger,
	}
}

// Ask handles POST /api/quips requests.
func (h *QuipHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.DebugContext(r.Context(), "question failed validation", "error", err)
		shared.RespondWithError(w, r, http.StatusBadRequest, "Question cannot be empty")
		return
	}

	result, err := h.quipService.Ask(r.Context(), req.Question)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, QuipResponse{
		Question:  result.Question,
		Answer:    result.Answer,
		Model:     result.Model,
		LatencyMS: result.LatencyMS,
	})
}

// Share handles POST /api/quips/share requests. It composes the share text
// and the transient status the widget displays; the actual share mechanics
// (native sheet, clipboard fallback) happen client-side.
func (h *QuipHandler) Share(w http.ResponseWriter, r *http.Request) {
	var req ShareRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.DebugContext(r.Context(), "share payload failed validation", "error", err)
		shared.RespondWithError(w, r, http.StatusBadRequest, "Question and answer are required")
		return
	}

	text := share.BuildText(req.Question, req.Answer)
	status := share.NewStatus("Ready to share", text)

	shared.RespondWithJSON(w, r, http.StatusOK, status)
}
