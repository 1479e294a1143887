package api

import (
	"errors"
	"net/http"

	"github.com/jairajrenjith/Witti/internal/generation"
	"github.com/jairajrenjith/Witti/internal/service"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types to
// clients.
//
// Configuration-class failures (missing key, invalid credential, absent
// client) map to 503 so the widget can show its persistent configuration
// banner; provider-side malfunction maps to 502; quota to 429.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrEmptyQuestion):
		return http.StatusBadRequest

	case errors.Is(err, generation.ErrNotConfigured),
		errors.Is(err, generation.ErrInvalidCredential),
		errors.Is(err, generation.ErrClientUnavailable):
		return http.StatusServiceUnavailable

	case errors.Is(err, generation.ErrQuotaExceeded):
		return http.StatusTooManyRequests

	case errors.Is(err, generation.ErrModelNotFound),
		errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, generation.ErrCommunication):
		return http.StatusBadGateway

	default:
		// Pass-through provider errors: unknown category, provider-side.
		return http.StatusBadGateway
	}
}

// GetSafeErrorMessage returns a user-friendly error message based on the
// error type. Pass-through provider errors keep their original message (the
// widget shows it verbatim, and special-cases any message mentioning the
// API key); everything else maps to a fixed phrase.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrEmptyQuestion):
		return "Question cannot be empty"

	case errors.Is(err, generation.ErrNotConfigured),
		errors.Is(err, generation.ErrInvalidCredential):
		return "Invalid API key or insufficient permissions"

	case errors.Is(err, generation.ErrClientUnavailable):
		return "Answer service is not initialized"

	case errors.Is(err, generation.ErrQuotaExceeded):
		return "Quota exceeded, try again later"

	case errors.Is(err, generation.ErrModelNotFound):
		return "Model not found"

	case errors.Is(err, generation.ErrInvalidResponse):
		return "Response not in expected text format"

	case errors.Is(err, generation.ErrCommunication):
		return "Communication error with the answer service"

	default:
		// Unmatched provider error: the original message is the contract.
		return err.Error()
	}
}
