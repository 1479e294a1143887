package generation

import "errors"

// Common errors returned by quip generation. Callers check these with
// errors.Is; the API layer maps them to HTTP status codes.
var (
	// ErrNotConfigured is returned when the provider client could not be
	// initialized at startup (missing or malformed API key, or client
	// construction failure). The condition is permanent for the process
	// lifetime: once recorded it short-circuits every call.
	ErrNotConfigured = errors.New("generation service is not configured")

	// ErrClientUnavailable is the defensive fallback when no client exists
	// and no initialization error was recorded either.
	ErrClientUnavailable = errors.New("generation client is not initialized")

	// ErrInvalidResponse is returned when the provider response carries no
	// usable text payload.
	ErrInvalidResponse = errors.New("response not in expected text format")

	// ErrInvalidCredential is classified from provider errors mentioning an
	// invalid API key or missing permissions.
	ErrInvalidCredential = errors.New("invalid API key or insufficient permissions")

	// ErrQuotaExceeded is classified from provider errors mentioning quota.
	ErrQuotaExceeded = errors.New("generation quota exceeded")

	// ErrModelNotFound is classified from provider errors reporting an
	// unknown model identifier.
	ErrModelNotFound = errors.New("generation model not found")

	// ErrCommunication is returned for a provider error that carries no
	// usable message at all.
	ErrCommunication = errors.New("communication error with the generation service")
)
