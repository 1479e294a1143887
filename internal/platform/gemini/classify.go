package gemini

import (
	"fmt"
	"strings"

	"github.com/jairajrenjith/Witti/internal/generation"
)

// ClassifyProviderError maps a raw provider error onto the closed error set
// in the generation package, using case-insensitive substring matching on the
// error message in priority order:
//
//  1. "api key not valid" or "permission denied" → ErrInvalidCredential
//  2. "quota"                                    → ErrQuotaExceeded
//  3. "model not found"                          → ErrModelNotFound
//  4. any other non-empty message                → passed through unchanged
//  5. no usable message at all                   → ErrCommunication
//
// Substring matching on provider wording is fragile by nature, which is why
// the mapping lives in this one pure function. A nil error maps to nil.
func ClassifyProviderError(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "api key not valid"),
		strings.Contains(lower, "permission denied"):
		return fmt.Errorf("%w: %s", generation.ErrInvalidCredential, msg)

	case strings.Contains(lower, "quota"):
		return fmt.Errorf("%w: %s", generation.ErrQuotaExceeded, msg)

	case strings.Contains(lower, "model not found"):
		return fmt.Errorf("%w: %s", generation.ErrModelNotFound, msg)

	case strings.TrimSpace(msg) != "":
		// Unknown category: preserve the original message.
		return err

	default:
		return generation.ErrCommunication
	}
}
