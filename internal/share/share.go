// Package share composes the payload a client shares after receiving a quip.
// The actual share mechanics (native share sheet, clipboard fallback) are
// client-side; the service only builds the text and the transient status the
// widget displays afterwards.
package share

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StatusTTL is how long the widget displays a share status before clearing
// it.
const StatusTTL = 2 * time.Second

// Status is the transient confirmation shown after a share attempt. The ID
// lets the widget cancel a stale clear timer when statuses overlap.
type Status struct {
	ID           string `json:"id"`
	Message      string `json:"message"`
	Text         string `json:"text"`
	ClearAfterMS int64  `json:"clear_after_ms"`
}

// BuildText composes the share text for an answered question.
// It is a pure function of its inputs.
func BuildText(question, answer string) string {
	return fmt.Sprintf("Q: %s\nA: %s\n\nAsked via Witti.", question, answer)
}

// NewStatus builds a share status carrying the composed text and a fresh id.
func NewStatus(message, text string) Status {
	return Status{
		ID:           uuid.NewString(),
		Message:      message,
		Text:         text,
		ClearAfterMS: StatusTTL.Milliseconds(),
	}
}
