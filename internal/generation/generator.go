package generation

import "context"

// QuipGenerator defines the interface for generating a short humorous answer
// to a user question. This interface serves as the boundary between the
// application core and the external AI service, following the hexagonal
// architecture pattern.
type QuipGenerator interface {
	// GenerateQuip produces a short answer for the given question.
	// It returns the trimmed answer text, or an error from the closed set
	// defined in errors.go. Implementations make a single attempt per call:
	// no retries, no timeout beyond what the underlying transport enforces.
	GenerateQuip(ctx context.Context, question string) (string, error)
}
