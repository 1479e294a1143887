// Package gemini provides an implementation of the generation.QuipGenerator
// interface that uses Google's Gemini API to answer user questions with
// short, confidently wrong quips.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application core to Google's external Gemini AI service
// without exposing the details of the external service to the rest of the
// application.
//
// Key components:
//
// 1. QuipGenerator:
//   - Implements the generation.QuipGenerator interface
//   - Establishes the client exactly once at startup; a missing or invalid
//     API key is recorded as a permanent initialization error instead of
//     aborting the process
//   - Makes a single generation attempt per call, with no retries
//
// 2. Prompt construction:
//   - BuildPrompt deterministically embeds the question into a fixed
//     instruction template (short, confident, comedically false)
//
// 3. Error classification:
//   - ClassifyProviderError maps raw provider error text onto the closed
//     error set in the generation package via case-insensitive substring
//     matching, kept as a pure function so wording adjustments never touch
//     call logic
package gemini
