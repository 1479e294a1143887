// Package generation provides the interface and error taxonomy for producing
// quips via an external generative-text service. It abstracts the details of
// the provider integration (Gemini), allowing the application to answer user
// questions without coupling to a specific external service.
package generation
