// Package api contains the HTTP handlers for the quip service: request
// decoding and validation, invocation of the application service, and
// mapping of the generation error taxonomy onto HTTP status codes and safe
// user-facing messages.
package api
