// Package service provides the application-level service for answering user
// questions with quips. It sits between the HTTP layer and the generation
// port, owning input validation and request bookkeeping.
package service
