// Package providers implements the text-generation collaborator behind the
// NPC engine. The engine sees a single Responder contract; whether a live
// model API or the canned script answers is the host's choice.
package providers

import "context"

// Responder turns an assembled persona prompt into the raw three-section
// response text. Implementations own their transport concerns (timeouts,
// retries, auth); the engine treats any returned error as collaborator
// unavailability and substitutes its fallback text.
type Responder interface {
	// Generate produces response text for the prompt.
	Generate(ctx context.Context, prompt string) (string, error)
	// Name identifies the backend for logs and status output.
	Name() string
}
