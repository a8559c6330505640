package ai

import "context"

// Completer submits one analysis prompt and returns the raw model text. The
// caller is responsible for extracting structure from the response.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	// ModelVersion identifies the backing model for persistence.
	ModelVersion() string
}
