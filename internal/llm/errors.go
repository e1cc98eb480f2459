package llm

import "fmt"

// EmbeddingError represents a failure from the embedding provider
type EmbeddingError struct {
	Model string
	Err   error
}

func (e *EmbeddingError) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("embedding failed (model %s): %v", e.Model, e.Err)
	}
	return fmt.Sprintf("embedding failed: %v", e.Err)
}

func (e *EmbeddingError) Unwrap() error {
	return e.Err
}
