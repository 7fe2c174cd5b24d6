package index

import (
	"errors"
	"fmt"
)

var (
	// ErrEmbedderRequired indicates no embedder was supplied.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrInvalidMaxAttempts indicates a non-positive retry attempt count.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be > 0")
)

// RebuildError reports a failed index rebuild. The previous generation
// remains live and queryable.
type RebuildError struct {
	Err error
}

func (e *RebuildError) Error() string {
	return fmt.Sprintf("index rebuild failed, previous generation still live: %v", e.Err)
}

func (e *RebuildError) Unwrap() error {
	return e.Err
}
