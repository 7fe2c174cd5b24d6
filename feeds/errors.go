package feeds

import "errors"

var (
	// ErrNoSources is returned when a fetcher is constructed with an empty registry.
	ErrNoSources = errors.New("at least one feed source required")

	// ErrPageFetch indicates an article page could not be retrieved.
	// Callers treat it as a degraded enrichment, never as an item failure.
	ErrPageFetch = errors.New("article page fetch failed")
)
