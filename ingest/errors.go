package ingest

import "errors"

var (
	ErrFetcherRequired     = errors.New("fetcher is required")
	ErrStoreRequired       = errors.New("store is required")
	ErrSynthesizerRequired = errors.New("synthesizer is required")
	ErrIndexerRequired     = errors.New("indexer is required")
)
