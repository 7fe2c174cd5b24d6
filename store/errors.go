package store

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateSource indicates an article with the same source URL
	// already exists. The dedup gate normally prevents this; it can still
	// surface when two runs race on the same item.
	ErrDuplicateSource = errors.New("article with this source URL already exists")

	// ErrClosed indicates an operation on a closed store.
	ErrClosed = errors.New("store is closed")
)
