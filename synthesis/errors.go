package synthesis

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates synthesis failures for logging and metrics.
// Both kinds are recovered at item granularity by the ingestion loop.
type ErrorKind int

const (
	// KindTransport marks model-unreachable and timeout failures.
	KindTransport ErrorKind = iota + 1
	// KindMalformed marks responses that could not be coerced into
	// valid structured content after all repair heuristics.
	KindMalformed
)

// Error is the single failure type the synthesizer raises. RawResponse
// carries the unprocessed model output (empty for transport failures)
// so malformed responses can be diagnosed offline.
type Error struct {
	Kind        ErrorKind
	RawResponse string
	Err         error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTransport:
		return fmt.Sprintf("synthesis: model transport failed: %v", e.Err)
	case KindMalformed:
		return fmt.Sprintf("synthesis: malformed model output: %v", e.Err)
	default:
		return fmt.Sprintf("synthesis: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// transportError wraps a model transport failure.
func transportError(err error) *Error {
	return &Error{Kind: KindTransport, Err: err}
}

// malformedError wraps an unrecoverable parse failure, retaining the raw
// response text.
func malformedError(raw string, err error) *Error {
	return &Error{Kind: KindMalformed, RawResponse: raw, Err: err}
}

// AsError extracts a *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var se *Error
	ok := errors.As(err, &se)
	return se, ok
}
