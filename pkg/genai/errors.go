package genai

import "errors"

// ErrNotConfigured is returned when no generation credential is configured
// for the requested provider. Fatal to the current request; surfaced
// verbatim to the caller and never retried.
var ErrNotConfigured = errors.New("no configuration")

// TransportError wraps a failed call to the external service. Not retried
// automatically; the caller may resubmit.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return "generation failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// malformedBodyLimit bounds how much raw body a MalformedResponseError
// carries for diagnostics.
const malformedBodyLimit = 512

// MalformedResponseError means the external service returned content the
// provider could not parse. Body holds a truncated copy of the raw
// response for diagnostics.
type MalformedResponseError struct {
	Provider string
	Err      error
	Body     string
}

func (e *MalformedResponseError) Error() string {
	return "generation failed: malformed response: " + e.Err.Error()
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// NewMalformedResponseError builds a MalformedResponseError, truncating
// the raw body to a diagnostic-sized excerpt.
func NewMalformedResponseError(provider string, err error, body []byte) *MalformedResponseError {
	excerpt := string(body)
	if len(excerpt) > malformedBodyLimit {
		excerpt = excerpt[:malformedBodyLimit]
	}
	return &MalformedResponseError{Provider: provider, Err: err, Body: excerpt}
}
