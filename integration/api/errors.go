package api

import "errors"

var (
	// ErrEmptyBaseURL is returned when the client is created without a base URL.
	ErrEmptyBaseURL = errors.New("api: empty base URL")
	// ErrInvalidBaseURL is returned when the base URL cannot be parsed.
	ErrInvalidBaseURL = errors.New("api: invalid base URL")
	// ErrDecodeResponse is returned when a success response body cannot be decoded.
	ErrDecodeResponse = errors.New("api: failed to decode response")
)

// Error carries the backend's human-readable failure detail for display.
// The detail is passed through unmodified; retry, if any, is a user decision.
type Error struct {
	Status int
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Detail
}
