package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable wraps transport failures: the exchange never completed.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized matches a StatusError carrying 401 or 403.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrMalformedResponse wraps a success response whose body could not
	// be decoded.
	ErrMalformedResponse = errors.New("malformed response")
)

// StatusError is a completed exchange that the server answered with a
// non-success status. Detail is the server's message, if it sent one.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server responded %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("server responded %d", e.Status)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden)
}
