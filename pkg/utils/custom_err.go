package utils

import (
	"errors"
	"fmt"
)

var (
	ErrPlaceNotFound   = errors.New("place not found")
	ErrUnknownLanguage = errors.New("unknown language")
	ErrDatabaseError   = errors.New("database error")
)

// RequestError is returned when an upstream API answers with a non-2xx status.
type RequestError struct {
	StatusCode int
	StatusText string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %d %s", e.StatusCode, e.StatusText)
}

// NetworkError wraps transport level failures (dial, TLS, reading or decoding the body).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return "network error"
	}
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ValidationError reports a missing or malformed input detected before a call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// EmptyResultError is returned when an API answers with a well-formed but empty list
// and the caller needs at least one entry.
type EmptyResultError struct {
	Resource string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no %s returned", e.Resource)
}
