package api

import (
	"errors"
	"fmt"
)

var errMissingData = errors.New(`response has no "data" field`)

// NetworkError covers transport failures and non-200 responses.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("GET %s: API error: %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// MalformedResponseError means the body could not be decoded into the
// expected shape.
type MalformedResponseError struct {
	URL string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("GET %s: malformed response: %v", e.URL, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
