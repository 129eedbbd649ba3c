package api

import (
	"errors"
	"fmt"
)

// ErrAborted is returned when a request was cancelled because a newer
// request for the same resource superseded it.
var ErrAborted = errors.New("request aborted")

// RequestError is returned for responses with a status outside [200,299].
type RequestError struct {
	Path   string
	Body   string
	Status int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// NetworkError is returned when the request never produced a response.
type NetworkError struct {
	Err  error
	Path string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error requesting %s: %v", e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a JSON payload cannot be decoded.
type ParseError struct {
	Err  error
	Path string
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid JSON payload: %v", e.Err)
	}
	return fmt.Sprintf("invalid JSON from %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsAborted reports whether err is a superseded request.
func IsAborted(err error) bool {
	return errors.Is(err, ErrAborted)
}
