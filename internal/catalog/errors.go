package catalog

import (
	"errors"
	"fmt"
)

// ErrUnavailable matches every catalog failure via errors.Is.
var ErrUnavailable = errors.New("catalog unavailable")

// NetworkError reports a transport failure or a non-success HTTP status.
type NetworkError struct {
	Op         string
	StatusCode int // 0 when the request never got a response
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Is makes NetworkError match ErrUnavailable.
func (e *NetworkError) Is(target error) bool { return target == ErrUnavailable }

// APIError reports a well-formed response whose envelope signals failure.
type APIError struct {
	Op      string
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: api error %d: %s", e.Op, e.Code, e.Message)
}

// Is makes APIError match ErrUnavailable.
func (e *APIError) Is(target error) bool { return target == ErrUnavailable }
