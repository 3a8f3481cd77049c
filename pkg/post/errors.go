package post

import (
	"errors"
	"fmt"
)

// ErrRequestFailed is the only failure the API client reports: the transport
// failed, the server answered with a non-2xx status, or the body didn't
// decode.
var ErrRequestFailed = errors.New("post: request failed")

type RequestError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("post/repo: %s: unexpected status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("post/repo: %s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

func (e *RequestError) Is(target error) bool { return target == ErrRequestFailed }
