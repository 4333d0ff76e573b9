package contact

import (
	"errors"
	"fmt"
)

// ErrCaptchaFailed means the verification endpoint answered, and the answer
// was "no". Treated as a client error, not an upstream outage.
var ErrCaptchaFailed = errors.New("captcha verification failed")

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// UpstreamError wraps a failure talking to the captcha or mail collaborator.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
