package catalog

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("record not found")

// ValidationError is a missing or malformed required field; no side effects
// have happened when one is returned.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func invalidf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// UploadError is a media-store failure during upload. Deletion failures are
// never surfaced this way; they are logged and swallowed.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("media upload failed: %v", e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
