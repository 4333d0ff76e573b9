package booking

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("record not found")

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("media upload failed: %v", e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }
