package collection

import (
	"errors"
	"fmt"
)

var ErrInvalidFormat = errors.New("invalid flatfile")

// InvalidFormatError is returned by OpenCollection when the flatfile cannot be
// read or its header does not match the schema. It matches ErrInvalidFormat
// with errors.Is.
type InvalidFormatError struct {
	Filename string
	Reason   string
	Err      error
}

func (e *InvalidFormatError) Error() string {
	msg := fmt.Sprintf("invalid flatfile '%s': %s", e.Filename, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}
