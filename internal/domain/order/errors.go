package order

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced order does not exist.
var ErrNotFound = errors.New("order not found")

// ValidationError indicates malformed or semantically invalid input. The
// request is rejected before anything is written.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
