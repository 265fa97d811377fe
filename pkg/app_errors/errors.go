package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrStorageWrite  = errors.New("storage write failed")
)

// ValidationError carries a message descriptive enough to return to the
// caller verbatim, unlike the sentinel errors above.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// AsValidation reports whether err is a ValidationError and returns it.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
