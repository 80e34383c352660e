package exception

import (
	"errors"
	"fmt"
	"time"
)

// ApplicationError handles application level errors.
// Details carries itemized messages (e.g. one per invalid traveler field) and
// RedirectTo/RedirectAfter tell the client where to navigate after showing the error.
type ApplicationError struct {
	Message       string
	StatusCode    int
	Cause         error
	Details       []string
	RedirectTo    string
	RedirectAfter time.Duration
}

// Error interface implementation.
func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	if e.Cause == nil {
		return errors.New(e.Message)
	}

	return e.Cause
}

// Is matches on message only, so a sentinel still matches after a cause or details are attached.
func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	return e.Message == targetErr.Message
}

// ErrorCode returns error code for an application error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}

// WithCause returns a copy of the error wrapping cause.
func (e ApplicationError) WithCause(cause error) ApplicationError {
	e.Cause = cause
	return e
}

// WithDetails returns a copy of the error carrying itemized details.
func (e ApplicationError) WithDetails(details []string) ApplicationError {
	e.Details = details
	return e
}
