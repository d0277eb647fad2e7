package domain

import "errors"

// ValidationError represents a task that was rejected before any network
// activity took place.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// ErrMissingInputs is returned when any required task field is empty.
// The text is part of the worker wire contract and must not change.
var ErrMissingInputs = &ValidationError{
	msg: "Missing required inputs: baseRef, headRef, owner, repo, or githubToken",
}

// IsValidation checks if an error is or wraps a ValidationError.
func IsValidation(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
