package services

import "errors"

// MissingFieldError reports a required request field that was absent or
// blank. Controllers translate it to a 400.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return e.Field + " is required"
}

// ErrUserExists is returned when a create collides with an existing email.
var ErrUserExists = errors.New("User already exists")
