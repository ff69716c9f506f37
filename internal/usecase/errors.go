package usecase

import "errors"

// All sentinel errors here are validation or user-input conditions, never
// systemic failures; the worst outcome of any operation is "state not updated
// as requested".
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrDuplicateName = errors.New("name already in use")
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrOwnerDelete   = errors.New("owner profile cannot be deleted")
	ErrOwnerExists   = errors.New("owner profile already exists")
	ErrMediaIO       = errors.New("media store failure")
)
