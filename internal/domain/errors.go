package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrClockSkew         = errors.New("timestamp precedes recorded time")
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
	ErrAmbiguousID       = errors.New("ambiguous task id")
	ErrUnknownKey        = errors.New("unknown key")
	ErrAmbiguousKey      = errors.New("ambiguous key")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidStrategy   = errors.New("invalid sort strategy")
	ErrInvalidDuration   = errors.New("invalid duration")
	ErrInvalidDate       = errors.New("invalid date")
)
