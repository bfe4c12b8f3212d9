package repositories

import (
	"errors"
)

// ErrNotFound is returned when an operation targets an id that does not exist.
var ErrNotFound = errors.New("record not found")

// ErrInvalidRecord wraps every domain-validation failure. Validation lives at
// the repository entry points so no caller can write invalid data.
var ErrInvalidRecord = errors.New("invalid record")
