package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidDocument is returned when a stored document does not decode into a valid record.
	ErrInvalidDocument = errors.New("invalid document")
)
