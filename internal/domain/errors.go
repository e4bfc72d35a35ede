package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is wrapped by every record validation failure.
	ErrValidation = errors.New("validation error")

	// ErrUnknownRoomType is returned when a room type string is outside {Quad, Triple, Twin}.
	ErrUnknownRoomType = errors.New("unknown room type")
)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
