package errs

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrBookUnavailable = errors.New("book is not available")
	ErrInvalidStars    = errors.New("stars must be between 1 and 5")
	ErrAlreadyExists   = errors.New("already exists")
)

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
