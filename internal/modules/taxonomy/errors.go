package taxonomy

import "errors"

var (
	ErrNotFound   = errors.New("term not found")
	ErrValidation = errors.New("validation failed")
)
