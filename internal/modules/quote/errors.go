package quote

import "errors"

var (
	ErrQuoteNotFound = errors.New("quote not found")
	ErrQuoteGone     = errors.New("quote has been deleted")
	ErrForbidden     = errors.New("forbidden")
	ErrTermNotFound  = errors.New("category or tag not found")
	ErrValidation    = errors.New("validation failed")
)
