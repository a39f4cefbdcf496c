package reaction

import "errors"

var (
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrQuoteGone        = errors.New("quote has been deleted")
	ErrReactionNotFound = errors.New("reaction not found")
)
