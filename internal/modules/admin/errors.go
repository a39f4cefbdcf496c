package admin

import "errors"

var (
	ErrQuoteNotFound  = errors.New("quote not found")
	ErrNotInTrash     = errors.New("quote is not in the trash")
	ErrNothingToPurge = errors.New("quote already purged")
)
