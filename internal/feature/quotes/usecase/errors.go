package usecase

import "errors"

// ErrQuoteNotFound is returned when no quote exists for a symbol.
var ErrQuoteNotFound = errors.New("quote not found")
