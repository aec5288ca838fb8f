package usecase

import "errors"

// ErrSymbolNotFound is returned when a code is not in the catalog.
var ErrSymbolNotFound = errors.New("symbol not found")
