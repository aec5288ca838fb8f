package usecase

import "errors"

// ErrInvalidDirection is returned for a board side other than gainers or losers.
var ErrInvalidDirection = errors.New("direction must be gainers or losers")
