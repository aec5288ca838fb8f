package usecase

import "errors"

// ErrNoSamples is returned when a symbol has no indicator data.
var ErrNoSamples = errors.New("no indicator samples")
