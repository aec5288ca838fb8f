package usecase

import "errors"

var ErrCompanyNotFound = errors.New("company not found")
