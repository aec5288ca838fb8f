package usecase

import (
	"errors"

	"stock_synth/internal/feature/comparison/domain/entity"
)

var (
	ErrWorkspaceNotFound = errors.New("comparison workspace not found")
	ErrSymbolNotFound    = errors.New("symbol not found")
	ErrLastStock         = entity.ErrLastStock
)
