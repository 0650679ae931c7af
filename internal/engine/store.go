package engine

import (
	"context"

	"github.com/danielldt/unisonLegends.50/internal/domain"
	"github.com/danielldt/unisonLegends.50/internal/engine/handlers"
)

// Store - контракт долговременного хранилища для сервиса сессий.
// Его реализует sqlite-хранилище; тесты подставляют заглушку.
type Store interface {
	handlers.SlotStore

	LoadPlayer(ctx context.Context, playerID string) (*domain.PlayerState, error)
	SavePlayer(ctx context.Context, p *domain.PlayerState) error
	AccountStatus(ctx context.Context, playerID string) (string, error)
}
