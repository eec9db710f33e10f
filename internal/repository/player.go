package repository

import (
	"context"

	"github.com/Du7chy/Seedlings/internal/domain"
)

// Player defines player persistence.
type Player interface {
	CreatePlayer(ctx context.Context, player *domain.Player) error
	GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error)
	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)
}
