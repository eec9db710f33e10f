package repository

import (
	"context"

	"github.com/Du7chy/Seedlings/internal/domain"
)

// Catalog is the read side of the content tables. Seeds are returned with
// their loot entries loaded; content only changes through authoring, so
// callers may cache results.
type Catalog interface {
	GetSeed(ctx context.Context, seedID int) (*domain.Seed, error)
	ListSeeds(ctx context.Context) ([]domain.Seed, error)
	GetPlant(ctx context.Context, plantID int) (*domain.Plant, error)
	ListPlants(ctx context.Context) ([]domain.Plant, error)
}
