package repository

import (
	"context"
	"time"

	"github.com/Du7chy/Seedlings/internal/domain"
)

// Garden defines persistence for growing plant instances.
type Garden interface {
	GetGrowingPlants(ctx context.Context, playerID string) ([]domain.GrowingPlant, error)
	// MarkPlantReady persists the readiness latch outside a composite
	// operation (lazy evaluation on listing, or the ready sweep).
	MarkPlantReady(ctx context.Context, growingPlantID int) error
	// ListDuePlants returns un-latched plants whose maturity instant is at
	// or before the given time.
	ListDuePlants(ctx context.Context, now time.Time) ([]domain.GrowingPlant, error)
	// GetCodex returns the player's discovery stats, one entry per plant
	// harvested at least once, oldest discovery first.
	GetCodex(ctx context.Context, playerID string) ([]domain.CodexEntry, error)
	BeginTx(ctx context.Context) (GardenTx, error)
}

// GardenTx is one planting or harvest transaction. Planting shares the
// seed-stock lock discipline with EconomyTx so stock-decrement and
// instance-create commit as a unit; harvest locks the instance row so at
// most one concurrent harvest succeeds.
type GardenTx interface {
	Tx

	GetSeedStockForUpdate(ctx context.Context, playerID string, seedID int) (int, error)
	SetSeedStock(ctx context.Context, playerID string, seedID, quantity int) error

	InsertGrowingPlant(ctx context.Context, plant *domain.GrowingPlant) (int, error)
	// GetGrowingPlantForUpdate returns ErrGrowingPlantNotFound when the row
	// is absent (including when a concurrent harvest already consumed it).
	GetGrowingPlantForUpdate(ctx context.Context, growingPlantID int) (*domain.GrowingPlant, error)
	DeleteGrowingPlant(ctx context.Context, growingPlantID int) error

	InsertPlantRecord(ctx context.Context, record *domain.PlantRecord) (int, error)
	// RecordDiscovery upserts the player's codex entry for the plant:
	// increments times_grown, stamps last_grown, and sets first_discovered
	// when this is the first time the plant has been grown.
	RecordDiscovery(ctx context.Context, playerID string, plantID int, grownAt time.Time) error
}
