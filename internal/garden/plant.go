package garden

import (
	"context"
	"fmt"

	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/event"
	"github.com/Du7chy/Seedlings/internal/logger"
	"github.com/Du7chy/Seedlings/internal/repository"
)

// PlantSeed consumes one seed from the player's stock and creates a
// growing plant instance. The growth duration is drawn once here, uniform
// over the seed's [MinTime, MaxTime] inclusive, and never re-rolled.
// Stock decrement and instance creation commit as a unit.
func (s *service) PlantSeed(ctx context.Context, playerID, seedName string) (*domain.GrowingPlant, error) {
	log := logger.FromContext(ctx)
	log.Info("PlantSeed called", "playerID", playerID, "seed", seedName)

	seed, err := s.catalog.GetSeedByName(ctx, seedName)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	stock, err := tx.GetSeedStockForUpdate(ctx, playerID, seed.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get seed stock: %w", err)
	}
	if stock < 1 {
		return nil, fmt.Errorf("%w: no %s in inventory", domain.ErrInsufficientStock, seedName)
	}
	if err := tx.SetSeedStock(ctx, playerID, seed.ID, stock-1); err != nil {
		return nil, fmt.Errorf("failed to update seed stock: %w", err)
	}

	plant := &domain.GrowingPlant{
		PlayerID:   playerID,
		SeedID:     seed.ID,
		PlantedAt:  s.now(),
		GrowthTime: rollInclusive(s.rnd, seed.MinTime, seed.MaxTime),
	}
	plant.ID, err = tx.InsertGrowingPlant(ctx, plant)
	if err != nil {
		return nil, fmt.Errorf("failed to create growing plant: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event.NewSeedPlantedEvent(playerID, plant.ID, seedName)); err != nil {
			log.Warn("Failed to publish plant.planted event", "error", err)
		}
	}

	log.Info("Seed planted", "playerID", playerID, "seed", seedName, "growingPlantID", plant.ID, "growthTime", plant.GrowthTime)
	return plant, nil
}
