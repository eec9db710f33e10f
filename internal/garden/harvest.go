package garden

import (
	"context"
	"fmt"

	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/event"
	"github.com/Du7chy/Seedlings/internal/logger"
	"github.com/Du7chy/Seedlings/internal/loot"
	"github.com/Du7chy/Seedlings/internal/repository"
)

// Harvest consumes a mature growing plant and converts it into an
// inventory plant record. The instance row is locked and re-verified
// inside the transaction, so of any number of concurrent harvests of the
// same plant exactly one succeeds; losers observe the row gone. The sell
// value is rolled here and frozen on the record.
func (s *service) Harvest(ctx context.Context, playerID string, growingPlantID int) (*domain.HarvestResult, error) {
	log := logger.FromContext(ctx)
	log.Info("Harvest called", "playerID", playerID, "growingPlantID", growingPlantID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	plant, err := tx.GetGrowingPlantForUpdate(ctx, growingPlantID)
	if err != nil {
		return nil, err
	}
	if plant.PlayerID != playerID {
		return nil, fmt.Errorf("%w: growing plant %d", domain.ErrNotOwned, growingPlantID)
	}

	// Readiness is re-verified under the row lock, not trusted from any
	// earlier read.
	now := s.now()
	if !plant.IsHarvestable(now) {
		return nil, &domain.NotReadyError{RemainingSeconds: plant.TimeRemaining(now)}
	}

	seed, err := s.catalog.GetSeed(ctx, plant.SeedID)
	if err != nil {
		return nil, err
	}

	table, err := loot.NewTable(seed.LootEntries)
	if err != nil {
		return nil, err
	}
	plantDef, err := s.catalog.GetPlant(ctx, table.Sample(s.rnd))
	if err != nil {
		return nil, err
	}

	value := rollInclusive(s.rnd, plantDef.MinValue, plantDef.MaxValue)
	record := &domain.PlantRecord{
		PlayerID:  playerID,
		PlantID:   plantDef.ID,
		PlantName: plantDef.Name,
		Rarity:    plantDef.Rarity,
		Value:     value,
	}
	if record.ID, err = tx.InsertPlantRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to insert plant record: %w", err)
	}

	if err := tx.RecordDiscovery(ctx, playerID, plantDef.ID, now); err != nil {
		return nil, fmt.Errorf("failed to record discovery: %w", err)
	}

	if err := tx.DeleteGrowingPlant(ctx, growingPlantID); err != nil {
		return nil, fmt.Errorf("failed to remove growing plant: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event.NewPlantHarvestedEvent(playerID, growingPlantID, plantDef.Name, value)); err != nil {
			log.Warn("Failed to publish plant.harvested event", "error", err)
		}
	}

	log.Info("Plant harvested", "playerID", playerID, "growingPlantID", growingPlantID, "plant", plantDef.Name, "value", value)
	return &domain.HarvestResult{Plant: *plantDef, Value: value}, nil
}
