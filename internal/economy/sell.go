package economy

import (
	"context"
	"fmt"

	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/event"
	"github.com/Du7chy/Seedlings/internal/logger"
	"github.com/Du7chy/Seedlings/internal/repository"
)

// SellPlant sells one harvested plant from the player's inventory,
// crediting the value that was frozen at harvest time. The record is
// removed so a plant can only be sold once.
func (s *service) SellPlant(ctx context.Context, playerID string, recordID int) (*SaleResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellPlantCalled, "playerID", playerID, "recordID", recordID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Lock the record; a concurrent sale of the same record serializes
	// here and the loser sees the row gone.
	record, err := tx.GetPlantRecordForUpdate(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record.PlayerID != playerID {
		return nil, fmt.Errorf("%w: plant record %d", domain.ErrNotOwned, recordID)
	}

	balance, err := tx.GetBalanceForUpdate(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	if err := tx.DeletePlantRecord(ctx, recordID); err != nil {
		return nil, fmt.Errorf("failed to remove plant record: %w", err)
	}

	newBalance := balance + record.Value
	if err := tx.SetBalance(ctx, playerID, newBalance); err != nil {
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event.NewPlantSoldEvent(playerID, record.PlantName, record.Value, newBalance)); err != nil {
			log.Warn("Failed to publish plant.sold event", "error", err)
		}
	}

	log.Info(LogMsgPlantSold, "playerID", playerID, "plant", record.PlantName, "value", record.Value, "balance", newBalance)
	return &SaleResult{
		PlantName:  record.PlantName,
		Value:      record.Value,
		NewBalance: newBalance,
	}, nil
}
