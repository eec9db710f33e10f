package economy

import (
	"context"
	"fmt"

	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/event"
	"github.com/Du7chy/Seedlings/internal/logger"
	"github.com/Du7chy/Seedlings/internal/repository"
)

// BuySeed purchases quantity of a seed at full price. The purchase is
// all-or-nothing: if the player cannot afford the full quantity the
// transaction fails with ErrInsufficientFunds and nothing changes.
func (s *service) BuySeed(ctx context.Context, playerID, seedName string, quantity int) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBuySeedCalled, "playerID", playerID, "seed", seedName, "quantity", quantity)

	// 1. Validate request
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	// 2. Resolve the seed definition
	seed, err := s.catalog.GetSeedByName(ctx, seedName)
	if err != nil {
		return nil, err
	}
	totalCost := seed.Cost * quantity

	// 3. Begin transaction
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// 4. Check funds under lock
	balance, err := tx.GetBalanceForUpdate(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	if totalCost > balance {
		return nil, fmt.Errorf("%w: %d %s costs %d, balance is %d",
			domain.ErrInsufficientFunds, quantity, seedName, totalCost, balance)
	}

	// 5. Debit and credit stock
	newBalance := balance - totalCost
	if err := tx.SetBalance(ctx, playerID, newBalance); err != nil {
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}

	stock, err := tx.GetSeedStockForUpdate(ctx, playerID, seed.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get seed stock: %w", err)
	}
	if err := tx.SetSeedStock(ctx, playerID, seed.ID, stock+quantity); err != nil {
		return nil, fmt.Errorf("failed to update seed stock: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	// 6. Finalize
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event.NewSeedBoughtEvent(playerID, seedName, quantity, totalCost, newBalance)); err != nil {
			log.Warn("Failed to publish seed.bought event", "error", err)
		}
	}

	log.Info(LogMsgSeedPurchased, "playerID", playerID, "seed", seedName, "quantity", quantity, "cost", totalCost, "balance", newBalance)
	return &PurchaseResult{
		SeedName:   seedName,
		Quantity:   quantity,
		TotalCost:  totalCost,
		NewBalance: newBalance,
	}, nil
}
