package repository

import (
	"context"

	"github.com/Du7chy/Seedlings/internal/domain"
)

// Economy defines persistence for the currency ledger and the seed/plant
// inventories.
type Economy interface {
	GetBalance(ctx context.Context, playerID string) (int, error)
	GetInventory(ctx context.Context, playerID string) (*domain.Inventory, error)
	BeginTx(ctx context.Context) (EconomyTx, error)
}

// EconomyTx is one ledger/inventory transaction. Balance and stock reads
// inside the transaction take row locks so concurrent composite operations
// serialize instead of losing updates.
type EconomyTx interface {
	Tx

	GetBalanceForUpdate(ctx context.Context, playerID string) (int, error)
	SetBalance(ctx context.Context, playerID string, balance int) error

	GetSeedStockForUpdate(ctx context.Context, playerID string, seedID int) (int, error)
	// SetSeedStock persists the new quantity, deleting the row at zero.
	SetSeedStock(ctx context.Context, playerID string, seedID, quantity int) error

	InsertPlantRecord(ctx context.Context, record *domain.PlantRecord) (int, error)
	GetPlantRecordForUpdate(ctx context.Context, recordID int) (*domain.PlantRecord, error)
	DeletePlantRecord(ctx context.Context, recordID int) error
}
