package economy

import (
	"context"
	"fmt"

	"github.com/Du7chy/Seedlings/internal/catalog"
	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/event"
	"github.com/Du7chy/Seedlings/internal/repository"
)

// PurchaseResult is returned after a committed seed purchase.
type PurchaseResult struct {
	SeedName   string `json:"seed_name"`
	Quantity   int    `json:"quantity"`
	TotalCost  int    `json:"total_cost"`
	NewBalance int    `json:"new_balance"`
}

// SaleResult is returned after a committed plant sale.
type SaleResult struct {
	PlantName  string `json:"plant_name"`
	Value      int    `json:"value"`
	NewBalance int    `json:"new_balance"`
}

// Service defines the interface for currency and inventory operations.
type Service interface {
	BuySeed(ctx context.Context, playerID, seedName string, quantity int) (*PurchaseResult, error)
	SellPlant(ctx context.Context, playerID string, recordID int) (*SaleResult, error)
	GetBalance(ctx context.Context, playerID string) (int, error)
	GetInventory(ctx context.Context, playerID string) (*domain.Inventory, error)
}

type service struct {
	repo      repository.Economy
	catalog   catalog.Service
	publisher event.Bus
}

// NewService creates a new economy service.
func NewService(repo repository.Economy, cat catalog.Service, publisher event.Bus) Service {
	return &service{
		repo:      repo,
		catalog:   cat,
		publisher: publisher,
	}
}

func (s *service) GetBalance(ctx context.Context, playerID string) (int, error) {
	balance, err := s.repo.GetBalance(ctx, playerID)
	if err != nil {
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

func (s *service) GetInventory(ctx context.Context, playerID string) (*domain.Inventory, error) {
	inventory, err := s.repo.GetInventory(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	return inventory, nil
}
