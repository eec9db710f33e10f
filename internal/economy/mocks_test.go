package economy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Du7chy/Seedlings/internal/catalog"
	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/repository"
)

// MockEconomyRepository is a mock implementation of repository.Economy
type MockEconomyRepository struct {
	mock.Mock
}

func (m *MockEconomyRepository) GetBalance(ctx context.Context, playerID string) (int, error) {
	args := m.Called(ctx, playerID)
	return args.Int(0), args.Error(1)
}

func (m *MockEconomyRepository) GetInventory(ctx context.Context, playerID string) (*domain.Inventory, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockEconomyRepository) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.EconomyTx), args.Error(1)
}

// MockEconomyTx is a mock implementation of repository.EconomyTx
type MockEconomyTx struct {
	mock.Mock
}

func (m *MockEconomyTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEconomyTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEconomyTx) GetBalanceForUpdate(ctx context.Context, playerID string) (int, error) {
	args := m.Called(ctx, playerID)
	return args.Int(0), args.Error(1)
}

func (m *MockEconomyTx) SetBalance(ctx context.Context, playerID string, balance int) error {
	args := m.Called(ctx, playerID, balance)
	return args.Error(0)
}

func (m *MockEconomyTx) GetSeedStockForUpdate(ctx context.Context, playerID string, seedID int) (int, error) {
	args := m.Called(ctx, playerID, seedID)
	return args.Int(0), args.Error(1)
}

func (m *MockEconomyTx) SetSeedStock(ctx context.Context, playerID string, seedID, quantity int) error {
	args := m.Called(ctx, playerID, seedID, quantity)
	return args.Error(0)
}

func (m *MockEconomyTx) InsertPlantRecord(ctx context.Context, record *domain.PlantRecord) (int, error) {
	args := m.Called(ctx, record)
	return args.Int(0), args.Error(1)
}

func (m *MockEconomyTx) GetPlantRecordForUpdate(ctx context.Context, recordID int) (*domain.PlantRecord, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlantRecord), args.Error(1)
}

func (m *MockEconomyTx) DeletePlantRecord(ctx context.Context, recordID int) error {
	args := m.Called(ctx, recordID)
	return args.Error(0)
}

// MockCatalogService is a mock implementation of catalog.Service
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetSeed(ctx context.Context, seedID int) (*domain.Seed, error) {
	args := m.Called(ctx, seedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seed), args.Error(1)
}

func (m *MockCatalogService) GetSeedByName(ctx context.Context, name string) (*domain.Seed, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seed), args.Error(1)
}

func (m *MockCatalogService) GetPlant(ctx context.Context, plantID int) (*domain.Plant, error) {
	args := m.Called(ctx, plantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plant), args.Error(1)
}

func (m *MockCatalogService) GetPlantByName(ctx context.Context, name string) (*domain.Plant, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plant), args.Error(1)
}

func (m *MockCatalogService) ListSeeds(ctx context.Context) ([]catalog.SeedListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.SeedListing), args.Error(1)
}

func (m *MockCatalogService) ListPlants(ctx context.Context) ([]catalog.PlantListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.PlantListing), args.Error(1)
}

func (m *MockCatalogService) InvalidateCache() {
	m.Called()
}
