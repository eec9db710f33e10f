package garden

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Du7chy/Seedlings/internal/catalog"
	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/repository"
)

// MockGardenRepository is a mock implementation of repository.Garden
type MockGardenRepository struct {
	mock.Mock
}

func (m *MockGardenRepository) GetGrowingPlants(ctx context.Context, playerID string) ([]domain.GrowingPlant, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GrowingPlant), args.Error(1)
}

func (m *MockGardenRepository) MarkPlantReady(ctx context.Context, growingPlantID int) error {
	args := m.Called(ctx, growingPlantID)
	return args.Error(0)
}

func (m *MockGardenRepository) ListDuePlants(ctx context.Context, now time.Time) ([]domain.GrowingPlant, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GrowingPlant), args.Error(1)
}

func (m *MockGardenRepository) GetCodex(ctx context.Context, playerID string) ([]domain.CodexEntry, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CodexEntry), args.Error(1)
}

func (m *MockGardenRepository) BeginTx(ctx context.Context) (repository.GardenTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.GardenTx), args.Error(1)
}

// MockGardenTx is a mock implementation of repository.GardenTx
type MockGardenTx struct {
	mock.Mock
}

func (m *MockGardenTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGardenTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGardenTx) GetSeedStockForUpdate(ctx context.Context, playerID string, seedID int) (int, error) {
	args := m.Called(ctx, playerID, seedID)
	return args.Int(0), args.Error(1)
}

func (m *MockGardenTx) SetSeedStock(ctx context.Context, playerID string, seedID, quantity int) error {
	args := m.Called(ctx, playerID, seedID, quantity)
	return args.Error(0)
}

func (m *MockGardenTx) InsertGrowingPlant(ctx context.Context, plant *domain.GrowingPlant) (int, error) {
	args := m.Called(ctx, plant)
	return args.Int(0), args.Error(1)
}

func (m *MockGardenTx) GetGrowingPlantForUpdate(ctx context.Context, growingPlantID int) (*domain.GrowingPlant, error) {
	args := m.Called(ctx, growingPlantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GrowingPlant), args.Error(1)
}

func (m *MockGardenTx) DeleteGrowingPlant(ctx context.Context, growingPlantID int) error {
	args := m.Called(ctx, growingPlantID)
	return args.Error(0)
}

func (m *MockGardenTx) InsertPlantRecord(ctx context.Context, record *domain.PlantRecord) (int, error) {
	args := m.Called(ctx, record)
	return args.Int(0), args.Error(1)
}

func (m *MockGardenTx) RecordDiscovery(ctx context.Context, playerID string, plantID int, grownAt time.Time) error {
	args := m.Called(ctx, playerID, plantID, grownAt)
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
