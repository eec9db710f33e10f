package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Du7chy/Seedlings/internal/catalog"
	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/economy"
	"github.com/Du7chy/Seedlings/internal/room"
)

// MockGameService mocks the game facade.
type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) Register(ctx context.Context, username string) (*domain.Player, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockGameService) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockGameService) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockGameService) ListShopSeeds(ctx context.Context) ([]catalog.SeedListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.SeedListing), args.Error(1)
}

func (m *MockGameService) ListPlantCodex(ctx context.Context) ([]catalog.PlantListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.PlantListing), args.Error(1)
}

func (m *MockGameService) BuySeed(ctx context.Context, playerID, seedName string, quantity int) (*economy.PurchaseResult, error) {
	args := m.Called(ctx, playerID, seedName, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.PurchaseResult), args.Error(1)
}

func (m *MockGameService) SellPlant(ctx context.Context, playerID string, recordID int) (*economy.SaleResult, error) {
	args := m.Called(ctx, playerID, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.SaleResult), args.Error(1)
}

func (m *MockGameService) PlantSeed(ctx context.Context, playerID, seedName string) (*domain.GrowingPlant, error) {
	args := m.Called(ctx, playerID, seedName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GrowingPlant), args.Error(1)
}

func (m *MockGameService) GetGrowingPlants(ctx context.Context, playerID string) ([]domain.GrowingPlantView, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GrowingPlantView), args.Error(1)
}

func (m *MockGameService) Harvest(ctx context.Context, playerID string, growingPlantID int) (*domain.HarvestResult, error) {
	args := m.Called(ctx, playerID, growingPlantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HarvestResult), args.Error(1)
}

func (m *MockGameService) GetCodex(ctx context.Context, playerID string) ([]domain.CodexEntry, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CodexEntry), args.Error(1)
}

func (m *MockGameService) GetBalance(ctx context.Context, playerID string) (int, error) {
	args := m.Called(ctx, playerID)
	return args.Int(0), args.Error(1)
}

func (m *MockGameService) GetInventory(ctx context.Context, playerID string) (*domain.Inventory, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockGameService) CreateRoom(ctx context.Context, playerID, name string, isPrivate bool, maxMembers int) (*room.Detail, error) {
	args := m.Called(ctx, playerID, name, isPrivate, maxMembers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*room.Detail), args.Error(1)
}

func (m *MockGameService) JoinRoom(ctx context.Context, playerID string, roomID *int, joinCode string) (*room.Detail, error) {
	args := m.Called(ctx, playerID, roomID, joinCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*room.Detail), args.Error(1)
}

func (m *MockGameService) LeaveRoom(ctx context.Context, playerID string) error {
	args := m.Called(ctx, playerID)
	return args.Error(0)
}

func (m *MockGameService) SearchRooms(ctx context.Context, query string) ([]domain.RoomSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoomSummary), args.Error(1)
}

func (m *MockGameService) GetCurrentRoom(ctx context.Context, playerID string) (*room.Detail, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*room.Detail), args.Error(1)
}

func (m *MockGameService) SendChatMessage(ctx context.Context, playerID, content string) (*domain.ChatMessage, error) {
	args := m.Called(ctx, playerID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatMessage), args.Error(1)
}

func (m *MockGameService) ChatHistory(ctx context.Context, playerID string, limit int) ([]domain.ChatMessage, error) {
	args := m.Called(ctx, playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChatMessage), args.Error(1)
}
