package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Du7chy/Seedlings/internal/domain"
)

// MockUserService is a mock implementation of user.Service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, username string) (*domain.Player, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockUserService) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockUserService) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

// MockGardenService is a mock implementation of garden.Service
type MockGardenService struct {
	mock.Mock
}

func (m *MockGardenService) PlantSeed(ctx context.Context, playerID, seedName string) (*domain.GrowingPlant, error) {
	args := m.Called(ctx, playerID, seedName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GrowingPlant), args.Error(1)
}

func (m *MockGardenService) GetGrowingPlants(ctx context.Context, playerID string) ([]domain.GrowingPlantView, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GrowingPlantView), args.Error(1)
}

func (m *MockGardenService) Harvest(ctx context.Context, playerID string, growingPlantID int) (*domain.HarvestResult, error) {
	args := m.Called(ctx, playerID, growingPlantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HarvestResult), args.Error(1)
}

func (m *MockGardenService) GetCodex(ctx context.Context, playerID string) ([]domain.CodexEntry, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CodexEntry), args.Error(1)
}

func (m *MockGardenService) TimeRemaining(ctx context.Context, playerID string, growingPlantID int) (int, error) {
	args := m.Called(ctx, playerID, growingPlantID)
	return args.Int(0), args.Error(1)
}

func (m *MockGardenService) SweepReady(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestPlantSeed_RequiresRoomMembership(t *testing.T) {
	mockUsers := new(MockUserService)
	mockGarden := new(MockGardenService)

	mockUsers.On("GetPlayer", mock.Anything, "player-1").Return(&domain.Player{ID: "player-1", Username: "alice"}, nil)

	svc := NewService(mockUsers, nil, nil, mockGarden, nil, nil)

	_, err := svc.PlantSeed(context.Background(), "player-1", "carrot_seed")
	assert.ErrorIs(t, err, domain.ErrNotInRoom)

	mockGarden.AssertNotCalled(t, "PlantSeed", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlantSeed_DelegatesWhenInRoom(t *testing.T) {
	mockUsers := new(MockUserService)
	mockGarden := new(MockGardenService)

	roomID := 3
	mockUsers.On("GetPlayer", mock.Anything, "player-1").Return(&domain.Player{ID: "player-1", Username: "alice", RoomID: &roomID}, nil)
	mockGarden.On("PlantSeed", mock.Anything, "player-1", "carrot_seed").Return(&domain.GrowingPlant{ID: 9, GrowthTime: 42}, nil)

	svc := NewService(mockUsers, nil, nil, mockGarden, nil, nil)

	plant, err := svc.PlantSeed(context.Background(), "player-1", "carrot_seed")
	require.NoError(t, err)
	assert.Equal(t, 9, plant.ID)

	mockGarden.AssertExpectations(t)
}

func TestPlantSeed_UnknownPlayer(t *testing.T) {
	mockUsers := new(MockUserService)
	mockUsers.On("GetPlayer", mock.Anything, "ghost").Return(nil, domain.ErrPlayerNotFound)

	svc := NewService(mockUsers, nil, nil, new(MockGardenService), nil, nil)

	_, err := svc.PlantSeed(context.Background(), "ghost", "carrot_seed")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}
