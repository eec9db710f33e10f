package room

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/repository"
)

// MockRoomRepository is a mock implementation of repository.Room
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetRoomByID(ctx context.Context, roomID int) (*domain.Room, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) GetRoomByJoinCode(ctx context.Context, joinCode string) (*domain.Room, error) {
	args := m.Called(ctx, joinCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) SearchRooms(ctx context.Context, query string) ([]domain.RoomSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoomSummary), args.Error(1)
}

func (m *MockRoomRepository) GetMembers(ctx context.Context, roomID int) ([]domain.RoomMember, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoomMember), args.Error(1)
}

func (m *MockRoomRepository) GetPlayerRoom(ctx context.Context, playerID string) (*domain.Room, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) JoinCodeExists(ctx context.Context, joinCode string) (bool, error) {
	args := m.Called(ctx, joinCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoomRepository) BeginTx(ctx context.Context) (repository.RoomTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.RoomTx), args.Error(1)
}

// MockRoomTx is a mock implementation of repository.RoomTx
type MockRoomTx struct {
	mock.Mock
}

func (m *MockRoomTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRoomTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRoomTx) InsertRoom(ctx context.Context, room *domain.Room) (int, error) {
	args := m.Called(ctx, room)
	return args.Int(0), args.Error(1)
}

func (m *MockRoomTx) GetRoomForUpdate(ctx context.Context, roomID int) (*domain.Room, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomTx) GetRoomByJoinCodeForUpdate(ctx context.Context, joinCode string) (*domain.Room, error) {
	args := m.Called(ctx, joinCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomTx) DeleteRoom(ctx context.Context, roomID int) error {
	args := m.Called(ctx, roomID)
	return args.Error(0)
}

func (m *MockRoomTx) CountMembers(ctx context.Context, roomID int) (int, error) {
	args := m.Called(ctx, roomID)
	return args.Int(0), args.Error(1)
}

func (m *MockRoomTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockRoomTx) SetPlayerRoom(ctx context.Context, playerID string, roomID *int) error {
	args := m.Called(ctx, playerID, roomID)
	return args.Error(0)
}
