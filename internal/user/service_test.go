package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Du7chy/Seedlings/internal/domain"
)

// MockPlayerRepository is a mock implementation of repository.Player
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockPlayerRepository) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerRepository) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func TestRegister_NewPlayerGetsStartingBalance(t *testing.T) {
	mockRepo := new(MockPlayerRepository)
	mockRepo.On("GetPlayerByUsername", mock.Anything, "alice").Return(nil, domain.ErrPlayerNotFound)
	mockRepo.On("CreatePlayer", mock.Anything, mock.MatchedBy(func(p *domain.Player) bool {
		return p.Username == "alice" && p.Balance == domain.StartingBalance && p.ID != ""
	})).Return(nil)

	svc := NewService(mockRepo)

	player, err := svc.Register(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.StartingBalance, player.Balance)
	assert.Nil(t, player.RoomID)

	mockRepo.AssertExpectations(t)
}

func TestRegister_ExistingUsernameReturnsExistingPlayer(t *testing.T) {
	existing := &domain.Player{ID: "player-1", Username: "alice", Balance: 740}
	mockRepo := new(MockPlayerRepository)
	mockRepo.On("GetPlayerByUsername", mock.Anything, "alice").Return(existing, nil)

	svc := NewService(mockRepo)

	player, err := svc.Register(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "player-1", player.ID)
	assert.Equal(t, 740, player.Balance)

	mockRepo.AssertNotCalled(t, "CreatePlayer", mock.Anything, mock.Anything)
}

func TestRegister_InvalidUsername(t *testing.T) {
	svc := NewService(new(MockPlayerRepository))

	for _, username := range []string{"", "ab", "way too long a name for anyone to reasonably have", "bad name!"} {
		_, err := svc.Register(context.Background(), username)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "username %q", username)
	}
}

func TestRegister_LookupFailurePropagates(t *testing.T) {
	mockRepo := new(MockPlayerRepository)
	mockRepo.On("GetPlayerByUsername", mock.Anything, "alice").Return(nil, errors.New("connection refused"))

	svc := NewService(mockRepo)

	_, err := svc.Register(context.Background(), "alice")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGetPlayer(t *testing.T) {
	mockRepo := new(MockPlayerRepository)
	mockRepo.On("GetPlayerByID", mock.Anything, "player-1").Return(&domain.Player{ID: "player-1", Username: "alice"}, nil)
	mockRepo.On("GetPlayerByID", mock.Anything, "missing").Return(nil, domain.ErrPlayerNotFound)

	svc := NewService(mockRepo)

	player, err := svc.GetPlayer(context.Background(), "player-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", player.Username)

	_, err = svc.GetPlayer(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}
