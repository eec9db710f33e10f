package user

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/logger"
	"github.com/Du7chy/Seedlings/internal/repository"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

// Service defines the interface for player registration and lookup.
type Service interface {
	Register(ctx context.Context, username string) (*domain.Player, error)
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)
}

type service struct {
	repo repository.Player
	now  func() time.Time
}

// NewService creates a new player service.
func NewService(repo repository.Player) Service {
	return &service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Register creates a player with the starting balance, or returns the
// existing player when the username is already taken. Registration is
// idempotent per username; there is no credential check at this layer.
func (s *service) Register(ctx context.Context, username string) (*domain.Player, error) {
	log := logger.FromContext(ctx)

	if !usernamePattern.MatchString(username) {
		return nil, fmt.Errorf("%w: username must be 3-32 characters of letters, digits or underscore", domain.ErrInvalidInput)
	}

	existing, err := s.repo.GetPlayerByUsername(ctx, username)
	if err == nil {
		log.Debug("Returning existing player", "username", username, "playerID", existing.ID)
		return existing, nil
	}
	if !errors.Is(err, domain.ErrPlayerNotFound) {
		return nil, fmt.Errorf("failed to look up username: %w", err)
	}

	player := &domain.Player{
		ID:         uuid.New().String(),
		Username:   username,
		Registered: s.now(),
		Balance:    domain.StartingBalance,
	}
	if err := s.repo.CreatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	log.Info("Player registered", "username", username, "playerID", player.ID, "balance", player.Balance)
	return player, nil
}

func (s *service) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	player, err := s.repo.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

func (s *service) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	player, err := s.repo.GetPlayerByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by username: %w", err)
	}
	return player, nil
}
