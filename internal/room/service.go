package room

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/event"
	"github.com/Du7chy/Seedlings/internal/repository"
)

// DefaultCapacity is used when a create request leaves capacity unset.
const DefaultCapacity = 5

// joinCodeAttempts bounds the uniqueness retry loop for private room codes.
const joinCodeAttempts = 20

// Detail is the full room view returned to members: the room, its member
// list and the join code when the room is private.
type Detail struct {
	Room    domain.Room         `json:"room"`
	Members []domain.RoomMember `json:"members"`
}

// Service defines the interface for room membership operations.
type Service interface {
	CreateRoom(ctx context.Context, playerID, name string, isPrivate bool, maxMembers int) (*Detail, error)
	// JoinRoom admits a player to a room selected by exactly one of room id
	// or join code. A player already in another room leaves it first.
	JoinRoom(ctx context.Context, playerID string, roomID *int, joinCode string) (*Detail, error)
	LeaveRoom(ctx context.Context, playerID string) error
	SearchRooms(ctx context.Context, query string) ([]domain.RoomSummary, error)
	GetCurrentRoom(ctx context.Context, playerID string) (*Detail, error)
}

type service struct {
	repo      repository.Room
	publisher event.Bus
	rnd       func() float64
	now       func() time.Time
}

// Option configures the service
type Option func(*service)

// WithRandSource sets a custom random source for deterministic testing
func WithRandSource(rnd func() float64) Option {
	return func(s *service) {
		s.rnd = rnd
	}
}

// WithClock sets a custom clock for deterministic testing
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// NewService creates a new room service.
func NewService(repo repository.Room, publisher event.Bus, opts ...Option) Service {
	s := &service{
		repo:      repo,
		publisher: publisher,
		rnd:       rand.Float64,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) SearchRooms(ctx context.Context, query string) ([]domain.RoomSummary, error) {
	rooms, err := s.repo.SearchRooms(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, fmt.Errorf("failed to search rooms: %w", err)
	}
	return rooms, nil
}

// GetCurrentRoom returns the room the player is in with its member list.
func (s *service) GetCurrentRoom(ctx context.Context, playerID string) (*Detail, error) {
	room, err := s.repo.GetPlayerRoom(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, room)
}

// detail assembles the member view of a room.
func (s *service) detail(ctx context.Context, room *domain.Room) (*Detail, error) {
	members, err := s.repo.GetMembers(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room members: %w", err)
	}
	return &Detail{Room: *room, Members: members}, nil
}

// generateJoinCode draws codes until one is unused. Collisions are rare
// with 36^4 codes; the attempt bound guards a pathological table.
func (s *service) generateJoinCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < joinCodeAttempts; attempt++ {
		code := make([]byte, domain.JoinCodeLength)
		for i := range code {
			idx := int(s.rnd() * float64(len(domain.JoinCodeAlphabet)))
			if idx >= len(domain.JoinCodeAlphabet) {
				idx = len(domain.JoinCodeAlphabet) - 1
			}
			code[i] = domain.JoinCodeAlphabet[idx]
		}
		exists, err := s.repo.JoinCodeExists(ctx, string(code))
		if err != nil {
			return "", fmt.Errorf("failed to check join code: %w", err)
		}
		if !exists {
			return string(code), nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique join code after %d attempts", joinCodeAttempts)
}
