package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/event"
	"github.com/Du7chy/Seedlings/internal/logger"
	"github.com/Du7chy/Seedlings/internal/repository"
)

// DefaultHistoryLimit caps how many messages a history request returns
// when the caller does not specify a limit.
const DefaultHistoryLimit = 50

// Service defines the interface for room chat.
type Service interface {
	// SendMessage persists a message in the player's current room and
	// publishes it for fan-out. Players outside a room cannot chat.
	SendMessage(ctx context.Context, playerID, username, content string) (*domain.ChatMessage, error)
	// History returns recent messages of the player's current room in
	// chronological order.
	History(ctx context.Context, playerID string, limit int) ([]domain.ChatMessage, error)
}

type service struct {
	repo         repository.Chat
	rooms        repository.Room
	publisher    event.Bus
	historyLimit int
	now          func() time.Time
}

// Option configures the service
type Option func(*service)

// WithHistoryLimit sets how many messages a history request returns when
// the caller does not ask for a specific count. Non-positive values keep
// the default.
func WithHistoryLimit(limit int) Option {
	return func(s *service) {
		if limit > 0 {
			s.historyLimit = limit
		}
	}
}

// NewService creates a new chat service.
func NewService(repo repository.Chat, rooms repository.Room, publisher event.Bus, opts ...Option) Service {
	s := &service{
		repo:         repo,
		rooms:        rooms,
		publisher:    publisher,
		historyLimit: DefaultHistoryLimit,
		now:          func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) SendMessage(ctx context.Context, playerID, username, content string) (*domain.ChatMessage, error) {
	log := logger.FromContext(ctx)

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: message is empty", domain.ErrInvalidInput)
	}
	if len(content) > domain.MaxChatMessageLength {
		return nil, fmt.Errorf("%w: message exceeds %d characters", domain.ErrInvalidInput, domain.MaxChatMessageLength)
	}

	room, err := s.rooms.GetPlayerRoom(ctx, playerID)
	if err != nil {
		return nil, err
	}

	message := &domain.ChatMessage{
		RoomID:    room.ID,
		PlayerID:  playerID,
		Username:  username,
		Content:   content,
		Timestamp: s.now(),
	}
	if message.ID, err = s.repo.InsertMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event.NewChatMessageEvent(message)); err != nil {
			log.Warn("Failed to publish chat.message event", "error", err)
		}
	}

	log.Debug("Chat message stored", "roomID", room.ID, "playerID", playerID, "messageID", message.ID)
	return message, nil
}

func (s *service) History(ctx context.Context, playerID string, limit int) ([]domain.ChatMessage, error) {
	if limit <= 0 {
		limit = s.historyLimit
	}

	room, err := s.rooms.GetPlayerRoom(ctx, playerID)
	if err != nil {
		return nil, err
	}

	messages, err := s.repo.ListMessages(ctx, room.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
