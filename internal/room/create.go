package room

import (
	"context"
	"fmt"
	"strings"

	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/event"
	"github.com/Du7chy/Seedlings/internal/logger"
	"github.com/Du7chy/Seedlings/internal/repository"
)

// CreateRoom creates a room with the creator as owner and sole member.
// A creator already in another room leaves it first, under the same rules
// as an explicit leave. Private rooms get a unique 4-character join code.
func (s *service) CreateRoom(ctx context.Context, playerID, name string, isPrivate bool, maxMembers int) (*Detail, error) {
	log := logger.FromContext(ctx)
	log.Info("CreateRoom called", "playerID", playerID, "name", name, "private", isPrivate, "maxMembers", maxMembers)

	name = strings.TrimSpace(name)
	if len(name) < domain.MinRoomNameLength {
		return nil, fmt.Errorf("%w: room name must be at least %d characters", domain.ErrInvalidInput, domain.MinRoomNameLength)
	}
	if maxMembers == 0 {
		maxMembers = DefaultCapacity
	}
	if maxMembers < domain.MinRoomCapacity || maxMembers > domain.MaxRoomCapacity {
		return nil, fmt.Errorf("%w: capacity must be between %d and %d", domain.ErrInvalidInput, domain.MinRoomCapacity, domain.MaxRoomCapacity)
	}

	joinCode := ""
	if isPrivate {
		var err error
		if joinCode, err = s.generateJoinCode(ctx); err != nil {
			return nil, err
		}
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, err
	}

	var departed *departure
	if player.RoomID != nil {
		if departed, err = s.leaveLocked(ctx, tx, player); err != nil {
			return nil, err
		}
	}

	room := &domain.Room{
		Name:       name,
		CreatedAt:  s.now(),
		IsPrivate:  isPrivate,
		JoinCode:   joinCode,
		MaxMembers: maxMembers,
		OwnerID:    playerID,
	}
	if room.ID, err = tx.InsertRoom(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	if err := tx.SetPlayerRoom(ctx, playerID, &room.ID); err != nil {
		return nil, fmt.Errorf("failed to add owner to room: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.publishDeparture(ctx, departed)
	if s.publisher != nil && !isPrivate {
		if err := s.publisher.Publish(ctx, event.NewRoomCreatedEvent(room)); err != nil {
			log.Warn("Failed to publish room.created event", "error", err)
		}
	}

	log.Info("Room created", "roomID", room.ID, "name", name, "private", isPrivate)
	return s.detail(ctx, room)
}
