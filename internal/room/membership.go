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

// departure records a committed leave so the events can be published
// after the transaction is durable.
type departure struct {
	room     domain.Room
	playerID string
	username string
	closed   bool
}

// JoinRoom admits a player to a room. The target is selected by exactly
// one of roomID or joinCode; private rooms are only reachable by code.
// The room row is locked before the capacity check, so concurrent joins
// serialize and membership can never exceed capacity.
func (s *service) JoinRoom(ctx context.Context, playerID string, roomID *int, joinCode string) (*Detail, error) {
	log := logger.FromContext(ctx)

	joinCode = strings.ToUpper(strings.TrimSpace(joinCode))
	if (roomID == nil) == (joinCode == "") {
		return nil, domain.ErrAmbiguousSelector
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

	var room *domain.Room
	if roomID != nil {
		if room, err = tx.GetRoomForUpdate(ctx, *roomID); err != nil {
			return nil, err
		}
		if room.IsPrivate {
			return nil, domain.ErrPrivateRoomRequiresCode
		}
	} else {
		if room, err = tx.GetRoomByJoinCodeForUpdate(ctx, joinCode); err != nil {
			return nil, err
		}
	}

	// Joining the current room is a no-op.
	if player.RoomID != nil && *player.RoomID == room.ID {
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
		return s.detail(ctx, room)
	}

	var departed *departure
	if player.RoomID != nil {
		if departed, err = s.leaveLocked(ctx, tx, player); err != nil {
			return nil, err
		}
	}

	count, err := tx.CountMembers(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}
	if count >= room.MaxMembers {
		return nil, fmt.Errorf("%w: %s has %d of %d members", domain.ErrRoomFull, room.Name, count, room.MaxMembers)
	}

	if err := tx.SetPlayerRoom(ctx, playerID, &room.ID); err != nil {
		return nil, fmt.Errorf("failed to join room: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.publishDeparture(ctx, departed)

	detail, err := s.detail(ctx, room)
	if err != nil {
		return nil, err
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event.NewMemberChangeEvent(true, room.ID, playerID, player.Username, detail.Members)); err != nil {
			log.Warn("Failed to publish room.member_joined event", "error", err)
		}
	}

	log.Info("Player joined room", "playerID", playerID, "roomID", room.ID)
	return detail, nil
}

// LeaveRoom removes the player from their current room. The room is
// deleted when the owner leaves or the member set becomes empty.
func (s *service) LeaveRoom(ctx context.Context, playerID string) error {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return err
	}
	if player.RoomID == nil {
		return domain.ErrNotInRoom
	}

	departed, err := s.leaveLocked(ctx, tx, player)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.publishDeparture(ctx, departed)

	log.Info("Player left room", "playerID", playerID, "roomID", departed.room.ID, "closed", departed.closed)
	return nil
}

// leaveLocked removes a player from their current room inside an open
// transaction. Caller guarantees player.RoomID is set.
func (s *service) leaveLocked(ctx context.Context, tx repository.RoomTx, player *domain.Player) (*departure, error) {
	room, err := tx.GetRoomForUpdate(ctx, *player.RoomID)
	if err != nil {
		return nil, err
	}
	if err := tx.SetPlayerRoom(ctx, player.ID, nil); err != nil {
		return nil, fmt.Errorf("failed to leave room: %w", err)
	}

	dep := &departure{room: *room, playerID: player.ID, username: player.Username}

	if room.OwnerID == player.ID {
		dep.closed = true
	} else {
		count, err := tx.CountMembers(ctx, room.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count members: %w", err)
		}
		dep.closed = count == 0
	}
	if dep.closed {
		if err := tx.DeleteRoom(ctx, room.ID); err != nil {
			return nil, fmt.Errorf("failed to delete room: %w", err)
		}
	}

	player.RoomID = nil
	return dep, nil
}

// publishDeparture emits the events for a committed leave.
func (s *service) publishDeparture(ctx context.Context, dep *departure) {
	if dep == nil || s.publisher == nil {
		return
	}
	log := logger.FromContext(ctx)

	if dep.closed {
		if err := s.publisher.Publish(ctx, event.NewRoomClosedEvent(dep.room.ID, dep.room.Name)); err != nil {
			log.Warn("Failed to publish room.closed event", "error", err)
		}
		return
	}

	members, err := s.repo.GetMembers(ctx, dep.room.ID)
	if err != nil {
		log.Warn("Failed to load members for departure event", "roomID", dep.room.ID, "error", err)
	}
	if err := s.publisher.Publish(ctx, event.NewMemberChangeEvent(false, dep.room.ID, dep.playerID, dep.username, members)); err != nil {
		log.Warn("Failed to publish room.member_left event", "error", err)
	}
}
