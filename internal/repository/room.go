package repository

import (
	"context"

	"github.com/Du7chy/Seedlings/internal/domain"
)

// Room defines persistence for rooms and membership. Membership is a
// back-reference on the player row (players.room_id), never independent
// data, so one-room-per-player holds by construction.
type Room interface {
	GetRoomByID(ctx context.Context, roomID int) (*domain.Room, error)
	GetRoomByJoinCode(ctx context.Context, joinCode string) (*domain.Room, error)
	// SearchRooms matches room names case-insensitively by substring;
	// an empty query returns all rooms.
	SearchRooms(ctx context.Context, query string) ([]domain.RoomSummary, error)
	GetMembers(ctx context.Context, roomID int) ([]domain.RoomMember, error)
	// GetPlayerRoom resolves the room a player is currently in, or
	// ErrNotInRoom when the back-reference is null.
	GetPlayerRoom(ctx context.Context, playerID string) (*domain.Room, error)
	JoinCodeExists(ctx context.Context, joinCode string) (bool, error)
	BeginTx(ctx context.Context) (RoomTx, error)
}

// RoomTx is one membership transaction. Joins lock the room row before the
// capacity check so the member count can never exceed capacity under
// concurrent joins.
type RoomTx interface {
	Tx

	InsertRoom(ctx context.Context, room *domain.Room) (int, error)
	GetRoomForUpdate(ctx context.Context, roomID int) (*domain.Room, error)
	GetRoomByJoinCodeForUpdate(ctx context.Context, joinCode string) (*domain.Room, error)
	// DeleteRoom cascades to chat messages and clears member back-references.
	DeleteRoom(ctx context.Context, roomID int) error

	CountMembers(ctx context.Context, roomID int) (int, error)
	GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error)
	// SetPlayerRoom updates the membership back-reference; nil leaves the
	// player roomless.
	SetPlayerRoom(ctx context.Context, playerID string, roomID *int) error
}
