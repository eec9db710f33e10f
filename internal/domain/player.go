package domain

import "time"

// Player is a registered player. Balance is a non-negative integer; every
// debit is preceded by an affordability check in the same transaction.
type Player struct {
	ID         string    `json:"player_id" db:"player_id"`
	Username   string    `json:"username" db:"username"`
	Registered time.Time `json:"registered_at" db:"registered_at"`
	Balance    int       `json:"balance" db:"balance"`
	RoomID     *int      `json:"room_id,omitempty" db:"room_id"` // nil when not in a room
}
