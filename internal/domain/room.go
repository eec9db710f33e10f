package domain

import "time"

// Room is a shared garden room. The owner is always a member while the
// room exists; the room is deleted when the owner leaves or the member
// set becomes empty.
type Room struct {
	ID         int       `json:"room_id" db:"room_id"`
	Name       string    `json:"name" db:"room_name"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	IsPrivate  bool      `json:"is_private" db:"is_private"`
	JoinCode   string    `json:"join_code,omitempty" db:"join_code"` // set iff private
	MaxMembers int       `json:"max_members" db:"max_members"`
	OwnerID    string    `json:"owner_id" db:"owner_id"`
}

// RoomMember is one member entry in a room summary.
type RoomMember struct {
	PlayerID string `json:"player_id"`
	Username string `json:"username"`
	IsOwner  bool   `json:"is_owner"`
}

// RoomSummary is the listing/search shape sent to clients.
type RoomSummary struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
	IsPrivate   bool      `json:"is_private"`
	MaxMembers  int       `json:"max_members"`
	OwnerID     string    `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	MemberCount int       `json:"member_count"`
	IsFull      bool      `json:"is_full"`
}
