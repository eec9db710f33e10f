package domain

import "time"

// ChatMessage is one persisted room chat message. Messages are removed by
// cascade when their room is closed.
type ChatMessage struct {
	ID        int       `json:"id" db:"chat_message_id"`
	RoomID    int       `json:"room_id" db:"room_id"`
	PlayerID  string    `json:"player_id" db:"player_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content" db:"message_content"`
	Timestamp time.Time `json:"timestamp" db:"created_at"`
}
