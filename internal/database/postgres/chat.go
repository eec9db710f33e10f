package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/repository"
)

type chatRepository struct {
	db *pgxpool.Pool
}

// NewChatRepository creates a PostgreSQL-backed chat message store.
func NewChatRepository(db *pgxpool.Pool) repository.Chat {
	return &chatRepository{db: db}
}

func (r *chatRepository) InsertMessage(ctx context.Context, message *domain.ChatMessage) (int, error) {
	playerUUID, err := parsePlayerUUID(message.PlayerID)
	if err != nil {
		return 0, err
	}

	var id int
	err = r.db.QueryRow(ctx,
		`INSERT INTO chat_messages (room_id, player_id, message_content, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING chat_message_id`,
		message.RoomID, playerUUID, message.Content, message.Timestamp).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertMessage, err)
	}
	return id, nil
}

func (r *chatRepository) ListMessages(ctx context.Context, roomID, limit int) ([]domain.ChatMessage, error) {
	// The inner query selects the newest messages; the outer one restores
	// chronological order for display.
	rows, err := r.db.Query(ctx,
		`SELECT chat_message_id, room_id, player_id, username, message_content, created_at
		 FROM (
		     SELECT cm.chat_message_id, cm.room_id, cm.player_id, p.username,
		            cm.message_content, cm.created_at
		     FROM chat_messages cm
		     JOIN players p ON p.player_id = cm.player_id
		     WHERE cm.room_id = $1
		     ORDER BY cm.created_at DESC, cm.chat_message_id DESC
		     LIMIT $2
		 ) recent
		 ORDER BY created_at, chat_message_id`, roomID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMessages, err)
	}
	defer rows.Close()

	messages := []domain.ChatMessage{}
	for rows.Next() {
		var (
			m  domain.ChatMessage
			id pgtype.UUID
		)
		err := rows.Scan(&m.ID, &m.RoomID, &id, &m.Username, &m.Content, &m.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMessages, err)
		}
		m.PlayerID = uuidToString(id)
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMessages, err)
	}
	return messages, nil
}
