package repository

import (
	"context"

	"github.com/Du7chy/Seedlings/internal/domain"
)

// Chat defines persistence for room chat messages.
type Chat interface {
	InsertMessage(ctx context.Context, message *domain.ChatMessage) (int, error)
	// ListMessages returns the most recent messages for a room in
	// chronological order, capped at limit.
	ListMessages(ctx context.Context, roomID, limit int) ([]domain.ChatMessage, error)
}
