package repo

import (
	"context"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
)

// ChatRepository defines the persistence interface for conversation turns.
// All queries are scoped to a single user.
type ChatRepository interface {
	// Create stores a new turn.
	Create(ctx context.Context, msg *entity.ChatMessage) error
	// ListRecent returns the most recent turns for the user, newest first,
	// optionally filtered to one conversation. limit <= 0 means no limit.
	ListRecent(ctx context.Context, userID, conversationID string, limit int) ([]*entity.ChatMessage, error)
}
