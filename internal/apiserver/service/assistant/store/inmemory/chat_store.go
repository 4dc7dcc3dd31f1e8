package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
)

// ChatStore is an in-memory implementation of the ChatRepository interface.
type ChatStore struct {
	mu       sync.RWMutex
	messages map[string][]*entity.ChatMessage // keyed by user ID
}

// NewChatStore creates a new instance of the ChatStore.
func NewChatStore() *ChatStore {
	return &ChatStore{
		messages: make(map[string][]*entity.ChatMessage),
	}
}

func (s *ChatStore) Create(_ context.Context, msg *entity.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[msg.UserID] = append(s.messages[msg.UserID], msg)
	return nil
}

func (s *ChatStore) ListRecent(_ context.Context, userID, conversationID string, limit int) ([]*entity.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.ChatMessage, 0)
	for _, msg := range s.messages[userID] {
		if conversationID != "" && msg.ConversationID != conversationID {
			continue
		}
		out = append(out, msg)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
