package boltdb

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/boltdb/bolt"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
	"github.com/kinetra/kinetra/pkg/utils/json"
)

// ChatStore implements the ChatRepository interface using BoltDB.
type ChatStore struct {
	boltDB *bolt.DB
}

// NewChatStore creates a new ChatStore instance.
func NewChatStore(boltDB *DB) *ChatStore {
	return &ChatStore{boltDB: boltDB.Bolt()}
}

func (s *ChatStore) Create(_ context.Context, msg *entity.ChatMessage) error {
	return s.boltDB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketChatStore)
		data, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("failed to marshal chat message: %w", err)
		}
		return b.Put(userKey(msg.UserID, msg.ID), data)
	})
}

func (s *ChatStore) ListRecent(_ context.Context, userID, conversationID string, limit int) ([]*entity.ChatMessage, error) {
	var msgs []*entity.ChatMessage
	err := s.boltDB.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketChatStore).Cursor()
		prefix := userPrefix(userID)
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var msg entity.ChatMessage
			if err := json.Unmarshal(v, &msg); err != nil {
				return fmt.Errorf("failed to unmarshal chat message: %w", err)
			}
			if conversationID != "" && msg.ConversationID != conversationID {
				continue
			}
			msgs = append(msgs, &msg)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.After(msgs[j].CreatedAt)
	})
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[:limit]
	}
	return msgs, nil
}
