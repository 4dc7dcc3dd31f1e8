package boltdb

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/boltdb/bolt"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/pkg/errno"
	"github.com/kinetra/kinetra/pkg/utils/json"
)

// FavoriteStore implements the FavoriteRepository interface using BoltDB.
type FavoriteStore struct {
	boltDB *bolt.DB
}

// NewFavoriteStore creates a new FavoriteStore instance.
func NewFavoriteStore(boltDB *DB) *FavoriteStore {
	return &FavoriteStore{boltDB: boltDB.Bolt()}
}

func (s *FavoriteStore) Create(_ context.Context, f *entity.SavedFood) error {
	return s.boltDB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketFavoriteStore)
		data, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("failed to marshal favorite: %w", err)
		}
		return b.Put(userKey(f.UserID, f.ID), data)
	})
}

func (s *FavoriteStore) List(_ context.Context, userID string) ([]*entity.SavedFood, error) {
	var favorites []*entity.SavedFood
	err := s.boltDB.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketFavoriteStore).Cursor()
		prefix := userPrefix(userID)
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var f entity.SavedFood
			if err := json.Unmarshal(v, &f); err != nil {
				return fmt.Errorf("failed to unmarshal favorite: %w", err)
			}
			favorites = append(favorites, &f)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	sort.Slice(favorites, func(i, j int) bool {
		return favorites[i].LastUsedAt.After(favorites[j].LastUsedAt)
	})
	return favorites, nil
}

func (s *FavoriteStore) Touch(_ context.Context, userID, favoriteID string) error {
	return s.boltDB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketFavoriteStore)
		key := userKey(userID, favoriteID)
		data := b.Get(key)
		if data == nil {
			return errno.ErrFavoriteNotFound
		}
		var f entity.SavedFood
		if err := json.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("failed to unmarshal favorite: %w", err)
		}
		f.LastUsedAt = time.Now()
		updated, err := json.Marshal(&f)
		if err != nil {
			return fmt.Errorf("failed to marshal favorite: %w", err)
		}
		return b.Put(key, updated)
	})
}
