package boltdb

import (
	"context"
	"fmt"

	"github.com/boltdb/bolt"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/pkg/errno"
	"github.com/kinetra/kinetra/pkg/utils/json"
)

// ProfileStore implements the ProfileRepository interface using BoltDB.
// Profiles are keyed by user ID alone.
type ProfileStore struct {
	boltDB *bolt.DB
}

// NewProfileStore creates a new ProfileStore instance.
func NewProfileStore(boltDB *DB) *ProfileStore {
	return &ProfileStore{boltDB: boltDB.Bolt()}
}

func (s *ProfileStore) Get(_ context.Context, userID string) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	err := s.boltDB.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketProfileStore).Get([]byte(userID))
		if data == nil {
			return errno.ErrProfileNotFound
		}
		return json.Unmarshal(data, &profile)
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *ProfileStore) Save(_ context.Context, profile *entity.UserProfile) error {
	return s.boltDB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketProfileStore)
		data, err := json.Marshal(profile)
		if err != nil {
			return fmt.Errorf("failed to marshal profile: %w", err)
		}
		return b.Put([]byte(profile.ID), data)
	})
}
