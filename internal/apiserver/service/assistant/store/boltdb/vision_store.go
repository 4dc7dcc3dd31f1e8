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

// VisionStore implements the VisionRepository interface using BoltDB.
type VisionStore struct {
	boltDB *bolt.DB
}

// NewVisionStore creates a new VisionStore instance.
func NewVisionStore(boltDB *DB) *VisionStore {
	return &VisionStore{boltDB: boltDB.Bolt()}
}

func (s *VisionStore) Create(_ context.Context, rec *entity.VisionRecord) error {
	return s.boltDB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketVisionStore)
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal vision record: %w", err)
		}
		return b.Put(userKey(rec.UserID, rec.ID), data)
	})
}

func (s *VisionStore) ListRecent(_ context.Context, userID string, limit int) ([]*entity.VisionRecord, error) {
	var records []*entity.VisionRecord
	err := s.boltDB.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketVisionStore).Cursor()
		prefix := userPrefix(userID)
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var rec entity.VisionRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("failed to unmarshal vision record: %w", err)
			}
			records = append(records, &rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list vision records: %w", err)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
