package boltdb

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/boltdb/bolt"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
	"github.com/kinetra/kinetra/pkg/utils/json"
)

// TrackingStore implements the TrackingRepository interface using BoltDB.
type TrackingStore struct {
	boltDB *bolt.DB
}

// NewTrackingStore creates a new TrackingStore instance.
func NewTrackingStore(boltDB *DB) *TrackingStore {
	return &TrackingStore{boltDB: boltDB.Bolt()}
}

func (s *TrackingStore) CreateWater(_ context.Context, e *entity.WaterEntry) error {
	return s.boltDB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketWaterStore)
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal water entry: %w", err)
		}
		return b.Put(userKey(e.UserID, e.ID), data)
	})
}

func (s *TrackingStore) ListWaterByRange(_ context.Context, userID string, from, to time.Time) ([]*entity.WaterEntry, error) {
	var entries []*entity.WaterEntry
	err := s.boltDB.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketWaterStore).Cursor()
		prefix := userPrefix(userID)
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var e entity.WaterEntry
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("failed to unmarshal water entry: %w", err)
			}
			if e.DrankAt.Before(from) || !e.DrankAt.Before(to) {
				continue
			}
			entries = append(entries, &e)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list water entries: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].DrankAt.Before(entries[j].DrankAt)
	})
	return entries, nil
}

func (s *TrackingStore) CreateWeight(_ context.Context, e *entity.BodyWeightEntry) error {
	return s.boltDB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketWeightStore)
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal weight entry: %w", err)
		}
		return b.Put(userKey(e.UserID, e.ID), data)
	})
}

func (s *TrackingStore) ListWeightByRange(_ context.Context, userID string, from, to time.Time) ([]*entity.BodyWeightEntry, error) {
	var entries []*entity.BodyWeightEntry
	err := s.boltDB.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketWeightStore).Cursor()
		prefix := userPrefix(userID)
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var e entity.BodyWeightEntry
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("failed to unmarshal weight entry: %w", err)
			}
			if e.MeasuredAt.Before(from) || !e.MeasuredAt.Before(to) {
				continue
			}
			entries = append(entries, &e)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list weight entries: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].MeasuredAt.Before(entries[j].MeasuredAt)
	})
	return entries, nil
}
