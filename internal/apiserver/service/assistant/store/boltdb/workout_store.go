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

// WorkoutStore implements the WorkoutRepository interface using BoltDB.
type WorkoutStore struct {
	boltDB *bolt.DB
}

// NewWorkoutStore creates a new WorkoutStore instance.
func NewWorkoutStore(boltDB *DB) *WorkoutStore {
	return &WorkoutStore{boltDB: boltDB.Bolt()}
}

func (s *WorkoutStore) Create(_ context.Context, w *entity.WorkoutLog) error {
	return s.boltDB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketWorkoutStore)
		data, err := json.Marshal(w)
		if err != nil {
			return fmt.Errorf("failed to marshal workout: %w", err)
		}
		return b.Put(userKey(w.UserID, w.ID), data)
	})
}

func (s *WorkoutStore) ListByRange(_ context.Context, userID string, from, to time.Time) ([]*entity.WorkoutLog, error) {
	var workouts []*entity.WorkoutLog
	err := s.boltDB.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketWorkoutStore).Cursor()
		prefix := userPrefix(userID)
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var w entity.WorkoutLog
			if err := json.Unmarshal(v, &w); err != nil {
				return fmt.Errorf("failed to unmarshal workout: %w", err)
			}
			if w.PerformedAt.Before(from) || !w.PerformedAt.Before(to) {
				continue
			}
			workouts = append(workouts, &w)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].PerformedAt.Before(workouts[j].PerformedAt)
	})
	return workouts, nil
}
