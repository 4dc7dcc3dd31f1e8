package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
)

// WorkoutStore is an in-memory implementation of the WorkoutRepository interface.
type WorkoutStore struct {
	mu       sync.RWMutex
	workouts map[string][]*entity.WorkoutLog // keyed by user ID
}

// NewWorkoutStore creates a new instance of the WorkoutStore.
func NewWorkoutStore() *WorkoutStore {
	return &WorkoutStore{
		workouts: make(map[string][]*entity.WorkoutLog),
	}
}

func (s *WorkoutStore) Create(_ context.Context, w *entity.WorkoutLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workouts[w.UserID] = append(s.workouts[w.UserID], w)
	return nil
}

func (s *WorkoutStore) ListByRange(_ context.Context, userID string, from, to time.Time) ([]*entity.WorkoutLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.WorkoutLog, 0)
	for _, w := range s.workouts[userID] {
		if w.PerformedAt.Before(from) || !w.PerformedAt.Before(to) {
			continue
		}
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PerformedAt.Before(out[j].PerformedAt)
	})
	return out, nil
}
