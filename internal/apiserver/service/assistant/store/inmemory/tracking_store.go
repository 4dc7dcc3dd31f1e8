package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
)

// TrackingStore is an in-memory implementation of the TrackingRepository
// interface.
type TrackingStore struct {
	mu      sync.RWMutex
	water   map[string][]*entity.WaterEntry      // keyed by user ID
	weights map[string][]*entity.BodyWeightEntry // keyed by user ID
}

// NewTrackingStore creates a new instance of the TrackingStore.
func NewTrackingStore() *TrackingStore {
	return &TrackingStore{
		water:   make(map[string][]*entity.WaterEntry),
		weights: make(map[string][]*entity.BodyWeightEntry),
	}
}

func (s *TrackingStore) CreateWater(_ context.Context, e *entity.WaterEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.water[e.UserID] = append(s.water[e.UserID], e)
	return nil
}

func (s *TrackingStore) ListWaterByRange(_ context.Context, userID string, from, to time.Time) ([]*entity.WaterEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.WaterEntry, 0)
	for _, e := range s.water[userID] {
		if e.DrankAt.Before(from) || !e.DrankAt.Before(to) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DrankAt.Before(out[j].DrankAt)
	})
	return out, nil
}

func (s *TrackingStore) CreateWeight(_ context.Context, e *entity.BodyWeightEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weights[e.UserID] = append(s.weights[e.UserID], e)
	return nil
}

func (s *TrackingStore) ListWeightByRange(_ context.Context, userID string, from, to time.Time) ([]*entity.BodyWeightEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.BodyWeightEntry, 0)
	for _, e := range s.weights[userID] {
		if e.MeasuredAt.Before(from) || !e.MeasuredAt.Before(to) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].MeasuredAt.Before(out[j].MeasuredAt)
	})
	return out, nil
}
