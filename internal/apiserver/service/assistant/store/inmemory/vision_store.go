package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
)

// VisionStore is an in-memory implementation of the VisionRepository
// interface.
type VisionStore struct {
	mu      sync.RWMutex
	records map[string][]*entity.VisionRecord // keyed by user ID
}

// NewVisionStore creates a new instance of the VisionStore.
func NewVisionStore() *VisionStore {
	return &VisionStore{records: make(map[string][]*entity.VisionRecord)}
}

func (s *VisionStore) Create(_ context.Context, rec *entity.VisionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.UserID] = append(s.records[rec.UserID], rec)
	return nil
}

func (s *VisionStore) ListRecent(_ context.Context, userID string, limit int) ([]*entity.VisionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.VisionRecord, len(s.records[userID]))
	copy(out, s.records[userID])
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
