package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/pkg/errno"
)

// FavoriteStore is an in-memory implementation of the FavoriteRepository
// interface.
type FavoriteStore struct {
	mu        sync.RWMutex
	favorites map[string]map[string]*entity.SavedFood // user ID -> favorite ID
}

// NewFavoriteStore creates a new instance of the FavoriteStore.
func NewFavoriteStore() *FavoriteStore {
	return &FavoriteStore{
		favorites: make(map[string]map[string]*entity.SavedFood),
	}
}

func (s *FavoriteStore) Create(_ context.Context, f *entity.SavedFood) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.favorites[f.UserID] == nil {
		s.favorites[f.UserID] = make(map[string]*entity.SavedFood)
	}
	s.favorites[f.UserID][f.ID] = f
	return nil
}

func (s *FavoriteStore) List(_ context.Context, userID string) ([]*entity.SavedFood, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.SavedFood, 0, len(s.favorites[userID]))
	for _, f := range s.favorites[userID] {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastUsedAt.After(out[j].LastUsedAt)
	})
	return out, nil
}

func (s *FavoriteStore) Touch(_ context.Context, userID, favoriteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.favorites[userID][favoriteID]
	if !ok {
		return errno.ErrFavoriteNotFound
	}
	f.LastUsedAt = time.Now()
	return nil
}
