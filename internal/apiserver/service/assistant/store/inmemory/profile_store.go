package inmemory

import (
	"context"
	"sync"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/pkg/errno"
)

// ProfileStore is an in-memory implementation of the ProfileRepository
// interface.
type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]*entity.UserProfile
}

// NewProfileStore creates a new instance of the ProfileStore.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		profiles: make(map[string]*entity.UserProfile),
	}
}

func (s *ProfileStore) Get(_ context.Context, userID string) (*entity.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[userID]
	if !ok {
		return nil, errno.ErrProfileNotFound
	}
	return profile, nil
}

func (s *ProfileStore) Save(_ context.Context, profile *entity.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.ID] = profile
	return nil
}
