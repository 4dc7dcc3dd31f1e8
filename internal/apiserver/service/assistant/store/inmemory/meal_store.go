package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/pkg/errno"
)

// MealStore is an in-memory implementation of the MealRepository interface.
type MealStore struct {
	mu    sync.RWMutex
	meals map[string]map[string]*entity.Meal // user ID -> meal ID -> meal
}

// NewMealStore creates a new instance of the MealStore.
func NewMealStore() *MealStore {
	return &MealStore{
		meals: make(map[string]map[string]*entity.Meal),
	}
}

func (s *MealStore) Create(_ context.Context, meal *entity.Meal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.meals[meal.UserID] == nil {
		s.meals[meal.UserID] = make(map[string]*entity.Meal)
	}
	s.meals[meal.UserID][meal.ID] = meal
	return nil
}

func (s *MealStore) Get(_ context.Context, userID, mealID string) (*entity.Meal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meal, ok := s.meals[userID][mealID]
	if !ok {
		return nil, errno.ErrMealNotFound
	}
	return meal, nil
}

func (s *MealStore) Update(_ context.Context, meal *entity.Meal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.meals[meal.UserID][meal.ID]; !ok {
		return errno.ErrMealNotFound
	}
	s.meals[meal.UserID][meal.ID] = meal
	return nil
}

func (s *MealStore) Delete(_ context.Context, userID, mealID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.meals[userID][mealID]; !ok {
		return errno.ErrMealNotFound
	}
	delete(s.meals[userID], mealID)
	return nil
}

func (s *MealStore) ListByRange(_ context.Context, userID string, from, to time.Time) ([]*entity.Meal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Meal, 0)
	for _, meal := range s.meals[userID] {
		if meal.EatenAt.Before(from) || !meal.EatenAt.Before(to) {
			continue
		}
		out = append(out, meal)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].EatenAt.Before(out[j].EatenAt)
	})
	return out, nil
}
