package boltdb

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/boltdb/bolt"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/pkg/errno"
	"github.com/kinetra/kinetra/pkg/utils/json"
)

// MealStore implements the MealRepository interface using BoltDB.
type MealStore struct {
	boltDB *bolt.DB
}

// NewMealStore creates a new MealStore instance.
func NewMealStore(boltDB *DB) *MealStore {
	return &MealStore{boltDB: boltDB.Bolt()}
}

func (s *MealStore) Create(_ context.Context, meal *entity.Meal) error {
	return s.boltDB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketMealStore)
		data, err := json.Marshal(meal)
		if err != nil {
			return fmt.Errorf("failed to marshal meal: %w", err)
		}
		return b.Put(userKey(meal.UserID, meal.ID), data)
	})
}

func (s *MealStore) Get(_ context.Context, userID, mealID string) (*entity.Meal, error) {
	var meal entity.Meal
	err := s.boltDB.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketMealStore).Get(userKey(userID, mealID))
		if data == nil {
			return errno.ErrMealNotFound
		}
		return json.Unmarshal(data, &meal)
	})
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealStore) Update(_ context.Context, meal *entity.Meal) error {
	return s.boltDB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketMealStore)
		key := userKey(meal.UserID, meal.ID)
		if b.Get(key) == nil {
			return errno.ErrMealNotFound
		}
		data, err := json.Marshal(meal)
		if err != nil {
			return fmt.Errorf("failed to marshal meal: %w", err)
		}
		return b.Put(key, data)
	})
}

func (s *MealStore) Delete(_ context.Context, userID, mealID string) error {
	return s.boltDB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketMealStore)
		key := userKey(userID, mealID)
		if b.Get(key) == nil {
			return errno.ErrMealNotFound
		}
		return b.Delete(key)
	})
}

func (s *MealStore) ListByRange(_ context.Context, userID string, from, to time.Time) ([]*entity.Meal, error) {
	var meals []*entity.Meal
	err := s.boltDB.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketMealStore).Cursor()
		prefix := userPrefix(userID)
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var meal entity.Meal
			if err := json.Unmarshal(v, &meal); err != nil {
				return fmt.Errorf("failed to unmarshal meal: %w", err)
			}
			if meal.EatenAt.Before(from) || !meal.EatenAt.Before(to) {
				continue
			}
			meals = append(meals, &meal)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	sort.Slice(meals, func(i, j int) bool {
		return meals[i].EatenAt.Before(meals[j].EatenAt)
	})
	return meals, nil
}
