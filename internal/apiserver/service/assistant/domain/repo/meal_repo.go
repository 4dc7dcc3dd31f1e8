package repo

import (
	"context"
	"time"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
)

// MealRepository defines the persistence interface for meals.
// All queries are scoped to a single user; Get and Delete fail with
// errno.ErrMealNotFound when the meal does not exist for that user.
type MealRepository interface {
	// Create stores a new meal with its items.
	Create(ctx context.Context, meal *entity.Meal) error
	// Get retrieves one of the user's meals by ID.
	Get(ctx context.Context, userID, mealID string) (*entity.Meal, error)
	// Update replaces an existing meal.
	Update(ctx context.Context, meal *entity.Meal) error
	// Delete removes one of the user's meals by ID.
	Delete(ctx context.Context, userID, mealID string) error
	// ListByRange returns the user's meals eaten within [from, to).
	ListByRange(ctx context.Context, userID string, from, to time.Time) ([]*entity.Meal, error)
}
