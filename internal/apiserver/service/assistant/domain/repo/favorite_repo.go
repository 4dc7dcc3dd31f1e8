package repo

import (
	"context"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
)

// FavoriteRepository defines the persistence interface for saved foods.
type FavoriteRepository interface {
	// Create stores a new favorite food.
	Create(ctx context.Context, f *entity.SavedFood) error
	// List returns the user's favorites, most recently used first.
	List(ctx context.Context, userID string) ([]*entity.SavedFood, error)
	// Touch updates the last-used timestamp of a favorite.
	Touch(ctx context.Context, userID, favoriteID string) error
}
