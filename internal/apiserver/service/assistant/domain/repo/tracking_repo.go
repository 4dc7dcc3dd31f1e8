package repo

import (
	"context"
	"time"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
)

// TrackingRepository defines the persistence interface for water and body
// weight entries.
type TrackingRepository interface {
	// CreateWater stores a new water intake entry.
	CreateWater(ctx context.Context, e *entity.WaterEntry) error
	// ListWaterByRange returns the user's water entries within [from, to).
	ListWaterByRange(ctx context.Context, userID string, from, to time.Time) ([]*entity.WaterEntry, error)
	// CreateWeight stores a new body weight entry.
	CreateWeight(ctx context.Context, e *entity.BodyWeightEntry) error
	// ListWeightByRange returns the user's weight entries within [from, to).
	ListWeightByRange(ctx context.Context, userID string, from, to time.Time) ([]*entity.BodyWeightEntry, error)
}
