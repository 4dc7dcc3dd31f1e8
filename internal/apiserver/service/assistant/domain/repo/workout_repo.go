package repo

import (
	"context"
	"time"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
)

// WorkoutRepository defines the persistence interface for workout logs.
type WorkoutRepository interface {
	// Create stores a new workout log.
	Create(ctx context.Context, w *entity.WorkoutLog) error
	// ListByRange returns the user's workouts performed within [from, to).
	ListByRange(ctx context.Context, userID string, from, to time.Time) ([]*entity.WorkoutLog, error)
}
