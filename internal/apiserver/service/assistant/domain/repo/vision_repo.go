package repo

import (
	"context"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
)

// VisionRepository defines the persistence interface for meal photo
// analyses.
type VisionRepository interface {
	// Create stores a new analysis record.
	Create(ctx context.Context, rec *entity.VisionRecord) error
	// ListRecent returns the user's analyses, newest first. limit <= 0
	// means no limit.
	ListRecent(ctx context.Context, userID string, limit int) ([]*entity.VisionRecord, error)
}
