package repo

import (
	"context"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
)

// ProfileRepository defines the persistence interface for user profiles.
type ProfileRepository interface {
	// Get retrieves a user's profile; errno.ErrProfileNotFound when absent.
	Get(ctx context.Context, userID string) (*entity.UserProfile, error)
	// Save creates or replaces a user's profile.
	Save(ctx context.Context, profile *entity.UserProfile) error
}
