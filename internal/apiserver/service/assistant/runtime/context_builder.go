package runtime

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/repo"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/pkg/errno"
)

// HistoryLimit bounds how many stored turns the context loads.
const HistoryLimit = 20

// ContextBuilder assembles the conversation context for a provider call:
// the trailing history and a digest of the user's current state.
type ContextBuilder struct {
	chatRepo     repo.ChatRepository
	mealRepo     repo.MealRepository
	trackingRepo repo.TrackingRepository
	profileRepo  repo.ProfileRepository

	now func() time.Time
}

// NewContextBuilder creates a ContextBuilder over the given repositories.
func NewContextBuilder(chatRepo repo.ChatRepository, mealRepo repo.MealRepository, trackingRepo repo.TrackingRepository, profileRepo repo.ProfileRepository) *ContextBuilder {
	return &ContextBuilder{
		chatRepo:     chatRepo,
		mealRepo:     mealRepo,
		trackingRepo: trackingRepo,
		profileRepo:  profileRepo,
		now:          time.Now,
	}
}

// BuildHistory loads the conversation's trailing turns, oldest first.
// When include is false or there is no conversation yet, storage is never
// queried and the history is empty. Only user and assistant turns with
// non-empty content are kept.
func (b *ContextBuilder) BuildHistory(ctx context.Context, userID, conversationID string, include bool) ([]*entity.ChatMessage, error) {
	if !include || conversationID == "" {
		return nil, nil
	}

	msgs, err := b.chatRepo.ListRecent(ctx, userID, conversationID, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("load conversation history: %w", err)
	}

	// ListRecent returns newest first; the model wants chronological order.
	history := make([]*entity.ChatMessage, 0, len(msgs))
	for i := len(msgs) - 1; i >= 0; i-- {
		m := msgs[i]
		if m.Role != entity.RoleUser && m.Role != entity.RoleAssistant {
			continue
		}
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		history = append(history, m)
	}
	return history, nil
}

// BuildDigest summarizes the user's profile, targets, and today's intake
// into the fixed-order context block appended to the system prompt.
// Fields with no data are omitted.
func (b *ContextBuilder) BuildDigest(ctx context.Context, userID string) (string, error) {
	profile, err := b.profileRepo.Get(ctx, userID)
	if err != nil && err != errno.ErrProfileNotFound {
		return "", fmt.Errorf("load profile: %w", err)
	}

	dayStart := b.dayStart()
	dayEnd := dayStart.Add(24 * time.Hour)

	meals, err := b.mealRepo.ListByRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return "", fmt.Errorf("load today's meals: %w", err)
	}
	var caloriesToday float64
	for _, m := range meals {
		caloriesToday += m.TotalCalories
	}

	water, err := b.trackingRepo.ListWaterByRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return "", fmt.Errorf("load today's water: %w", err)
	}
	var waterToday float64
	for _, w := range water {
		waterToday += w.AmountMl
	}

	parts := []string{"Current user context:"}

	name := "User"
	if profile != nil && profile.DisplayName != "" {
		name = profile.DisplayName
	}
	parts = append(parts, "- Name: "+name)

	if profile != nil {
		if profile.GoalType != nil {
			parts = append(parts, "- Goal: "+string(*profile.GoalType))
		}
		if profile.CaloriesTarget != nil {
			parts = append(parts, fmt.Sprintf("- Daily calorie target: %g kcal", *profile.CaloriesTarget))
		}
		if profile.ProteinTargetG != nil {
			parts = append(parts, fmt.Sprintf("- Daily protein target: %gg", *profile.ProteinTargetG))
		}
	}

	parts = append(parts,
		fmt.Sprintf("- Calories consumed today: %g kcal", caloriesToday),
		fmt.Sprintf("- Water today: %gml", waterToday),
	)

	return strings.Join(parts, "\n"), nil
}

func (b *ContextBuilder) dayStart() time.Time {
	now := b.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
