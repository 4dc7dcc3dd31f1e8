package runtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/store/inmemory"
)

// countingChatRepo wraps the in-memory store and counts history queries.
type countingChatRepo struct {
	*inmemory.ChatStore
	listCalls int
}

func (r *countingChatRepo) ListRecent(ctx context.Context, userID, conversationID string, limit int) ([]*entity.ChatMessage, error) {
	r.listCalls++
	return r.ChatStore.ListRecent(ctx, userID, conversationID, limit)
}

func newContextBuilder(chat *countingChatRepo, env *testEnv) *ContextBuilder {
	b := NewContextBuilder(chat, env.meals, env.tracking, env.profiles)
	b.now = func() time.Time { return env.now }
	return b
}

func TestBuildHistorySkipsStoreWhenDisabled(t *testing.T) {
	env := newTestEnv(t)
	chat := &countingChatRepo{ChatStore: env.chat}
	b := newContextBuilder(chat, env)

	history, err := b.BuildHistory(context.Background(), "u1", "conv-1", false)
	require.NoError(t, err)
	assert.Nil(t, history)
	assert.Zero(t, chat.listCalls)
}

func TestBuildHistorySkipsStoreWithoutConversation(t *testing.T) {
	env := newTestEnv(t)
	chat := &countingChatRepo{ChatStore: env.chat}
	b := newContextBuilder(chat, env)

	history, err := b.BuildHistory(context.Background(), "u1", "", true)
	require.NoError(t, err)
	assert.Nil(t, history)
	assert.Zero(t, chat.listCalls)
}

func TestBuildHistoryChronologicalAndFiltered(t *testing.T) {
	env := newTestEnv(t)
	chat := &countingChatRepo{ChatStore: env.chat}
	b := newContextBuilder(chat, env)
	ctx := context.Background()

	base := env.now.Add(-time.Hour)
	store := func(offset time.Duration, role entity.Role, content string) {
		require.NoError(t, env.chat.Create(ctx, &entity.ChatMessage{
			ID: content, UserID: "u1", ConversationID: "conv-1",
			Role: role, Content: content, CreatedAt: base.Add(offset),
		}))
	}
	store(1*time.Minute, entity.RoleUser, "first")
	store(2*time.Minute, entity.RoleAssistant, "second")
	store(3*time.Minute, entity.RoleTool, "tool noise")
	store(4*time.Minute, entity.RoleAssistant, "   ")
	store(5*time.Minute, entity.RoleUser, "third")

	history, err := b.BuildHistory(ctx, "u1", "conv-1", true)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "first", history[0].Content)
	assert.Equal(t, "second", history[1].Content)
	assert.Equal(t, "third", history[2].Content)
	assert.Equal(t, 1, chat.listCalls)
}

func TestBuildDigestMinimalProfile(t *testing.T) {
	env := newTestEnv(t)
	b := newContextBuilder(&countingChatRepo{ChatStore: env.chat}, env)

	digest, err := b.BuildDigest(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t,
		"Current user context:\n"+
			"- Name: User\n"+
			"- Calories consumed today: 0 kcal\n"+
			"- Water today: 0ml",
		digest)
}

func TestBuildDigestFullProfile(t *testing.T) {
	env := newTestEnv(t)
	b := newContextBuilder(&countingChatRepo{ChatStore: env.chat}, env)
	ctx := context.Background()

	goal := entity.GoalCut
	calories := 2200.0
	protein := 150.0
	require.NoError(t, env.profiles.Save(ctx, &entity.UserProfile{
		ID:             "u1",
		DisplayName:    "Sam",
		GoalType:       &goal,
		CaloriesTarget: &calories,
		ProteinTargetG: &protein,
	}))

	meal := &entity.Meal{
		ID: "m1", UserID: "u1", Name: "Lunch",
		Items: []*entity.FoodItem{
			{Name: "Pasta", Calories: 450, ProteinG: 15, CarbsG: 80, FatG: 8},
		},
		EatenAt: env.now.Add(-2 * time.Hour),
	}
	meal.RecalculateTotals()
	require.NoError(t, env.meals.Create(ctx, meal))

	require.NoError(t, env.tracking.CreateWater(ctx, &entity.WaterEntry{
		ID: "w1", UserID: "u1", AmountMl: 500, DrankAt: env.now.Add(-time.Hour),
	}))
	require.NoError(t, env.tracking.CreateWater(ctx, &entity.WaterEntry{
		ID: "w2", UserID: "u1", AmountMl: 250, DrankAt: env.now.Add(-30 * time.Minute),
	}))
	// Yesterday's entries stay out of today's digest.
	require.NoError(t, env.tracking.CreateWater(ctx, &entity.WaterEntry{
		ID: "w3", UserID: "u1", AmountMl: 999, DrankAt: env.now.Add(-30 * time.Hour),
	}))

	digest, err := b.BuildDigest(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t,
		"Current user context:\n"+
			"- Name: Sam\n"+
			"- Goal: cut\n"+
			"- Daily calorie target: 2200 kcal\n"+
			"- Daily protein target: 150g\n"+
			"- Calories consumed today: 450 kcal\n"+
			"- Water today: 750ml",
		digest)
}

func TestBuildDigestIgnoresOtherUsers(t *testing.T) {
	env := newTestEnv(t)
	b := newContextBuilder(&countingChatRepo{ChatStore: env.chat}, env)
	ctx := context.Background()

	meal := &entity.Meal{
		ID: "m1", UserID: "someone-else", Name: "Lunch",
		Items:   []*entity.FoodItem{{Name: "Pizza", Calories: 1200}},
		EatenAt: env.now,
	}
	meal.RecalculateTotals()
	require.NoError(t, env.meals.Create(ctx, meal))

	digest, err := b.BuildDigest(ctx, "u1")
	require.NoError(t, err)
	assert.Contains(t, digest, "- Calories consumed today: 0 kcal")
}
