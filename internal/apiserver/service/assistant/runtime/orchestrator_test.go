package runtime

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/repo"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/provider/spi"
)

// scriptedAdapter returns a canned completion and records requests.
type scriptedAdapter struct {
	name       string
	configured bool
	completion *entity.Completion
	lastReq    *spi.CompletionRequest
}

func (a *scriptedAdapter) Name() string     { return a.name }
func (a *scriptedAdapter) Configured() bool { return a.configured }

func (a *scriptedAdapter) Complete(_ context.Context, req *spi.CompletionRequest) (*entity.Completion, error) {
	a.lastReq = req
	return a.completion, nil
}

func (a *scriptedAdapter) AnalyzeImage(context.Context, *spi.VisionRequest) (*entity.VisionObservation, error) {
	return &entity.VisionObservation{Model: a.name}, nil
}

// failingChatRepo rejects every write.
type failingChatRepo struct{}

func (failingChatRepo) Create(context.Context, *entity.ChatMessage) error {
	return errors.New("disk full")
}

func (failingChatRepo) ListRecent(context.Context, string, string, int) ([]*entity.ChatMessage, error) {
	return nil, nil
}

func newOrchestrator(env *testEnv, chatRepo repo.ChatRepository, adapters ...spi.Adapter) *Orchestrator {
	b := NewContextBuilder(chatRepo, env.meals, env.tracking, env.profiles)
	b.now = func() time.Time { return env.now }

	o := NewOrchestrator(adapters, "", b, env.dispatcher, chatRepo)
	tick := 0
	o.now = func() time.Time {
		tick++
		return env.now.Add(time.Duration(tick) * time.Second)
	}
	seq := 0
	o.newID = func() string {
		seq++
		return []string{"msg-1", "msg-2", "msg-3", "msg-4"}[(seq-1)%4]
	}
	return o
}

func TestChatWithoutProvider(t *testing.T) {
	env := newTestEnv(t)
	o := newOrchestrator(env, env.chat,
		&scriptedAdapter{name: "anthropic"},
		&scriptedAdapter{name: "openai"},
	)

	result, err := o.Chat(context.Background(), "u1", &ChatInput{Message: "hello"})
	require.NoError(t, err)

	assert.Equal(t, NotConfiguredMessage, result.Message)
	assert.Equal(t, "none", result.ModelUsed)
	assert.NotEmpty(t, result.ConversationID)
	assert.Empty(t, result.ToolCalls)

	// Both sides of the exchange are still recorded.
	msgs, err := env.chat.ListRecent(context.Background(), "u1", result.ConversationID, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
}

func TestChatDispatchesToolCalls(t *testing.T) {
	env := newTestEnv(t)
	tokens := 57
	adapter := &scriptedAdapter{
		name:       "anthropic",
		configured: true,
		completion: &entity.Completion{
			Text:  "Logged your water.",
			Model: "claude-sonnet-4-5",
			ToolCalls: []*entity.ToolCall{
				{ID: "call_1", Name: "add_water", Arguments: map[string]interface{}{"amount_ml": 500.0}},
			},
			TokensUsed: &tokens,
		},
	}
	o := newOrchestrator(env, env.chat, adapter)

	result, err := o.Chat(context.Background(), "u1", &ChatInput{Message: "I drank 500ml"})
	require.NoError(t, err)

	assert.Equal(t, "Logged your water.", result.Message)
	assert.Equal(t, "claude-sonnet-4-5", result.ModelUsed)
	require.NotNil(t, result.TokensUsed)
	assert.Equal(t, 57, *result.TokensUsed)

	require.Len(t, result.ToolResults, 1)
	assert.True(t, result.ToolResults[0].Success)
	assert.Equal(t, "call_1", result.ToolResults[0].ToolCallID)

	require.Len(t, result.CreatedEntries, 1)
	assert.Equal(t, "water", result.CreatedEntries[0].Type)

	// The water entry really exists.
	entries, err := env.tracking.ListWaterByRange(context.Background(), "u1", env.now.Add(-time.Hour), env.now.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// The assistant turn carries the calls, results, and model.
	msgs, err := env.chat.ListRecent(context.Background(), "u1", result.ConversationID, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assistant := msgs[0]
	assert.Equal(t, entity.RoleAssistant, assistant.Role)
	assert.Len(t, assistant.ToolCalls, 1)
	assert.Len(t, assistant.ToolResults, 1)
	assert.Equal(t, "claude-sonnet-4-5", assistant.ModelUsed)

	// The provider request carried the tool catalog and the user message.
	require.NotNil(t, adapter.lastReq)
	assert.Equal(t, "I drank 500ml", adapter.lastReq.UserMessage)
	assert.NotEmpty(t, adapter.lastReq.Tools)
	assert.NotEmpty(t, adapter.lastReq.SystemPrompt)
}

func TestChatFailedToolProducesNoCreatedEntry(t *testing.T) {
	env := newTestEnv(t)
	adapter := &scriptedAdapter{
		name:       "anthropic",
		configured: true,
		completion: &entity.Completion{
			Text:  "On it.",
			Model: "claude-sonnet-4-5",
			ToolCalls: []*entity.ToolCall{
				{ID: "call_1", Name: "add_water", Arguments: map[string]interface{}{}},
			},
		},
	}
	o := newOrchestrator(env, env.chat, adapter)

	result, err := o.Chat(context.Background(), "u1", &ChatInput{Message: "log water"})
	require.NoError(t, err)

	require.Len(t, result.ToolResults, 1)
	assert.False(t, result.ToolResults[0].Success)
	assert.Empty(t, result.CreatedEntries)
}

func TestChatUserTurnPersistFailureAbortsDispatch(t *testing.T) {
	env := newTestEnv(t)
	adapter := &scriptedAdapter{
		name:       "anthropic",
		configured: true,
		completion: &entity.Completion{
			Text:  "Logging it.",
			Model: "claude-sonnet-4-5",
			ToolCalls: []*entity.ToolCall{
				{ID: "call_1", Name: "add_water", Arguments: map[string]interface{}{"amount_ml": 500.0}},
			},
		},
	}
	o := newOrchestrator(env, failingChatRepo{}, adapter)

	_, err := o.Chat(context.Background(), "u1", &ChatInput{Message: "I drank 500ml"})
	require.Error(t, err)

	// No tool effect without a recorded user turn.
	entries, listErr := env.tracking.ListWaterByRange(context.Background(), "u1", env.now.Add(-time.Hour), env.now.Add(time.Hour))
	require.NoError(t, listErr)
	assert.Empty(t, entries)
}

func TestChatKeepsExistingConversationID(t *testing.T) {
	env := newTestEnv(t)
	o := newOrchestrator(env, env.chat)

	result, err := o.Chat(context.Background(), "u1", &ChatInput{Message: "hi", ConversationID: "conv-42"})
	require.NoError(t, err)
	assert.Equal(t, "conv-42", result.ConversationID)
}

func TestHistoryOldestFirst(t *testing.T) {
	env := newTestEnv(t)
	o := newOrchestrator(env, env.chat)
	ctx := context.Background()

	base := env.now.Add(-time.Hour)
	for i, content := range []string{"one", "two", "three"} {
		require.NoError(t, env.chat.Create(ctx, &entity.ChatMessage{
			ID: content, UserID: "u1", ConversationID: "conv-1",
			Role: entity.RoleUser, Content: content,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	msgs, err := o.History(ctx, "u1", "conv-1", 0)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "one", msgs[0].Content)
	assert.Equal(t, "three", msgs[2].Content)
}

func TestHistoryLimit(t *testing.T) {
	env := newTestEnv(t)
	o := newOrchestrator(env, env.chat)
	ctx := context.Background()

	base := env.now.Add(-time.Hour)
	for i := 0; i < 5; i++ {
		require.NoError(t, env.chat.Create(ctx, &entity.ChatMessage{
			ID: string(rune('a' + i)), UserID: "u1", ConversationID: "conv-1",
			Role: entity.RoleUser, Content: string(rune('a' + i)),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	msgs, err := o.History(ctx, "u1", "conv-1", 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	// The two most recent, oldest first.
	assert.Equal(t, "d", msgs[0].Content)
	assert.Equal(t, "e", msgs[1].Content)
}
