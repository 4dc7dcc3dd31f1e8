package runtime

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/catalog"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/repo"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/provider"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/provider/spi"
	"github.com/kinetra/kinetra/pkg/logger"
)

// DefaultHistoryQueryLimit bounds the history endpoint when the caller does
// not pass a limit.
const DefaultHistoryQueryLimit = 50

// entryTypes maps mutating tools to the entry type reported back to the
// client for each successful call.
var entryTypes = map[string]string{
	"add_meal":           "meal",
	"update_meal":        "meal",
	"delete_meal":        "meal",
	"add_workout":        "workout",
	"add_water":          "water",
	"add_weight":         "weight",
	"set_goal":           "goal",
	"update_profile":     "profile",
	"save_favorite_food": "favorite",
}

// ChatInput is one user chat turn.
type ChatInput struct {
	Message        string
	ConversationID string
	IncludeHistory bool
}

// CreatedEntry describes one domain record a tool call produced.
type CreatedEntry struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// ChatResult is the outcome of one orchestrated chat turn.
type ChatResult struct {
	Message        string               `json:"message"`
	ConversationID string               `json:"conversation_id"`
	ModelUsed      string               `json:"model_used"`
	TokensUsed     *int                 `json:"tokens_used,omitempty"`
	ToolCalls      []*entity.ToolCall   `json:"tool_calls,omitempty"`
	ToolResults    []*entity.ToolResult `json:"tool_results,omitempty"`
	CreatedEntries []*CreatedEntry      `json:"created_entries,omitempty"`
}

// Orchestrator runs the full chat turn: context assembly, provider call,
// tool dispatch, and persistence of both sides of the exchange.
type Orchestrator struct {
	adapters   []spi.Adapter
	preferred  string
	contextB   *ContextBuilder
	dispatcher *Dispatcher
	chatRepo   repo.ChatRepository

	now   func() time.Time
	newID func() string
}

// NewOrchestrator wires the chat pipeline. preferred names the provider to
// use when more than one is configured; empty means first configured wins.
func NewOrchestrator(adapters []spi.Adapter, preferred string, contextB *ContextBuilder, dispatcher *Dispatcher, chatRepo repo.ChatRepository) *Orchestrator {
	return &Orchestrator{
		adapters:   adapters,
		preferred:  preferred,
		contextB:   contextB,
		dispatcher: dispatcher,
		chatRepo:   chatRepo,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Chat processes one user turn end to end.
func (o *Orchestrator) Chat(ctx context.Context, userID string, in *ChatInput) (*ChatResult, error) {
	conversationID := in.ConversationID
	if conversationID == "" {
		conversationID = o.newConversationID()
	}

	adapter := provider.Select(o.preferred, o.adapters)

	history, err := o.contextB.BuildHistory(ctx, userID, in.ConversationID, in.IncludeHistory)
	if err != nil {
		return nil, err
	}
	digest, err := o.contextB.BuildDigest(ctx, userID)
	if err != nil {
		return nil, err
	}

	completion := o.complete(ctx, adapter, &spi.CompletionRequest{
		SystemPrompt:  SystemPrompt,
		ContextDigest: digest,
		History:       history,
		UserMessage:   in.Message,
		Tools:         catalog.ToolInfos(),
	})

	// The user turn is committed before any tool effect so the conversation
	// record never shows effects without their cause.
	userMsg := entity.NewUserMessage(userID, conversationID, in.Message)
	userMsg.ID = o.newID()
	userMsg.CreatedAt = o.now()
	if err := o.chatRepo.Create(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("persist user message: %w", err)
	}

	results := o.dispatcher.Dispatch(ctx, userID, completion.ToolCalls)

	assistantMsg := entity.NewAssistantMessage(userID, conversationID, completion.Text)
	assistantMsg.ID = o.newID()
	assistantMsg.CreatedAt = o.now()
	assistantMsg.ToolCalls = completion.ToolCalls
	assistantMsg.ToolResults = results
	assistantMsg.ModelUsed = completion.Model
	assistantMsg.TokensUsed = completion.TokensUsed
	if err := o.chatRepo.Create(ctx, assistantMsg); err != nil {
		// The reply already exists and the tool effects are committed; losing
		// one history row is not worth failing the turn.
		logger.Error("[Orchestrator] persist assistant message failed: %v", err)
	}

	return &ChatResult{
		Message:        completion.Text,
		ConversationID: conversationID,
		ModelUsed:      completion.Model,
		TokensUsed:     completion.TokensUsed,
		ToolCalls:      completion.ToolCalls,
		ToolResults:    results,
		CreatedEntries: createdEntries(completion.ToolCalls, results),
	}, nil
}

// complete calls the selected provider, or produces the unconfigured notice
// when no provider has credentials.
func (o *Orchestrator) complete(ctx context.Context, adapter spi.Adapter, req *spi.CompletionRequest) *entity.Completion {
	if adapter == nil {
		return &entity.Completion{Text: NotConfiguredMessage, Model: "none"}
	}

	completion, err := adapter.Complete(ctx, req)
	if err != nil || completion == nil {
		logger.Error("[Orchestrator] provider %s completion failed: %v", adapter.Name(), err)
		return &entity.Completion{
			Text:  fmt.Sprintf("Sorry, I encountered an error: %v", err),
			Model: "none",
		}
	}
	return completion
}

// History returns the conversation's stored turns, oldest first.
func (o *Orchestrator) History(ctx context.Context, userID, conversationID string, limit int) ([]*entity.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultHistoryQueryLimit
	}
	msgs, err := o.chatRepo.ListRecent(ctx, userID, conversationID, limit)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

func createdEntries(calls []*entity.ToolCall, results []*entity.ToolResult) []*CreatedEntry {
	var entries []*CreatedEntry
	for i, res := range results {
		if i >= len(calls) || !res.Success {
			continue
		}
		entryType, ok := entryTypes[calls[i].Name]
		if !ok {
			continue
		}
		entries = append(entries, &CreatedEntry{Type: entryType, Data: res.Result})
	}
	return entries
}

// newConversationID mints a fresh conversation identifier from the current
// time, second precision with a microsecond fraction.
func (o *Orchestrator) newConversationID() string {
	return fmt.Sprintf("%.6f", float64(o.now().UnixMicro())/1e6)
}
