package entity

import (
	"time"
)

// Role represents the role of a conversation turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ChatMessage is one persisted turn of an assistant conversation.
//
// This is the domain model; conversion to/from Eino's schema.Message is
// handled inside the provider adapters.
type ChatMessage struct {
	// ID is the unique identifier of the turn.
	ID string `json:"id"`

	// UserID is the owner of the conversation. Every store query is scoped
	// by it.
	UserID string `json:"user_id"`

	// ConversationID groups turns into a conversation thread.
	ConversationID string `json:"conversation_id"`

	// Role is the sender role (user/assistant/system/tool).
	Role Role `json:"role"`

	// Content is the text content of the turn.
	Content string `json:"content"`

	// ToolCalls are tool invocations the assistant requested in this turn.
	ToolCalls []*ToolCall `json:"tool_calls,omitempty"`

	// ToolResults are the outcomes of the dispatched tool calls, paired
	// one-to-one with ToolCalls by ToolCallID.
	ToolResults []*ToolResult `json:"tool_results,omitempty"`

	// ModelUsed records which vendor model produced an assistant turn,
	// or "none" when no provider was configured.
	ModelUsed string `json:"model_used,omitempty"`

	// TokensUsed is the total token count the vendor reported, when known.
	TokensUsed *int `json:"tokens_used,omitempty"`

	// CreatedAt is when this turn was created.
	CreatedAt time.Time `json:"created_at"`
}

// NewUserMessage creates a user turn.
func NewUserMessage(userID, conversationID, content string) *ChatMessage {
	return &ChatMessage{
		UserID:         userID,
		ConversationID: conversationID,
		Role:           RoleUser,
		Content:        content,
		CreatedAt:      time.Now(),
	}
}

// NewAssistantMessage creates an assistant turn.
func NewAssistantMessage(userID, conversationID, content string) *ChatMessage {
	return &ChatMessage{
		UserID:         userID,
		ConversationID: conversationID,
		Role:           RoleAssistant,
		Content:        content,
		CreatedAt:      time.Now(),
	}
}
