package v1

import (
	"time"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/runtime"
)

// ChatRequest is the request body for POST /v1/ai/chat.
type ChatRequest struct {
	// Message is the user's input text.
	Message string `json:"message" binding:"required"`

	// ConversationID continues an existing conversation; empty starts a new
	// one.
	ConversationID string `json:"conversation_id,omitempty"`

	// IncludeHistory controls whether prior turns are loaded into context.
	// Defaults to true.
	IncludeHistory *bool `json:"include_history,omitempty"`
}

// ChatResponse is the response body for POST /v1/ai/chat.
type ChatResponse struct {
	Message        string                  `json:"message"`
	ConversationID string                  `json:"conversation_id"`
	ModelUsed      string                  `json:"model_used"`
	TokensUsed     *int                    `json:"tokens_used,omitempty"`
	ToolCalls      []*entity.ToolCall      `json:"tool_calls,omitempty"`
	ToolResults    []*entity.ToolResult    `json:"tool_results,omitempty"`
	CreatedEntries []*runtime.CreatedEntry `json:"created_entries,omitempty"`
}

// HistoryMessage is one turn in the chat history response.
type HistoryMessage struct {
	ID             string               `json:"id"`
	ConversationID string               `json:"conversation_id"`
	Role           string               `json:"role"`
	Content        string               `json:"content"`
	ToolCalls      []*entity.ToolCall   `json:"tool_calls,omitempty"`
	ToolResults    []*entity.ToolResult `json:"tool_results,omitempty"`
	ModelUsed      string               `json:"model_used,omitempty"`
	CreatedAt      string               `json:"created_at"`
}

// VisionAnalyzeRequest is the request body for POST /v1/ai/vision/analyze.
type VisionAnalyzeRequest struct {
	// ImageBase64 is the base64-encoded image payload.
	ImageBase64 string `json:"image_base64" binding:"required"`

	// MimeType is the image media type. Defaults to "image/jpeg".
	MimeType string `json:"mime_type,omitempty"`

	// Prompt is optional extra context from the user.
	Prompt string `json:"prompt,omitempty"`
}

// FormatTime renders a timestamp in RFC3339 format.
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
