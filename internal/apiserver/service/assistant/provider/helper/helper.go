// Package helper holds the conversion logic shared by the provider adapters:
// domain history to Eino messages, Eino replies to normalized completions,
// and credential resolution.
package helper

import (
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/gg/gptr"
	"github.com/cloudwego/eino/schema"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
	"github.com/kinetra/kinetra/pkg/utils/json"
)

// HistoryLimit bounds how many prior turns are sent to the vendor. Older
// context is dropped rather than summarized.
const HistoryLimit = 10

// ToolOnlyPlaceholder is substituted when the model returns tool calls with
// no accompanying text, so the reply text is never empty.
const ToolOnlyPlaceholder = "Let me log that for you."

// ResolveEnvValue resolves "${ENV_VAR}" references in a string.
func ResolveEnvValue(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		envKey := s[2 : len(s)-1]
		return os.Getenv(envKey)
	}
	return s
}

// BuildMessages assembles the vendor message list: system prompt (with the
// user-state digest appended when present), the most recent history turns,
// and the current user message.
func BuildMessages(systemPrompt, digest string, history []*entity.ChatMessage, userMessage string) []*schema.Message {
	system := systemPrompt
	if digest != "" {
		system = system + "\n\n" + digest
	}

	msgs := []*schema.Message{schema.SystemMessage(system)}
	for _, turn := range TrimHistory(history, HistoryLimit) {
		switch turn.Role {
		case entity.RoleUser:
			msgs = append(msgs, schema.UserMessage(turn.Content))
		case entity.RoleAssistant:
			msgs = append(msgs, schema.AssistantMessage(turn.Content, nil))
		}
	}
	return append(msgs, schema.UserMessage(userMessage))
}

// TrimHistory keeps the last limit turns that are plain user or assistant
// text. Tool and system turns never reach the vendor.
func TrimHistory(history []*entity.ChatMessage, limit int) []*entity.ChatMessage {
	kept := make([]*entity.ChatMessage, 0, len(history))
	for _, turn := range history {
		if turn.Role != entity.RoleUser && turn.Role != entity.RoleAssistant {
			continue
		}
		if strings.TrimSpace(turn.Content) == "" {
			continue
		}
		kept = append(kept, turn)
	}
	if limit > 0 && len(kept) > limit {
		kept = kept[len(kept)-limit:]
	}
	return kept
}

// Normalize converts an Eino reply into the vendor-neutral completion.
// Tool-call arguments are decoded from JSON; a decode failure is returned
// as an error so the adapter can degrade the whole reply.
func Normalize(reply *schema.Message, modelName string) (*entity.Completion, error) {
	calls := make([]*entity.ToolCall, 0, len(reply.ToolCalls))
	for _, tc := range reply.ToolCalls {
		args := map[string]interface{}{}
		if raw := strings.TrimSpace(tc.Function.Arguments); raw != "" {
			if err := json.UnmarshalString(raw, &args); err != nil {
				return nil, fmt.Errorf("decode arguments for tool %q: %w", tc.Function.Name, err)
			}
		}
		calls = append(calls, &entity.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: args,
		})
	}

	text := strings.TrimSpace(reply.Content)
	if text == "" && len(calls) > 0 {
		text = ToolOnlyPlaceholder
	}

	comp := &entity.Completion{
		Text:      text,
		ToolCalls: calls,
		Model:     modelName,
	}
	if reply.ResponseMeta != nil && reply.ResponseMeta.Usage != nil {
		comp.TokensUsed = gptr.Of(reply.ResponseMeta.Usage.TotalTokens)
	}
	return comp, nil
}

// Degraded converts a vendor fault into an apologetic completion with no
// tool calls, so a provider outage degrades to a chat-only reply.
func Degraded(modelName string, err error) *entity.Completion {
	return &entity.Completion{
		Text:  fmt.Sprintf("Sorry, I encountered an error: %v", err),
		Model: modelName,
	}
}

// VisionMessages builds the single-turn multimodal message for an image
// analysis call. The image travels as a base64 data URL.
func VisionMessages(prompt, imageBase64, mimeType string) []*schema.Message {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return []*schema.Message{
		{
			Role: schema.User,
			MultiContent: []schema.ChatMessagePart{
				{
					Type: schema.ChatMessagePartTypeText,
					Text: prompt,
				},
				{
					Type: schema.ChatMessagePartTypeImageURL,
					ImageURL: &schema.ChatMessageImageURL{
						URL:    fmt.Sprintf("data:%s;base64,%s", mimeType, imageBase64),
						Detail: schema.ImageURLDetailHigh,
					},
				},
			},
		},
	}
}
