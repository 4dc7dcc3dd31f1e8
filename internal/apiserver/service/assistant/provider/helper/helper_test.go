package helper

import (
	"strings"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
)

func TestResolveEnvValue(t *testing.T) {
	t.Setenv("KINETRA_TEST_KEY", "sk-secret")

	assert.Equal(t, "sk-secret", ResolveEnvValue("${KINETRA_TEST_KEY}"))
	assert.Equal(t, "literal-key", ResolveEnvValue("literal-key"))
	assert.Equal(t, "", ResolveEnvValue("${KINETRA_TEST_UNSET}"))
}

func turn(role entity.Role, content string) *entity.ChatMessage {
	return &entity.ChatMessage{Role: role, Content: content}
}

func TestTrimHistoryFilters(t *testing.T) {
	history := []*entity.ChatMessage{
		turn(entity.RoleSystem, "system text"),
		turn(entity.RoleUser, "hello"),
		turn(entity.RoleAssistant, "   "),
		turn(entity.RoleTool, "tool output"),
		turn(entity.RoleAssistant, "hi there"),
	}

	kept := TrimHistory(history, 10)
	require.Len(t, kept, 2)
	assert.Equal(t, "hello", kept[0].Content)
	assert.Equal(t, "hi there", kept[1].Content)
}

func TestTrimHistoryKeepsLastN(t *testing.T) {
	var history []*entity.ChatMessage
	for i := 0; i < 15; i++ {
		history = append(history, turn(entity.RoleUser, strings.Repeat("x", i+1)))
	}

	kept := TrimHistory(history, 10)
	require.Len(t, kept, 10)
	// The oldest five are dropped, so the first kept turn is #6.
	assert.Equal(t, strings.Repeat("x", 6), kept[0].Content)
	assert.Equal(t, strings.Repeat("x", 15), kept[9].Content)
}

func TestBuildMessages(t *testing.T) {
	history := []*entity.ChatMessage{
		turn(entity.RoleUser, "what did I eat?"),
		turn(entity.RoleAssistant, "you logged oatmeal"),
	}

	msgs := BuildMessages("You are a coach.", "Current user context:\n- Name: Sam", history, "add 500ml water")
	require.Len(t, msgs, 4)

	assert.Equal(t, schema.System, msgs[0].Role)
	assert.Equal(t, "You are a coach.\n\nCurrent user context:\n- Name: Sam", msgs[0].Content)
	assert.Equal(t, schema.User, msgs[1].Role)
	assert.Equal(t, schema.Assistant, msgs[2].Role)
	assert.Equal(t, schema.User, msgs[3].Role)
	assert.Equal(t, "add 500ml water", msgs[3].Content)
}

func TestBuildMessagesNoDigest(t *testing.T) {
	msgs := BuildMessages("prompt", "", nil, "hi")
	require.Len(t, msgs, 2)
	assert.Equal(t, "prompt", msgs[0].Content)
}

func TestNormalizeDecodesToolCalls(t *testing.T) {
	reply := &schema.Message{
		Role:    schema.Assistant,
		Content: "Logging it now.",
		ToolCalls: []schema.ToolCall{
			{
				ID: "call_1",
				Function: schema.FunctionCall{
					Name:      "add_water",
					Arguments: `{"amount_ml": 500}`,
				},
			},
		},
		ResponseMeta: &schema.ResponseMeta{
			Usage: &schema.TokenUsage{TotalTokens: 42},
		},
	}

	comp, err := Normalize(reply, "test-model")
	require.NoError(t, err)
	assert.Equal(t, "Logging it now.", comp.Text)
	assert.Equal(t, "test-model", comp.Model)
	require.NotNil(t, comp.TokensUsed)
	assert.Equal(t, 42, *comp.TokensUsed)

	require.Len(t, comp.ToolCalls, 1)
	assert.Equal(t, "call_1", comp.ToolCalls[0].ID)
	assert.Equal(t, "add_water", comp.ToolCalls[0].Name)
	assert.Equal(t, 500.0, comp.ToolCalls[0].Arguments["amount_ml"])
}

func TestNormalizePlaceholderForToolOnlyReply(t *testing.T) {
	reply := &schema.Message{
		Role: schema.Assistant,
		ToolCalls: []schema.ToolCall{
			{ID: "call_1", Function: schema.FunctionCall{Name: "add_water", Arguments: `{}`}},
		},
	}

	comp, err := Normalize(reply, "m")
	require.NoError(t, err)
	assert.Equal(t, ToolOnlyPlaceholder, comp.Text)
	assert.Nil(t, comp.TokensUsed)
}

func TestNormalizeEmptyArguments(t *testing.T) {
	reply := &schema.Message{
		Role: schema.Assistant,
		ToolCalls: []schema.ToolCall{
			{ID: "call_1", Function: schema.FunctionCall{Name: "list_favorite_foods", Arguments: ""}},
		},
	}

	comp, err := Normalize(reply, "m")
	require.NoError(t, err)
	require.Len(t, comp.ToolCalls, 1)
	assert.NotNil(t, comp.ToolCalls[0].Arguments)
	assert.Empty(t, comp.ToolCalls[0].Arguments)
}

func TestNormalizeBadArguments(t *testing.T) {
	reply := &schema.Message{
		Role: schema.Assistant,
		ToolCalls: []schema.ToolCall{
			{ID: "call_1", Function: schema.FunctionCall{Name: "add_water", Arguments: `{"amount_ml":`}},
		},
	}

	_, err := Normalize(reply, "m")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "add_water")
}

func TestDegraded(t *testing.T) {
	comp := Degraded("m", assert.AnError)
	assert.Equal(t, "Sorry, I encountered an error: "+assert.AnError.Error(), comp.Text)
	assert.Equal(t, "m", comp.Model)
	assert.Empty(t, comp.ToolCalls)
}

func TestVisionMessages(t *testing.T) {
	msgs := VisionMessages("describe", "aGVsbG8=", "image/png")
	require.Len(t, msgs, 1)
	require.Len(t, msgs[0].MultiContent, 2)
	assert.Equal(t, "describe", msgs[0].MultiContent[0].Text)
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", msgs[0].MultiContent[1].ImageURL.URL)
}

func TestVisionMessagesDefaultMime(t *testing.T) {
	msgs := VisionMessages("p", "Zm9v", "")
	assert.True(t, strings.HasPrefix(msgs[0].MultiContent[1].ImageURL.URL, "data:image/jpeg;base64,"))
}
