package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kinetra/kinetra/internal/apiserver/handler/middleware"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/runtime"
	"github.com/kinetra/kinetra/internal/pkg/core"
	"github.com/kinetra/kinetra/pkg/errorx"
)

// ChatHandler handles assistant chat REST API endpoints.
type ChatHandler struct {
	orch *runtime.Orchestrator
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(orch *runtime.Orchestrator) *ChatHandler {
	return &ChatHandler{orch: orch}
}

// Chat handles POST /v1/ai/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		core.WriteResponse(c, errorx.WrapC(err, ErrBind, "bind chat request"), nil)
		return
	}

	includeHistory := true
	if req.IncludeHistory != nil {
		includeHistory = *req.IncludeHistory
	}

	result, err := h.orch.Chat(c.Request.Context(), middleware.UserID(c), &runtime.ChatInput{
		Message:        req.Message,
		ConversationID: req.ConversationID,
		IncludeHistory: includeHistory,
	})
	if err != nil {
		core.WriteResponse(c, errorx.WrapC(err, ErrChatTurn, "chat turn"), nil)
		return
	}

	core.WriteResponse(c, nil, ChatResponse{
		Message:        result.Message,
		ConversationID: result.ConversationID,
		ModelUsed:      result.ModelUsed,
		TokensUsed:     result.TokensUsed,
		ToolCalls:      result.ToolCalls,
		ToolResults:    result.ToolResults,
		CreatedEntries: result.CreatedEntries,
	})
}

// History handles GET /v1/ai/chat/history.
func (h *ChatHandler) History(c *gin.Context) {
	conversationID := c.Query("conversation_id")
	limit, _ := strconv.Atoi(c.Query("limit"))

	msgs, err := h.orch.History(c.Request.Context(), middleware.UserID(c), conversationID, limit)
	if err != nil {
		core.WriteResponse(c, errorx.WrapC(err, ErrHistoryList, "list chat history"), nil)
		return
	}

	resp := make([]HistoryMessage, 0, len(msgs))
	for _, m := range msgs {
		resp = append(resp, HistoryMessage{
			ID:             m.ID,
			ConversationID: m.ConversationID,
			Role:           string(m.Role),
			Content:        m.Content,
			ToolCalls:      m.ToolCalls,
			ToolResults:    m.ToolResults,
			ModelUsed:      m.ModelUsed,
			CreatedAt:      FormatTime(m.CreatedAt),
		})
	}
	core.WriteResponse(c, nil, gin.H{"messages": resp})
}
