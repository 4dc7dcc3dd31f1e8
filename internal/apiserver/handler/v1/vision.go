package v1

import (
	"encoding/base64"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kinetra/kinetra/internal/apiserver/handler/middleware"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/runtime"
	"github.com/kinetra/kinetra/internal/pkg/core"
	"github.com/kinetra/kinetra/pkg/errorx"
)

// VisionHandler handles meal photo analysis REST API endpoints.
type VisionHandler struct {
	vision *runtime.VisionService
}

// NewVisionHandler creates a new VisionHandler.
func NewVisionHandler(vision *runtime.VisionService) *VisionHandler {
	return &VisionHandler{vision: vision}
}

// Analyze handles POST /v1/ai/vision/analyze.
func (h *VisionHandler) Analyze(c *gin.Context) {
	var req VisionAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		core.WriteResponse(c, errorx.WrapC(err, ErrBind, "bind vision request"), nil)
		return
	}

	// Reject payloads that are not base64 before spending a vendor call.
	if _, err := base64.StdEncoding.DecodeString(req.ImageBase64); err != nil {
		core.WriteResponse(c, errorx.WrapC(err, ErrImageDecode, "decode image payload"), nil)
		return
	}

	analysis, err := h.vision.Analyze(c.Request.Context(), middleware.UserID(c), req.ImageBase64, req.MimeType, req.Prompt)
	if err != nil {
		core.WriteResponse(c, errorx.WrapC(err, ErrVisionAnalyze, "analyze image"), nil)
		return
	}
	core.WriteResponse(c, nil, analysis)
}

// History handles GET /v1/ai/vision/history.
func (h *VisionHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	records, err := h.vision.History(c.Request.Context(), middleware.UserID(c), limit)
	if err != nil {
		core.WriteResponse(c, errorx.WrapC(err, ErrVisionList, "list image analyses"), nil)
		return
	}
	core.WriteResponse(c, nil, gin.H{"analyses": records})
}
