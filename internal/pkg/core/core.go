// Package core holds the shared HTTP response envelope.
package core

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kinetra/kinetra/pkg/errorx"
	"github.com/kinetra/kinetra/pkg/logger"
)

// ErrResponse is the body returned for any failed request.
type ErrResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Reference string `json:"reference,omitempty"`
}

// WriteResponse writes either an error envelope or the success payload.
// Coded errors map to their registered HTTP status; uncoded errors become 500.
func WriteResponse(c *gin.Context, err error, data interface{}) {
	if err != nil {
		logger.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		coder := errorx.ParseCoder(err)
		c.JSON(coder.HTTPStatus(), ErrResponse{
			Code:      coder.Code(),
			Message:   coder.String(),
			Reference: coder.Reference(),
		})
		return
	}
	c.JSON(http.StatusOK, data)
}
