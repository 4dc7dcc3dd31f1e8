package v1

import (
	"net/http"

	"github.com/kinetra/kinetra/pkg/errorx"
)

// Kinetra handler error codes.
// Code format: 1XXYYZ
//   - 1:  module prefix (apiserver handler)
//   - XX: resource group (00=common, 01=chat, 02=vision)
//   - YY: sequential error number
//   - Z:  reserved (0)

const (
	// Common request errors (100xxx).
	ErrBind = 100001

	// Chat errors (1001xx).
	ErrChatTurn    = 100101
	ErrHistoryList = 100102

	// Vision errors (1002xx).
	ErrImageDecode   = 100201
	ErrVisionAnalyze = 100202
	ErrVisionList    = 100203
)

func init() {
	// Common.
	errorx.MustRegister(newCoder(ErrBind, http.StatusBadRequest, "Request body binding failed"))

	// Chat.
	errorx.MustRegister(newCoder(ErrChatTurn, http.StatusInternalServerError, "Chat turn failed"))
	errorx.MustRegister(newCoder(ErrHistoryList, http.StatusInternalServerError, "Failed to list chat history"))

	// Vision.
	errorx.MustRegister(newCoder(ErrImageDecode, http.StatusBadRequest, "Image payload is not valid base64"))
	errorx.MustRegister(newCoder(ErrVisionAnalyze, http.StatusInternalServerError, "Image analysis failed"))
	errorx.MustRegister(newCoder(ErrVisionList, http.StatusInternalServerError, "Failed to list image analyses"))
}

type coder struct {
	code int
	http int
	msg  string
}

func newCoder(code, httpStatus int, msg string) *coder {
	return &coder{code: code, http: httpStatus, msg: msg}
}

func (c *coder) Code() int         { return c.code }
func (c *coder) HTTPStatus() int   { return c.http }
func (c *coder) String() string    { return c.msg }
func (c *coder) Reference() string { return "" }
