package spi

import (
	"context"

	"github.com/cloudwego/eino/schema"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
)

// CompletionRequest carries everything an adapter needs for one model call.
type CompletionRequest struct {
	// SystemPrompt is the assistant persona and behavior instructions.
	SystemPrompt string
	// ContextDigest is the user-state summary appended to the system prompt.
	// Empty when no profile data is available.
	ContextDigest string
	// History holds prior conversation turns, oldest first. Adapters bound
	// it to the most recent turns themselves.
	History []*entity.ChatMessage
	// UserMessage is the current user input.
	UserMessage string
	// Tools is the catalog converted to Eino tool declarations.
	Tools []*schema.ToolInfo
}

// VisionRequest carries one image analysis call.
type VisionRequest struct {
	// Prompt is the analysis instruction.
	Prompt string
	// ImageBase64 is the base64-encoded image payload.
	ImageBase64 string
	// MimeType is the image media type, e.g. "image/jpeg".
	MimeType string
}

// Adapter is the vendor-neutral interface over one LLM provider.
//
// Complete never surfaces vendor faults as errors: network, auth, and
// malformed-response failures are degraded into an apologetic Completion so
// callers always receive a well-formed result. The error return is reserved
// for programmer mistakes (nil request).
type Adapter interface {
	// Name returns the provider name ("openai" or "anthropic").
	Name() string
	// Configured reports whether the provider has credentials.
	Configured() bool
	// Complete sends one chat turn and returns the normalized result.
	Complete(ctx context.Context, req *CompletionRequest) (*entity.Completion, error)
	// AnalyzeImage sends one vision call and returns the raw model reply.
	// Unlike Complete, vendor faults are returned as errors; the vision
	// service owns degradation. On error the observation still carries the
	// model name.
	AnalyzeImage(ctx context.Context, req *VisionRequest) (*entity.VisionObservation, error)
}
