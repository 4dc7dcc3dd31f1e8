// Package anthropic implements the provider adapter for the Anthropic
// messages API.
package anthropic

import (
	"context"
	"sync"

	"github.com/bytedance/gg/gptr"
	einoClaude "github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino/components/model"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/provider/helper"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/provider/spi"
	"github.com/kinetra/kinetra/pkg/logger"
)

const Name = "anthropic"

const (
	defaultModel       = "claude-sonnet-4-5"
	defaultVisionModel = "claude-sonnet-4-5"

	chatMaxTokens   = 1024
	visionMaxTokens = 1500

	chatTemperature   float32 = 0.7
	visionTemperature float32 = 0.3
)

var _ spi.Adapter = (*Adapter)(nil)

// Config holds the adapter configuration. APIKey may be a "${ENV_VAR}"
// reference.
type Config struct {
	APIKey      string
	Model       string
	VisionModel string
	BaseURL     string
}

// Adapter talks to the Anthropic messages API through Eino.
type Adapter struct {
	apiKey      string
	model       string
	visionModel string
	baseURL     string

	mu     sync.Mutex
	models map[string]model.ToolCallingChatModel
}

func New(cfg Config) *Adapter {
	a := &Adapter{
		apiKey:      helper.ResolveEnvValue(cfg.APIKey),
		model:       cfg.Model,
		visionModel: cfg.VisionModel,
		baseURL:     cfg.BaseURL,
		models:      map[string]model.ToolCallingChatModel{},
	}
	if a.model == "" {
		a.model = defaultModel
	}
	if a.visionModel == "" {
		a.visionModel = defaultVisionModel
	}
	return a
}

func (a *Adapter) Name() string { return Name }

func (a *Adapter) Configured() bool { return a.apiKey != "" }

func (a *Adapter) chatModel(ctx context.Context, modelName string, maxTokens int, temperature float32) (model.ToolCallingChatModel, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if cm, ok := a.models[modelName]; ok {
		return cm, nil
	}

	cfg := &einoClaude.Config{
		APIKey:      a.apiKey,
		Model:       modelName,
		MaxTokens:   maxTokens,
		Temperature: gptr.Of(temperature),
	}
	if a.baseURL != "" {
		cfg.BaseURL = &a.baseURL
	}

	cm, err := einoClaude.NewChatModel(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.models[modelName] = cm
	return cm, nil
}

func (a *Adapter) Complete(ctx context.Context, req *spi.CompletionRequest) (*entity.Completion, error) {
	cm, err := a.chatModel(ctx, a.model, chatMaxTokens, chatTemperature)
	if err != nil {
		logger.Error("[Provider] anthropic chat model init failed: %v", err)
		return helper.Degraded(a.model, err), nil
	}

	if len(req.Tools) > 0 {
		cm, err = cm.WithTools(req.Tools)
		if err != nil {
			logger.Error("[Provider] anthropic tool binding failed: %v", err)
			return helper.Degraded(a.model, err), nil
		}
	}

	msgs := helper.BuildMessages(req.SystemPrompt, req.ContextDigest, req.History, req.UserMessage)
	reply, err := cm.Generate(ctx, msgs)
	if err != nil {
		logger.Warn("[Provider] anthropic generate failed: %v", err)
		return helper.Degraded(a.model, err), nil
	}

	comp, err := helper.Normalize(reply, a.model)
	if err != nil {
		logger.Warn("[Provider] anthropic reply normalization failed: %v", err)
		return helper.Degraded(a.model, err), nil
	}
	return comp, nil
}

func (a *Adapter) AnalyzeImage(ctx context.Context, req *spi.VisionRequest) (*entity.VisionObservation, error) {
	cm, err := a.chatModel(ctx, a.visionModel, visionMaxTokens, visionTemperature)
	if err != nil {
		return &entity.VisionObservation{Model: a.visionModel}, err
	}

	reply, err := cm.Generate(ctx, helper.VisionMessages(req.Prompt, req.ImageBase64, req.MimeType))
	if err != nil {
		return &entity.VisionObservation{Model: a.visionModel}, err
	}

	return &entity.VisionObservation{Text: reply.Content, Model: a.visionModel}, nil
}
