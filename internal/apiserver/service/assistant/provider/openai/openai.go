// Package openai implements the provider adapter for OpenAI and
// OpenAI-compatible endpoints.
package openai

import (
	"context"
	"sync"

	"github.com/bytedance/gg/gptr"
	einoOpenAI "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/provider/helper"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/provider/spi"
	"github.com/kinetra/kinetra/pkg/logger"
)

const Name = "openai"

const (
	defaultModel       = "gpt-4-turbo-preview"
	defaultVisionModel = "gpt-4-vision-preview"

	chatMaxTokens   = 1000
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
	// BaseURL points at an OpenAI-compatible endpoint; empty means the
	// default OpenAI API.
	BaseURL string
}

// Adapter talks to an OpenAI-style chat completions API through Eino.
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

// chatModel returns a cached Eino ChatModel for the given model name.
func (a *Adapter) chatModel(ctx context.Context, modelName string, maxTokens int, temperature float32) (model.ToolCallingChatModel, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if cm, ok := a.models[modelName]; ok {
		return cm, nil
	}

	cfg := &einoOpenAI.ChatModelConfig{
		Model:       modelName,
		APIKey:      a.apiKey,
		MaxTokens:   gptr.Of(maxTokens),
		Temperature: gptr.Of(temperature),
	}
	if a.baseURL != "" {
		cfg.BaseURL = a.baseURL
	}

	cm, err := einoOpenAI.NewChatModel(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.models[modelName] = cm
	return cm, nil
}

func (a *Adapter) Complete(ctx context.Context, req *spi.CompletionRequest) (*entity.Completion, error) {
	cm, err := a.chatModel(ctx, a.model, chatMaxTokens, chatTemperature)
	if err != nil {
		logger.Error("[Provider] openai chat model init failed: %v", err)
		return helper.Degraded(a.model, err), nil
	}

	if len(req.Tools) > 0 {
		cm, err = cm.WithTools(req.Tools)
		if err != nil {
			logger.Error("[Provider] openai tool binding failed: %v", err)
			return helper.Degraded(a.model, err), nil
		}
	}

	msgs := helper.BuildMessages(req.SystemPrompt, req.ContextDigest, req.History, req.UserMessage)
	reply, err := cm.Generate(ctx, msgs)
	if err != nil {
		logger.Warn("[Provider] openai generate failed: %v", err)
		return helper.Degraded(a.model, err), nil
	}

	comp, err := helper.Normalize(reply, a.model)
	if err != nil {
		logger.Warn("[Provider] openai reply normalization failed: %v", err)
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
