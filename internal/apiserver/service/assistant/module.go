// Package assistant assembles the AI assistant: the tool catalog, provider
// adapters, context builder, tool dispatcher, chat orchestrator, and vision
// service, over a pluggable store backend.
package assistant

import (
	"context"
	"fmt"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/repo"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/foodfacts"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/provider/anthropic"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/provider/openai"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/provider/spi"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/runtime"
	boltdbStore "github.com/kinetra/kinetra/internal/apiserver/service/assistant/store/boltdb"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/store/inmemory"
	"github.com/kinetra/kinetra/pkg/logger"
)

// Config holds the configuration for the assistant module.
// Follows K8S-style: Config → Complete() → New(ctx).
type Config struct {
	// Provider names the preferred LLM vendor ("anthropic" or "openai").
	// Empty means the first vendor with credentials wins, anthropic first.
	Provider string `json:"provider,omitempty"`

	// AnthropicAPIKey may be a literal key or a "${ENV_VAR}" reference.
	AnthropicAPIKey string `json:"anthropic_api_key,omitempty"`
	// AnthropicModel overrides the default Anthropic chat/vision model.
	AnthropicModel string `json:"anthropic_model,omitempty"`

	// OpenAIAPIKey may be a literal key or a "${ENV_VAR}" reference.
	OpenAIAPIKey string `json:"openai_api_key,omitempty"`
	// OpenAIModel overrides the default OpenAI chat model.
	OpenAIModel string `json:"openai_model,omitempty"`
	// OpenAIVisionModel overrides the default OpenAI vision model.
	OpenAIVisionModel string `json:"openai_vision_model,omitempty"`
	// OpenAIBaseURL points at an OpenAI-compatible endpoint.
	OpenAIBaseURL string `json:"openai_base_url,omitempty"`

	// StoreType selects the persistence backend: "inmemory" or "boltdb".
	// Default: "inmemory".
	StoreType string `json:"store_type,omitempty"`

	// BoltDBPath is the file path for BoltDB storage (when StoreType="boltdb").
	// Default: "data/kinetra.db".
	BoltDBPath string `json:"boltdb_path,omitempty"`

	// FoodFactsBaseURL overrides the Open Food Facts API endpoint.
	FoodFactsBaseURL string `json:"food_facts_base_url,omitempty"`
}

// CompletedConfig is the validated and completed configuration.
type CompletedConfig struct {
	*Config
}

// Complete validates and fills defaults.
func (c *Config) Complete() CompletedConfig {
	if c.AnthropicAPIKey == "" {
		c.AnthropicAPIKey = "${ANTHROPIC_API_KEY}"
	}
	if c.OpenAIAPIKey == "" {
		c.OpenAIAPIKey = "${OPENAI_API_KEY}"
	}
	if c.StoreType == "" {
		c.StoreType = "inmemory"
	}
	if c.BoltDBPath == "" {
		c.BoltDBPath = "data/kinetra.db"
	}
	return CompletedConfig{c}
}

// Module is the top-level assistant module.
//
// It exposes:
//   - Orchestrator: chat turns and conversation history
//   - Vision: meal photo analysis
type Module struct {
	Orchestrator *runtime.Orchestrator
	Vision       *runtime.VisionService
	boltDB       *boltdbStore.DB // nil when using inmemory store
}

// Close releases resources held by the module (e.g., BoltDB handle).
func (m *Module) Close() error {
	if m.boltDB != nil {
		return m.boltDB.Close()
	}
	return nil
}

// New creates and initializes the assistant module from a completed config.
func (c CompletedConfig) New(_ context.Context) (*Module, error) {
	logger.Info("[Assistant] creating assistant module...")

	// Infrastructure layer: select store backend.
	var (
		chatStore     repo.ChatRepository
		mealStore     repo.MealRepository
		workoutStore  repo.WorkoutRepository
		trackingStore repo.TrackingRepository
		profileStore  repo.ProfileRepository
		favoriteStore repo.FavoriteRepository
		visionStore   repo.VisionRepository
		boltDB        *boltdbStore.DB
	)

	switch c.StoreType {
	case "boltdb":
		var err error
		boltDB, err = boltdbStore.Open(c.BoltDBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open boltdb at %s: %w", c.BoltDBPath, err)
		}
		chatStore = boltdbStore.NewChatStore(boltDB)
		mealStore = boltdbStore.NewMealStore(boltDB)
		workoutStore = boltdbStore.NewWorkoutStore(boltDB)
		trackingStore = boltdbStore.NewTrackingStore(boltDB)
		profileStore = boltdbStore.NewProfileStore(boltDB)
		favoriteStore = boltdbStore.NewFavoriteStore(boltDB)
		visionStore = boltdbStore.NewVisionStore(boltDB)
		logger.Info("[Assistant] using BoltDB store at %s", c.BoltDBPath)
	default:
		chatStore = inmemory.NewChatStore()
		mealStore = inmemory.NewMealStore()
		workoutStore = inmemory.NewWorkoutStore()
		trackingStore = inmemory.NewTrackingStore()
		profileStore = inmemory.NewProfileStore()
		favoriteStore = inmemory.NewFavoriteStore()
		visionStore = inmemory.NewVisionStore()
		logger.Info("[Assistant] using in-memory store")
	}

	// Provider adapters, in fallback order.
	adapters := []spi.Adapter{
		anthropic.New(anthropic.Config{
			APIKey:      c.AnthropicAPIKey,
			Model:       c.AnthropicModel,
			VisionModel: c.AnthropicModel,
		}),
		openai.New(openai.Config{
			APIKey:      c.OpenAIAPIKey,
			Model:       c.OpenAIModel,
			VisionModel: c.OpenAIVisionModel,
			BaseURL:     c.OpenAIBaseURL,
		}),
	}

	var foodOpts []foodfacts.Option
	if c.FoodFactsBaseURL != "" {
		foodOpts = append(foodOpts, foodfacts.WithBaseURL(c.FoodFactsBaseURL))
	}
	foodClient := foodfacts.NewClient(foodOpts...)

	toolset := runtime.NewToolset(mealStore, workoutStore, trackingStore, profileStore, favoriteStore, foodClient)
	dispatcher, err := runtime.NewDispatcher(toolset)
	if err != nil {
		if boltDB != nil {
			boltDB.Close()
		}
		return nil, fmt.Errorf("failed to build tool dispatcher: %w", err)
	}

	contextBuilder := runtime.NewContextBuilder(chatStore, mealStore, trackingStore, profileStore)
	orchestrator := runtime.NewOrchestrator(adapters, c.Provider, contextBuilder, dispatcher, chatStore)
	vision := runtime.NewVisionService(adapters, c.Provider, visionStore)

	logger.Info("[Assistant] assistant module initialized (store=%s, provider=%q)", c.StoreType, c.Provider)

	return &Module{
		Orchestrator: orchestrator,
		Vision:       vision,
		boltDB:       boltDB,
	}, nil
}
