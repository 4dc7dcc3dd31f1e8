package runtime

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/provider/spi"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/store/inmemory"
)

// visionAdapter returns a canned observation and records the request.
type visionAdapter struct {
	name       string
	configured bool
	obs        *entity.VisionObservation
	err        error
	lastReq    *spi.VisionRequest
}

func (a *visionAdapter) Name() string     { return a.name }
func (a *visionAdapter) Configured() bool { return a.configured }

func (a *visionAdapter) Complete(context.Context, *spi.CompletionRequest) (*entity.Completion, error) {
	return &entity.Completion{Model: a.name}, nil
}

func (a *visionAdapter) AnalyzeImage(_ context.Context, req *spi.VisionRequest) (*entity.VisionObservation, error) {
	a.lastReq = req
	return a.obs, a.err
}

func newVisionService(adapter spi.Adapter) (*VisionService, *inmemory.VisionStore) {
	store := inmemory.NewVisionStore()
	var adapters []spi.Adapter
	if adapter != nil {
		adapters = []spi.Adapter{adapter}
	}
	s := NewVisionService(adapters, "", store)
	s.now = func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }
	s.newID = func() string { return "vision-1" }
	return s, store
}

func TestAnalyzeWithoutProvider(t *testing.T) {
	s, store := newVisionService(nil)

	analysis, err := s.Analyze(context.Background(), "u1", "Zm9v", "image/jpeg", "")
	require.NoError(t, err)

	assert.Equal(t, "AI service is not configured.", analysis.Description)
	assert.Equal(t, "none", analysis.ModelUsed)
	assert.Empty(t, analysis.Items)

	// Nothing recorded for an unconfigured service.
	records, err := store.ListRecent(context.Background(), "u1", 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAnalyzeProviderFailure(t *testing.T) {
	adapter := &visionAdapter{
		name:       "openai",
		configured: true,
		obs:        &entity.VisionObservation{Model: "gpt-4o"},
		err:        errors.New("rate limited"),
	}
	s, _ := newVisionService(adapter)

	analysis, err := s.Analyze(context.Background(), "u1", "Zm9v", "image/jpeg", "")
	require.NoError(t, err)

	assert.Equal(t, "Error analyzing image: rate limited", analysis.Description)
	assert.Equal(t, "gpt-4o", analysis.ModelUsed)
	assert.Empty(t, analysis.Items)
}

func TestAnalyzeSuccessPersistsRecord(t *testing.T) {
	adapter := &visionAdapter{
		name:       "anthropic",
		configured: true,
		obs: &entity.VisionObservation{
			Model: "claude-sonnet-4-5",
			Text: `Here is the analysis:
{"items": [{"name": "Grilled chicken", "grams_estimate": 150, "calories": 250, "protein_g": 45, "carbs_g": 0, "fat_g": 6, "confidence": 0.9}],
 "overall_confidence": 0.85, "description": "Grilled chicken breast"}`,
		},
	}
	s, store := newVisionService(adapter)

	analysis, err := s.Analyze(context.Background(), "u1", "Zm9v", "image/jpeg", "large portion")
	require.NoError(t, err)

	assert.Equal(t, "claude-sonnet-4-5", analysis.ModelUsed)
	assert.Equal(t, "Grilled chicken breast", analysis.Description)
	assert.Equal(t, 0.85, analysis.Confidence)
	require.Len(t, analysis.Items, 1)
	assert.Equal(t, "Grilled chicken", analysis.Items[0].Name)
	assert.Equal(t, 150.0, analysis.Items[0].GramsEstimate)
	assert.Equal(t, 250.0, analysis.Totals.Calories)

	// The user's extra context rides along in the prompt.
	require.NotNil(t, adapter.lastReq)
	assert.Contains(t, adapter.lastReq.Prompt, "User context: large portion")

	records, err := store.ListRecent(context.Background(), "u1", 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "vision-1", records[0].ID)
	assert.Equal(t, analysis, records[0].Analysis)
}

func TestParseVisionReplyDefaults(t *testing.T) {
	analysis := parseVisionReply(`{"items": [{"name": "Rice", "calories": 130, "protein_g": 2.7, "carbs_g": 28, "fat_g": 0.3}]}`)

	require.Len(t, analysis.Items, 1)
	assert.Equal(t, defaultGramsEstimate, analysis.Items[0].GramsEstimate)
	assert.Equal(t, defaultConfidence, analysis.Items[0].Confidence)
	assert.Equal(t, defaultConfidence, analysis.Confidence)
	assert.Equal(t, defaultDescription, analysis.Description)
}

func TestParseVisionReplyMarkdownFence(t *testing.T) {
	text := "```json\n{\"items\": [], \"overall_confidence\": 0.3, \"description\": \"Empty plate\"}\n```"

	analysis := parseVisionReply(text)
	assert.Empty(t, analysis.Items)
	assert.Equal(t, 0.3, analysis.Confidence)
	assert.Equal(t, "Empty plate", analysis.Description)
}

func TestParseVisionReplyMultipleItemsTotals(t *testing.T) {
	analysis := parseVisionReply(`{"items": [
		{"name": "Pasta", "calories": 400, "protein_g": 14, "carbs_g": 75, "fat_g": 5},
		{"name": "Sauce", "calories": 80, "protein_g": 2, "carbs_g": 10, "fat_g": 4}
	]}`)

	require.Len(t, analysis.Items, 2)
	assert.Equal(t, 480.0, analysis.Totals.Calories)
	assert.Equal(t, 16.0, analysis.Totals.ProteinG)
	assert.Equal(t, 85.0, analysis.Totals.CarbsG)
	assert.Equal(t, 9.0, analysis.Totals.FatG)
}

func TestParseVisionReplyMissingItemName(t *testing.T) {
	analysis := parseVisionReply(`{"items": [{"calories": 100}]}`)

	assert.True(t, strings.HasPrefix(analysis.Description, "Failed to parse response: "))
	assert.Empty(t, analysis.Items)
}

func TestParseVisionReplyNoJSON(t *testing.T) {
	analysis := parseVisionReply("I cannot identify any food in this image.")

	assert.Equal(t, "Failed to parse response: I cannot identify any food in this image.", analysis.Description)
	assert.Empty(t, analysis.Items)
	assert.Zero(t, analysis.Confidence)
}

func TestParseVisionReplySnippetTruncated(t *testing.T) {
	text := strings.Repeat("a", 500)

	analysis := parseVisionReply(text)
	assert.Equal(t, "Failed to parse response: "+strings.Repeat("a", parseErrorSnippetSize), analysis.Description)
}

func TestParseVisionReplyMalformedJSON(t *testing.T) {
	analysis := parseVisionReply(`{"items": [}`)

	assert.True(t, strings.HasPrefix(analysis.Description, "Failed to parse response: "))
}
