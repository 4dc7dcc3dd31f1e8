package runtime

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/repo"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/provider"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/provider/spi"
	"github.com/kinetra/kinetra/pkg/logger"
	"github.com/kinetra/kinetra/pkg/utils/json"
)

const (
	defaultGramsEstimate  = 100.0
	defaultConfidence     = 0.5
	defaultDescription    = "Food image analyzed"
	parseErrorSnippetSize = 200
)

// VisionService analyzes meal photos. It never returns an error to the
// caller: every failure mode degrades into an analysis whose description
// explains what went wrong.
type VisionService struct {
	adapters   []spi.Adapter
	preferred  string
	visionRepo repo.VisionRepository

	now   func() time.Time
	newID func() string
}

// NewVisionService wires the image analysis pipeline.
func NewVisionService(adapters []spi.Adapter, preferred string, visionRepo repo.VisionRepository) *VisionService {
	return &VisionService{
		adapters:   adapters,
		preferred:  preferred,
		visionRepo: visionRepo,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Analyze runs one meal photo through the vision model and returns the
// parsed nutrition estimate. userPrompt is optional extra context from the
// user ("this is a large portion").
func (s *VisionService) Analyze(ctx context.Context, userID, imageBase64, mimeType, userPrompt string) (*entity.VisionAnalysis, error) {
	adapter := provider.Select(s.preferred, s.adapters)
	if adapter == nil {
		return &entity.VisionAnalysis{
			Items:       []*entity.VisionFoodItem{},
			Description: "AI service is not configured.",
			ModelUsed:   "none",
		}, nil
	}

	prompt := VisionPrompt
	if userPrompt != "" {
		prompt += "\n\nUser context: " + userPrompt
	}

	obs, err := adapter.AnalyzeImage(ctx, &spi.VisionRequest{
		Prompt:      prompt,
		ImageBase64: imageBase64,
		MimeType:    mimeType,
	})
	if err != nil {
		logger.Warn("[Vision] provider %s image analysis failed: %v", adapter.Name(), err)
		analysis := &entity.VisionAnalysis{
			Items:       []*entity.VisionFoodItem{},
			Description: fmt.Sprintf("Error analyzing image: %v", err),
		}
		if obs != nil {
			analysis.ModelUsed = obs.Model
		}
		return analysis, nil
	}

	analysis := parseVisionReply(obs.Text)
	analysis.ModelUsed = obs.Model
	s.record(ctx, userID, analysis)
	return analysis, nil
}

// record persists the analysis for later review. Persistence failures do
// not fail the analysis.
func (s *VisionService) record(ctx context.Context, userID string, analysis *entity.VisionAnalysis) {
	rec := &entity.VisionRecord{
		ID:        s.newID(),
		UserID:    userID,
		Analysis:  analysis,
		CreatedAt: s.now(),
	}
	if err := s.visionRepo.Create(ctx, rec); err != nil {
		logger.Error("[Vision] persist analysis failed: %v", err)
	}
}

// History returns the user's stored analyses, newest first.
func (s *VisionService) History(ctx context.Context, userID string, limit int) ([]*entity.VisionRecord, error) {
	return s.visionRepo.ListRecent(ctx, userID, limit)
}

type visionItemPayload struct {
	Name               *string  `json:"name"`
	PortionDescription string   `json:"portion_description"`
	GramsEstimate      *float64 `json:"grams_estimate"`
	Calories           float64  `json:"calories"`
	ProteinG           float64  `json:"protein_g"`
	CarbsG             float64  `json:"carbs_g"`
	FatG               float64  `json:"fat_g"`
	Confidence         *float64 `json:"confidence"`
}

type visionPayload struct {
	Items             []*visionItemPayload `json:"items"`
	OverallConfidence *float64             `json:"overall_confidence"`
	Description       string               `json:"description"`
}

// parseVisionReply extracts and decodes the JSON object from the model's
// reply. Models wrap the object in prose or markdown fences, so everything
// outside the outermost braces is discarded.
func parseVisionReply(text string) *entity.VisionAnalysis {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return parseFailure(text)
	}

	var payload visionPayload
	if err := json.UnmarshalString(text[start:end+1], &payload); err != nil {
		return parseFailure(text)
	}

	analysis := &entity.VisionAnalysis{
		Items:       make([]*entity.VisionFoodItem, 0, len(payload.Items)),
		Confidence:  defaultConfidence,
		Description: defaultDescription,
	}
	if payload.OverallConfidence != nil {
		analysis.Confidence = *payload.OverallConfidence
	}
	if payload.Description != "" {
		analysis.Description = payload.Description
	}

	for _, raw := range payload.Items {
		if raw == nil || raw.Name == nil || *raw.Name == "" {
			return parseFailure(text)
		}
		item := &entity.VisionFoodItem{
			Name:               *raw.Name,
			PortionDescription: raw.PortionDescription,
			GramsEstimate:      defaultGramsEstimate,
			Calories:           raw.Calories,
			ProteinG:           raw.ProteinG,
			CarbsG:             raw.CarbsG,
			FatG:               raw.FatG,
			Confidence:         defaultConfidence,
		}
		if raw.GramsEstimate != nil {
			item.GramsEstimate = *raw.GramsEstimate
		}
		if raw.Confidence != nil {
			item.Confidence = *raw.Confidence
		}
		analysis.Items = append(analysis.Items, item)

		analysis.Totals.Calories += item.Calories
		analysis.Totals.ProteinG += item.ProteinG
		analysis.Totals.CarbsG += item.CarbsG
		analysis.Totals.FatG += item.FatG
	}

	return analysis
}

func parseFailure(text string) *entity.VisionAnalysis {
	snippet := text
	if len(snippet) > parseErrorSnippetSize {
		snippet = snippet[:parseErrorSnippetSize]
	}
	return &entity.VisionAnalysis{
		Items:       []*entity.VisionFoodItem{},
		Description: "Failed to parse response: " + snippet,
	}
}
