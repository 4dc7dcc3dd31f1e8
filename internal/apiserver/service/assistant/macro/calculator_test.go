package macro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
)

func TestBMR(t *testing.T) {
	// Mifflin-St Jeor: 10*80 + 6.25*180 - 5*30 + 5 = 1780
	assert.Equal(t, 1780, BMR(entity.SexMale, 80, 180, 30))
	// 10*60 + 6.25*165 - 5*25 - 161 = 1345 (rounded from 1345.25)
	assert.Equal(t, 1345, BMR(entity.SexFemale, 60, 165, 25))
}

func TestTDEE(t *testing.T) {
	assert.Equal(t, 2136, TDEE(1780, entity.ActivitySedentary))
	assert.Equal(t, 2759, TDEE(1780, entity.ActivityModerate))
	assert.Equal(t, 3382, TDEE(1780, entity.ActivityVeryActive))
	// Unknown level falls back to moderate.
	assert.Equal(t, 2759, TDEE(1780, entity.ActivityLevel("couch")))
}

func TestTargetCaloriesMaintain(t *testing.T) {
	target, adj := TargetCalories(2500, entity.GoalMaintain, 0.5)
	assert.Equal(t, 2500, target)
	assert.Equal(t, 0, adj)
}

func TestTargetCaloriesCut(t *testing.T) {
	// 7700/7*0.5 = 550/day deficit.
	target, adj := TargetCalories(2500, entity.GoalCut, 0.5)
	assert.Equal(t, 1950, target)
	assert.Equal(t, -550, adj)
}

func TestTargetCaloriesCutFloor(t *testing.T) {
	target, _ := TargetCalories(1500, entity.GoalCut, 1.0)
	assert.Equal(t, MinCutCalories, target)
}

func TestTargetCaloriesBulkHalvesSurplus(t *testing.T) {
	// 7700/7*0.5 = 550, halved to 275.
	target, adj := TargetCalories(2500, entity.GoalBulk, 0.5)
	assert.Equal(t, 2775, target)
	assert.Equal(t, 275, adj)
}

func TestCalculateCut(t *testing.T) {
	targets := Calculate(Input{
		Sex:               entity.SexMale,
		WeightKg:          80,
		HeightCm:          180,
		Age:               30,
		ActivityLevel:     entity.ActivityModerate,
		GoalType:          entity.GoalCut,
		GoalRateKgPerWeek: 0.5,
	})

	require.NotNil(t, targets)
	assert.Equal(t, 1780, targets.BMR)
	assert.Equal(t, 2759, targets.TDEE)
	assert.Equal(t, 2209, targets.Calories)
	assert.Equal(t, -550, targets.DeficitOrSurplus)

	// Protein 1.8 g/kg, above the 10% floor.
	assert.InDelta(t, 144.0, targets.ProteinG, 0.01)
	// Fat is 25% of calories at 9 kcal/g.
	assert.InDelta(t, 61.4, targets.FatG, 0.01)
	// Carbs take the remainder at 4 kcal/g.
	assert.InDelta(t, 270.2, targets.CarbsG, 0.01)
	// Fiber 14 g per 1000 kcal.
	assert.InDelta(t, 30.9, targets.FiberG, 0.01)
}

func TestCalculateDefaultsRateAndProtein(t *testing.T) {
	explicit := Calculate(Input{
		Sex: entity.SexFemale, WeightKg: 60, HeightCm: 165, Age: 25,
		ActivityLevel: entity.ActivityLight, GoalType: entity.GoalCut,
		GoalRateKgPerWeek: 0.5, ProteinPerKg: DefaultProteinPerKg,
	})
	defaulted := Calculate(Input{
		Sex: entity.SexFemale, WeightKg: 60, HeightCm: 165, Age: 25,
		ActivityLevel: entity.ActivityLight, GoalType: entity.GoalCut,
	})
	assert.Equal(t, explicit, defaulted)
}

func TestCalculateProteinFloor(t *testing.T) {
	// Tiny body weight makes 1.8 g/kg fall below 10% of calories.
	targets := Calculate(Input{
		Sex: entity.SexMale, WeightKg: 35, HeightCm: 190, Age: 20,
		ActivityLevel: entity.ActivityVeryActive, GoalType: entity.GoalMaintain,
	})
	// 1.8 g/kg would be 63 g; the 10% floor lifts it.
	assert.Greater(t, targets.ProteinG, 63.0)
	minProtein := float64(targets.Calories) * MinProteinPercent / 4
	assert.InDelta(t, minProtein, targets.ProteinG, 0.1)
}

func TestCalculateCarbsNeverNegative(t *testing.T) {
	targets := Calculate(Input{
		Sex: entity.SexFemale, WeightKg: 120, HeightCm: 150, Age: 60,
		ActivityLevel: entity.ActivitySedentary, GoalType: entity.GoalCut,
		GoalRateKgPerWeek: 1.0,
	})
	assert.GreaterOrEqual(t, targets.CarbsG, 0.0)
}

func TestEstimateWeeksToGoal(t *testing.T) {
	assert.Equal(t, 20, EstimateWeeksToGoal(90, 80, 0.5))
	assert.Equal(t, 20, EstimateWeeksToGoal(80, 90, 0.5))
	assert.Equal(t, 0, EstimateWeeksToGoal(90, 80, 0))
}

func TestValidateGoalRate(t *testing.T) {
	tests := []struct {
		name    string
		goal    entity.GoalType
		rate    float64
		ok      bool
		message string
	}{
		{"maintain zero", entity.GoalMaintain, 0, true, ""},
		{"maintain nonzero", entity.GoalMaintain, 0.5, false, "Rate should be 0 for maintenance goal"},
		{"negative", entity.GoalCut, -0.5, false, "Rate must be positive"},
		{"cut too fast", entity.GoalCut, 1.5, false, "Losing more than 1kg/week is not recommended for health"},
		{"cut aggressive", entity.GoalCut, 0.8, true, "This is an aggressive deficit. Consider 0.5kg/week for sustainability"},
		{"cut fine", entity.GoalCut, 0.5, true, ""},
		{"bulk too fast", entity.GoalBulk, 0.75, false, "Gaining more than 0.5kg/week will likely result in excess fat gain"},
		{"bulk aggressive", entity.GoalBulk, 0.3, true, "Consider a slower bulk (0.25kg/week) to minimize fat gain"},
		{"bulk fine", entity.GoalBulk, 0.2, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := ValidateGoalRate(tt.goal, tt.rate)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.message, msg)
		})
	}
}
