// Package macro calculates daily nutrition targets from body metrics and
// goals using the Mifflin-St Jeor equation.
package macro

import (
	"math"

	"github.com/kinetra/kinetra/internal/apiserver/service/assistant/domain/entity"
)

// CaloriesPerKg is the energy content of one kg of body weight change.
const CaloriesPerKg = 7700

const (
	// DefaultProteinPerKg is grams of protein per kg of body weight.
	DefaultProteinPerKg = 1.8
	// MinProteinPercent floors protein at 10% of target calories.
	MinProteinPercent = 0.10
	// FatPercent allocates 25% of target calories to fat.
	FatPercent = 0.25
	// FiberPer1000Kcal is grams of fiber per 1000 calories.
	FiberPer1000Kcal = 14.0

	// MinCutCalories is the absolute floor for a cutting target.
	MinCutCalories = 1200
)

// activity level multipliers for TDEE
var activityMultipliers = map[entity.ActivityLevel]float64{
	entity.ActivitySedentary:  1.2,
	entity.ActivityLight:      1.375,
	entity.ActivityModerate:   1.55,
	entity.ActivityActive:     1.725,
	entity.ActivityVeryActive: 1.9,
}

// Targets is the full calculation result, including the intermediate
// metabolic values.
type Targets struct {
	Calories         int     `json:"calories"`
	ProteinG         float64 `json:"protein_g"`
	CarbsG           float64 `json:"carbs_g"`
	FatG             float64 `json:"fat_g"`
	FiberG           float64 `json:"fiber_g"`
	BMR              int     `json:"bmr"`
	TDEE             int     `json:"tdee"`
	DeficitOrSurplus int     `json:"deficit_or_surplus"`
}

// Input collects everything the calculation needs. ProteinPerKg zero means
// the default ratio.
type Input struct {
	Sex               entity.Sex
	WeightKg          float64
	HeightCm          float64
	Age               int
	ActivityLevel     entity.ActivityLevel
	GoalType          entity.GoalType
	GoalRateKgPerWeek float64
	ProteinPerKg      float64
}

// BMR computes basal metabolic rate with Mifflin-St Jeor:
// male 10w + 6.25h - 5a + 5, female 10w + 6.25h - 5a - 161.
func BMR(sex entity.Sex, weightKg, heightCm float64, age int) int {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == entity.SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return int(math.Round(bmr))
}

// TDEE scales BMR by the activity multiplier. Unknown levels use the
// moderate multiplier.
func TDEE(bmr int, level entity.ActivityLevel) int {
	mult, ok := activityMultipliers[level]
	if !ok {
		mult = 1.55
	}
	return int(math.Round(float64(bmr) * mult))
}

// TargetCalories applies the goal to TDEE and returns the target along with
// the daily deficit (negative) or surplus (positive).
func TargetCalories(tdee int, goal entity.GoalType, rateKgPerWeek float64) (int, int) {
	if goal == entity.GoalMaintain {
		return tdee, 0
	}

	dailyAdjustment := int(math.Round(CaloriesPerKg / 7.0 * rateKgPerWeek))

	if goal == entity.GoalCut {
		target := tdee - dailyAdjustment
		if target < MinCutCalories {
			target = MinCutCalories
		}
		return target, -dailyAdjustment
	}

	// Bulk at half the requested rate to limit fat gain.
	surplus := int(math.Round(float64(dailyAdjustment) * 0.5))
	return tdee + surplus, surplus
}

// Calculate produces the complete target set.
func Calculate(in Input) *Targets {
	proteinRatio := in.ProteinPerKg
	if proteinRatio <= 0 {
		proteinRatio = DefaultProteinPerKg
	}
	rate := in.GoalRateKgPerWeek
	if rate == 0 {
		rate = 0.5
	}

	bmr := BMR(in.Sex, in.WeightKg, in.HeightCm, in.Age)
	tdee := TDEE(bmr, in.ActivityLevel)
	target, adjustment := TargetCalories(tdee, in.GoalType, rate)

	proteinG := round1(in.WeightKg * proteinRatio)
	proteinCalories := proteinG * 4
	if minProtein := float64(target) * MinProteinPercent; proteinCalories < minProtein {
		proteinG = round1(minProtein / 4)
		proteinCalories = proteinG * 4
	}

	fatCalories := float64(target) * FatPercent
	fatG := round1(fatCalories / 9)

	carbsG := round1(math.Max((float64(target)-proteinCalories-fatCalories)/4, 0))

	fiberG := round1(float64(target) / 1000 * FiberPer1000Kcal)

	return &Targets{
		Calories:         target,
		ProteinG:         proteinG,
		CarbsG:           carbsG,
		FatG:             fatG,
		FiberG:           fiberG,
		BMR:              bmr,
		TDEE:             tdee,
		DeficitOrSurplus: adjustment,
	}
}

// EstimateWeeksToGoal returns the weeks needed to close the weight gap at
// the given rate, or 0 when the rate is not positive.
func EstimateWeeksToGoal(currentKg, targetKg, rateKgPerWeek float64) int {
	if rateKgPerWeek <= 0 {
		return 0
	}
	return int(math.Round(math.Abs(currentKg-targetKg) / rateKgPerWeek))
}

// ValidateGoalRate checks that a goal rate is safe. It returns ok=false with
// a reason for unsafe rates, and ok=true with a non-empty warning for legal
// but aggressive ones.
func ValidateGoalRate(goal entity.GoalType, rateKgPerWeek float64) (bool, string) {
	if goal == entity.GoalMaintain {
		if rateKgPerWeek != 0 {
			return false, "Rate should be 0 for maintenance goal"
		}
		return true, ""
	}

	if rateKgPerWeek < 0 {
		return false, "Rate must be positive"
	}

	switch goal {
	case entity.GoalCut:
		if rateKgPerWeek > 1.0 {
			return false, "Losing more than 1kg/week is not recommended for health"
		}
		if rateKgPerWeek > 0.75 {
			return true, "This is an aggressive deficit. Consider 0.5kg/week for sustainability"
		}
	case entity.GoalBulk:
		if rateKgPerWeek > 0.5 {
			return false, "Gaining more than 0.5kg/week will likely result in excess fat gain"
		}
		if rateKgPerWeek > 0.25 {
			return true, "Consider a slower bulk (0.25kg/week) to minimize fat gain"
		}
	}

	return true, ""
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
