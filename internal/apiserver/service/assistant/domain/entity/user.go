package entity

import (
	"time"
)

// Sex is the biological sex used for energy expenditure estimates.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ActivityLevel scales basal metabolic rate into daily energy expenditure.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// GoalType is the direction of a body-composition goal.
type GoalType string

const (
	GoalCut      GoalType = "cut"
	GoalBulk     GoalType = "bulk"
	GoalMaintain GoalType = "maintain"
)

// UserProfile holds a user's identity, body metrics, and nutrition goal.
// Optional fields are pointers; nil means the user never provided them.
type UserProfile struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name,omitempty"`
	Sex         *Sex       `json:"sex,omitempty"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	HeightCm    *float64   `json:"height_cm,omitempty"`

	CurrentWeightKg *float64 `json:"current_weight_kg,omitempty"`

	GoalType       *GoalType      `json:"goal_type,omitempty"`
	TargetWeightKg *float64       `json:"target_weight_kg,omitempty"`
	WeeklyRateKg   *float64       `json:"weekly_rate_kg,omitempty"`
	ActivityLevel  *ActivityLevel `json:"activity_level,omitempty"`
	ProteinRatio   *float64       `json:"protein_ratio,omitempty"`
	WaterGoalMl    *float64       `json:"water_goal_ml,omitempty"`
	CaloriesTarget *float64       `json:"calories_target,omitempty"`
	ProteinTargetG *float64       `json:"protein_target_g,omitempty"`
	CarbsTargetG   *float64       `json:"carbs_target_g,omitempty"`
	FatTargetG     *float64       `json:"fat_target_g,omitempty"`
	FiberTargetG   *float64       `json:"fiber_target_g,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Age computes the user's age in whole years at the given time.
// Returns 0 if the birth date is unknown.
func (u *UserProfile) Age(now time.Time) int {
	if u.BirthDate == nil {
		return 0
	}
	years := now.Year() - u.BirthDate.Year()
	anniversary := u.BirthDate.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}

// MacroTargets is the calculated daily nutrition envelope for a goal.
type MacroTargets struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
}
