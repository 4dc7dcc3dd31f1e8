package entity

import (
	"time"
)

// MealType classifies when a meal was eaten.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
	MealOther     MealType = "other"
)

// FoodSource records where a food item's nutrition numbers came from.
type FoodSource string

const (
	SourceManual   FoodSource = "manual"
	SourceSearch   FoodSource = "search"
	SourceFavorite FoodSource = "favorite"
	SourceVision   FoodSource = "vision"
	SourceChat     FoodSource = "chat"
)

// FoodItem is one food within a meal, with nutrition for the eaten quantity.
type FoodItem struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	QuantityG float64    `json:"quantity_g"`
	Calories  float64    `json:"calories"`
	ProteinG  float64    `json:"protein_g"`
	CarbsG    float64    `json:"carbs_g"`
	FatG      float64    `json:"fat_g"`
	Source    FoodSource `json:"source,omitempty"`
}

// Meal is a logged meal with its items and denormalized totals.
type Meal struct {
	ID       string      `json:"id"`
	UserID   string      `json:"user_id"`
	Name     string      `json:"name"`
	MealType MealType    `json:"meal_type"`
	Items    []*FoodItem `json:"items"`

	TotalCalories float64 `json:"total_calories"`
	TotalProteinG float64 `json:"total_protein_g"`
	TotalCarbsG   float64 `json:"total_carbs_g"`
	TotalFatG     float64 `json:"total_fat_g"`

	EatenAt   time.Time `json:"eaten_at"`
	CreatedAt time.Time `json:"created_at"`
}

// RecalculateTotals refreshes the denormalized totals from the item list.
func (m *Meal) RecalculateTotals() {
	m.TotalCalories, m.TotalProteinG, m.TotalCarbsG, m.TotalFatG = 0, 0, 0, 0
	for _, it := range m.Items {
		m.TotalCalories += it.Calories
		m.TotalProteinG += it.ProteinG
		m.TotalCarbsG += it.CarbsG
		m.TotalFatG += it.FatG
	}
}

// SavedFood is a user's favorite food, stored per 100 g.
type SavedFood struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Name             string    `json:"name"`
	CaloriesPer100g  float64   `json:"calories_per_100g"`
	ProteinPer100g   float64   `json:"protein_per_100g"`
	CarbsPer100g     float64   `json:"carbs_per_100g"`
	FatPer100g       float64   `json:"fat_per_100g"`
	DefaultQuantityG float64   `json:"default_quantity_g,omitempty"`
	LastUsedAt       time.Time `json:"last_used_at"`
	CreatedAt        time.Time `json:"created_at"`
}

// DailySummary aggregates one day of nutrition and hydration.
type DailySummary struct {
	Date       string  `json:"date"`
	Calories   float64 `json:"calories"`
	ProteinG   float64 `json:"protein_g"`
	CarbsG     float64 `json:"carbs_g"`
	FatG       float64 `json:"fat_g"`
	MealsCount int     `json:"meals_count"`
	WaterMl    float64 `json:"water_ml"`
}

// WeeklySummary aggregates the seven days ending at EndDate.
type WeeklySummary struct {
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Calories        float64 `json:"calories"`
	ProteinG        float64 `json:"protein_g"`
	CarbsG          float64 `json:"carbs_g"`
	FatG            float64 `json:"fat_g"`
	MealsCount      int     `json:"meals_count"`
	WaterMl         float64 `json:"water_ml"`
	WorkoutsCount   int     `json:"workouts_count"`
	WorkoutMinutes  float64 `json:"workout_minutes"`
	AvgDailyCals    float64 `json:"avg_daily_calories"`
	AvgDailyProtein float64 `json:"avg_daily_protein_g"`
}
