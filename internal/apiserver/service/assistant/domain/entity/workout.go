package entity

import (
	"time"
)

// WorkoutType classifies a workout session.
type WorkoutType string

const (
	WorkoutStrength    WorkoutType = "strength"
	WorkoutCardio      WorkoutType = "cardio"
	WorkoutHIIT        WorkoutType = "hiit"
	WorkoutFlexibility WorkoutType = "flexibility"
	WorkoutWalking     WorkoutType = "walking"
	WorkoutRunning     WorkoutType = "running"
	WorkoutCycling     WorkoutType = "cycling"
	WorkoutSwimming    WorkoutType = "swimming"
	WorkoutSports      WorkoutType = "sports"
	WorkoutOther       WorkoutType = "other"
)

// Exercise is one exercise within a strength workout.
type Exercise struct {
	Name     string   `json:"name"`
	Sets     int      `json:"sets,omitempty"`
	Reps     int      `json:"reps,omitempty"`
	WeightKg *float64 `json:"weight_kg,omitempty"`
}

// WorkoutLog is one logged workout session.
type WorkoutLog struct {
	ID             string      `json:"id"`
	UserID         string      `json:"user_id"`
	Name           string      `json:"name"`
	WorkoutType    WorkoutType `json:"workout_type"`
	DurationMin    float64     `json:"duration_min"`
	Exercises      []*Exercise `json:"exercises,omitempty"`
	CaloriesBurned *float64    `json:"calories_burned,omitempty"`
	Notes          string      `json:"notes,omitempty"`
	PerformedAt    time.Time   `json:"performed_at"`
	CreatedAt      time.Time   `json:"created_at"`
}
