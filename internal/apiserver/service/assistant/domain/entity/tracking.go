package entity

import (
	"time"
)

// WaterEntry is one logged water intake.
type WaterEntry struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	AmountMl float64   `json:"amount_ml"`
	DrankAt  time.Time `json:"drank_at"`
}

// BodyWeightEntry is one logged body weight measurement.
type BodyWeightEntry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	WeightKg   float64   `json:"weight_kg"`
	Notes      string    `json:"notes,omitempty"`
	MeasuredAt time.Time `json:"measured_at"`
}
