package entity

import (
	"time"
)

// VisionRecord is one persisted meal photo analysis.
type VisionRecord struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Analysis  *VisionAnalysis `json:"analysis"`
	CreatedAt time.Time       `json:"created_at"`
}
