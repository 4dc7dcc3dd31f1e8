package entity

// Completion is the vendor-neutral result of one model call.
//
// Adapters normalize vendor responses into this shape: Text is never empty
// (a placeholder is substituted when the model returned tool calls only),
// and TokensUsed is nil when the vendor reported no usage.
type Completion struct {
	// Text is the assistant's reply text.
	Text string `json:"text"`
	// ToolCalls are the tool invocations the model requested, in order.
	ToolCalls []*ToolCall `json:"tool_calls,omitempty"`
	// Model is the vendor model identifier that produced the reply.
	Model string `json:"model"`
	// TokensUsed is the total token count, when the vendor reported usage.
	TokensUsed *int `json:"tokens_used,omitempty"`
}

// VisionFoodItem is one food the model identified in a meal photo.
type VisionFoodItem struct {
	Name               string  `json:"name"`
	PortionDescription string  `json:"portion_description,omitempty"`
	GramsEstimate      float64 `json:"grams_estimate"`
	Calories           float64 `json:"calories"`
	ProteinG           float64 `json:"protein_g"`
	CarbsG             float64 `json:"carbs_g"`
	FatG               float64 `json:"fat_g"`
	Confidence         float64 `json:"confidence"`
}

// VisionObservation is the raw outcome of an image analysis call,
// before JSON extraction.
type VisionObservation struct {
	// Text is the model's reply, expected to contain a JSON object.
	Text string `json:"text"`
	// Model is the vendor model identifier used.
	Model string `json:"model"`
}

// VisionTotals sums the nutrition of all identified items.
type VisionTotals struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// VisionAnalysis is the parsed result of a meal photo analysis.
type VisionAnalysis struct {
	Items       []*VisionFoodItem `json:"items"`
	Totals      VisionTotals      `json:"totals"`
	Confidence  float64           `json:"confidence"`
	Description string            `json:"description,omitempty"`
	ModelUsed   string            `json:"model_used"`
}
