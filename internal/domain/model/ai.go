package model

// AdviceReply is the structured response from the AI advice endpoint.
type AdviceReply struct {
	Text           string   `json:"text"`
	PlanSuggestion []string `json:"planSuggestion,omitempty"`
}

// VisionResult is the AI service's analysis of a food image.
type VisionResult struct {
	RecognizedFood string  `json:"recognizedFood"`
	Calories       float64 `json:"calories"`
	Protein        float64 `json:"protein,omitempty"`
	Carb           float64 `json:"carb,omitempty"`
	Fat            float64 `json:"fat,omitempty"`
}
