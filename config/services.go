package config

import "strings"

// BackendConfig contains the main backend REST API endpoint configuration.
type BackendConfig struct {
	// BaseURL is the base URL of the backend API (e.g., "https://api.example.com/api").
	BaseURL string `env:"BACKEND_API_URL" envDefault:"http://localhost:8080/api"`
}

// Sanitize applies guardrails to backend endpoint values.
func (b *BackendConfig) Sanitize() {
	b.BaseURL = strings.TrimRight(strings.TrimSpace(b.BaseURL), "/")
}

// AIConfig contains the AI service endpoint configuration.
// The AI service lives at a separate base URL from the main backend.
type AIConfig struct {
	// BaseURL is the base URL of the AI service.
	BaseURL string `env:"AI_SERVICE_API_URL" envDefault:"http://localhost:5000/api"`
}

// Sanitize applies guardrails to AI endpoint values.
func (a *AIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
}
