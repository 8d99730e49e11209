package config

import "time"

// HTTPConfig contains outbound HTTP client configuration.
type HTTPConfig struct {
	// Timeout is the per-request timeout for outbound API calls.
	Timeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"15s"`

	// UploadTimeout is the per-request timeout for multipart uploads
	// (image analysis payloads are larger than regular JSON bodies).
	UploadTimeout time.Duration `env:"HTTP_UPLOAD_TIMEOUT" envDefault:"60s"`
}

// Sanitize applies guardrails to HTTP client configuration values.
func (h *HTTPConfig) Sanitize() {
	const (
		minTimeout = time.Second
		maxTimeout = 5 * time.Minute
	)
	if h.Timeout < minTimeout {
		h.Timeout = minTimeout
	}
	if h.Timeout > maxTimeout {
		h.Timeout = maxTimeout
	}
	if h.UploadTimeout < h.Timeout {
		h.UploadTimeout = h.Timeout
	}
	if h.UploadTimeout > maxTimeout {
		h.UploadTimeout = maxTimeout
	}
}
