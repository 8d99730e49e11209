package api

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/nutritrack/nutritrack/internal/domain/model"
	apperrors "github.com/nutritrack/nutritrack/internal/errors"
)

// AIClient talks to the AI service. It rides a separate Gateway (the AI
// service has its own base URL) but shares the same bearer-attachment and
// session-expiry behavior as the main backend client.
type AIClient struct {
	gw *Gateway
}

// NewAIClient constructs an AIClient.
func NewAIClient(gw *Gateway) *AIClient {
	return &AIClient{gw: gw}
}

// Advice requests personalized nutrition advice for a free-text message.
func (c *AIClient) Advice(ctx context.Context, message, userID string) (*model.AdviceReply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, apperrors.Validation("message is required")
	}
	payload := map[string]string{"message": message, "userId": userID}
	var reply model.AdviceReply
	if err := c.gw.Post(ctx, "/advice/chat", payload, &reply); err != nil {
		return nil, fmt.Errorf("fetch advice: %w", err)
	}
	return &reply, nil
}

// AnalyzeImage submits a food photo for recognition. The image travels as
// a multipart form part named "image" alongside the user ID.
func (c *AIClient) AnalyzeImage(ctx context.Context, fileName string, image io.Reader, userID string) (*model.VisionResult, error) {
	if image == nil {
		return nil, apperrors.Validation("image is required")
	}
	fields := map[string]string{"userId": userID}
	var result model.VisionResult
	if err := c.gw.PostMultipart(ctx, "/vision/analyze", fields, "image", fileName, image, &result); err != nil {
		return nil, fmt.Errorf("analyze image: %w", err)
	}
	return &result, nil
}
