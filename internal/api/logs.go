package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/nutritrack/nutritrack/internal/domain/model"
)

// LogClient talks to the backend daily-log endpoints.
type LogClient struct {
	gw *Gateway
}

// NewLogClient constructs a LogClient.
func NewLogClient(gw *Gateway) *LogClient {
	return &LogClient{gw: gw}
}

// Create records a new daily log entry.
func (c *LogClient) Create(ctx context.Context, entry model.DailyLog) (*model.DailyLog, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	var created model.DailyLog
	if err := c.gw.Post(ctx, "/logs", entry, &created); err != nil {
		return nil, fmt.Errorf("create log entry: %w", err)
	}
	return &created, nil
}

// Report fetches daily aggregates for the given date range (inclusive,
// YYYY-MM-DD).
func (c *LogClient) Report(ctx context.Context, startDate, endDate string) ([]model.ProgressPoint, error) {
	query := url.Values{}
	query.Set("startDate", startDate)
	query.Set("endDate", endDate)

	var points []model.ProgressPoint
	if err := c.gw.Get(ctx, "/logs/report", query, &points); err != nil {
		return nil, fmt.Errorf("fetch progress report: %w", err)
	}
	return points, nil
}
