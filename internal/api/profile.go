package api

import (
	"context"
	"fmt"

	"github.com/nutritrack/nutritrack/internal/domain/model"
)

// ProfileClient talks to the backend profile endpoints.
type ProfileClient struct {
	gw *Gateway
}

// NewProfileClient constructs a ProfileClient.
func NewProfileClient(gw *Gateway) *ProfileClient {
	return &ProfileClient{gw: gw}
}

// Get fetches the current user's profile.
func (c *ProfileClient) Get(ctx context.Context) (*model.Profile, error) {
	var profile model.Profile
	if err := c.gw.Get(ctx, "/profile", nil, &profile); err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	return &profile, nil
}

// UpdateCharacteristics replaces the user's physical characteristics.
func (c *ProfileClient) UpdateCharacteristics(ctx context.Context, ch model.Characteristics) (*model.Profile, error) {
	if err := ch.Validate(); err != nil {
		return nil, err
	}
	var profile model.Profile
	if err := c.gw.Put(ctx, "/profile/characteristics", ch, &profile); err != nil {
		return nil, fmt.Errorf("update characteristics: %w", err)
	}
	return &profile, nil
}

// UpdateGoals replaces the user's nutrition goals.
func (c *ProfileClient) UpdateGoals(ctx context.Context, goals model.Goals) (*model.Profile, error) {
	if err := goals.Validate(); err != nil {
		return nil, err
	}
	var profile model.Profile
	if err := c.gw.Put(ctx, "/profile/goals", goals, &profile); err != nil {
		return nil, fmt.Errorf("update goals: %w", err)
	}
	return &profile, nil
}
