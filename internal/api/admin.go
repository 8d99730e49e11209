package api

import (
	"context"
	"fmt"

	"github.com/nutritrack/nutritrack/internal/domain/model"
	apperrors "github.com/nutritrack/nutritrack/internal/errors"
)

// AdminClient talks to the backend admin endpoints. Authorization is the
// backend's responsibility; the client's admin guard only gates navigation.
type AdminClient struct {
	gw *Gateway
}

// NewAdminClient constructs an AdminClient.
func NewAdminClient(gw *Gateway) *AdminClient {
	return &AdminClient{gw: gw}
}

// Users lists all user accounts.
func (c *AdminClient) Users(ctx context.Context) ([]model.AdminUser, error) {
	var users []model.AdminUser
	if err := c.gw.Get(ctx, "/admin/users", nil, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// User fetches one user account by ID.
func (c *AdminClient) User(ctx context.Context, userID string) (*model.AdminUser, error) {
	if userID == "" {
		return nil, apperrors.Validation("user ID is required")
	}
	var user model.AdminUser
	if err := c.gw.Get(ctx, "/admin/users/"+userID, nil, &user); err != nil {
		return nil, fmt.Errorf("fetch user %s: %w", userID, err)
	}
	return &user, nil
}

// SetUserLock locks or unlocks a user account.
func (c *AdminClient) SetUserLock(ctx context.Context, userID string, locked bool) (*model.AdminUser, error) {
	if userID == "" {
		return nil, apperrors.Validation("user ID is required")
	}
	payload := map[string]bool{"isLocked": locked}
	var user model.AdminUser
	if err := c.gw.Put(ctx, "/admin/users/"+userID+"/lock", payload, &user); err != nil {
		return nil, fmt.Errorf("set lock on user %s: %w", userID, err)
	}
	return &user, nil
}

// Foods lists the food database.
func (c *AdminClient) Foods(ctx context.Context) ([]model.Food, error) {
	var foods []model.Food
	if err := c.gw.Get(ctx, "/admin/foods", nil, &foods); err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	return foods, nil
}

// CreateFood adds a food entry.
func (c *AdminClient) CreateFood(ctx context.Context, food model.Food) (*model.Food, error) {
	if err := food.Validate(); err != nil {
		return nil, err
	}
	var created model.Food
	if err := c.gw.Post(ctx, "/admin/foods", food, &created); err != nil {
		return nil, fmt.Errorf("create food: %w", err)
	}
	return &created, nil
}

// UpdateFood replaces a food entry.
func (c *AdminClient) UpdateFood(ctx context.Context, foodID string, food model.Food) (*model.Food, error) {
	if foodID == "" {
		return nil, apperrors.Validation("food ID is required")
	}
	if err := food.Validate(); err != nil {
		return nil, err
	}
	var updated model.Food
	if err := c.gw.Put(ctx, "/admin/foods/"+foodID, food, &updated); err != nil {
		return nil, fmt.Errorf("update food %s: %w", foodID, err)
	}
	return &updated, nil
}

// DeleteFood removes a food entry.
func (c *AdminClient) DeleteFood(ctx context.Context, foodID string) error {
	if foodID == "" {
		return apperrors.Validation("food ID is required")
	}
	if err := c.gw.Delete(ctx, "/admin/foods/"+foodID); err != nil {
		return fmt.Errorf("delete food %s: %w", foodID, err)
	}
	return nil
}

// TriggerRetrain starts an AI model retraining run.
func (c *AdminClient) TriggerRetrain(ctx context.Context) (*model.RetrainJob, error) {
	var job model.RetrainJob
	if err := c.gw.Post(ctx, "/admin/ai/retrain", nil, &job); err != nil {
		return nil, fmt.Errorf("trigger retraining: %w", err)
	}
	return &job, nil
}
