package api

import (
	"context"
	"fmt"

	"github.com/nutritrack/nutritrack/internal/domain/model"
	apperrors "github.com/nutritrack/nutritrack/internal/errors"
)

// PlanClient talks to the backend nutrition-plan and recipe endpoints.
type PlanClient struct {
	gw *Gateway
}

// NewPlanClient constructs a PlanClient.
func NewPlanClient(gw *Gateway) *PlanClient {
	return &PlanClient{gw: gw}
}

// List fetches the user's nutrition plans.
func (c *PlanClient) List(ctx context.Context) ([]model.Plan, error) {
	var plans []model.Plan
	if err := c.gw.Get(ctx, "/plans", nil, &plans); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

// Get fetches one plan by ID.
func (c *PlanClient) Get(ctx context.Context, planID string) (*model.Plan, error) {
	if planID == "" {
		return nil, apperrors.Validation("plan ID is required")
	}
	var plan model.Plan
	if err := c.gw.Get(ctx, "/plans/"+planID, nil, &plan); err != nil {
		return nil, fmt.Errorf("fetch plan %s: %w", planID, err)
	}
	return &plan, nil
}

// Create submits a new nutrition plan.
func (c *PlanClient) Create(ctx context.Context, plan model.Plan) (*model.Plan, error) {
	if plan.Name == "" {
		return nil, apperrors.Validation("plan name is required")
	}
	var created model.Plan
	if err := c.gw.Post(ctx, "/plans", plan, &created); err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	return &created, nil
}

// Recipe fetches a recipe detail by ID.
func (c *PlanClient) Recipe(ctx context.Context, recipeID string) (*model.Recipe, error) {
	if recipeID == "" {
		return nil, apperrors.Validation("recipe ID is required")
	}
	var recipe model.Recipe
	if err := c.gw.Get(ctx, "/recipes/"+recipeID, nil, &recipe); err != nil {
		return nil, fmt.Errorf("fetch recipe %s: %w", recipeID, err)
	}
	return &recipe, nil
}
