package model

// PlannedMeal is one meal slot within a nutrition plan day.
type PlannedMeal struct {
	MealType MealType `json:"mealType"`
	RecipeID string   `json:"recipeId,omitempty"`
	FoodName string   `json:"foodName,omitempty"`
	Calories float64  `json:"calories"`
}

// Plan is a nutrition plan as returned by the backend.
type Plan struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Meals       []PlannedMeal `json:"meals,omitempty"`
	CreatedAt   string        `json:"createdAt,omitempty"`
}

// Recipe is a recipe detail record referenced from plans.
type Recipe struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
	Calories     float64  `json:"calories"`
	Protein      float64  `json:"protein,omitempty"`
	Carb         float64  `json:"carb,omitempty"`
	Fat          float64  `json:"fat,omitempty"`
}
