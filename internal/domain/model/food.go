package model

import (
	"errors"
	"strings"
)

// Food is a food-database entry managed through the admin back-office.
type Food struct {
	ID       string  `json:"id,omitempty"`
	FoodName string  `json:"foodName"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carb     float64 `json:"carb"`
	Fat      float64 `json:"fat"`
}

// Validate checks a food entry before it is sent to the backend.
func (f Food) Validate() error {
	if strings.TrimSpace(f.FoodName) == "" {
		return errors.New("food name is required")
	}
	if f.Calories < 0 || f.Protein < 0 || f.Carb < 0 || f.Fat < 0 {
		return errors.New("nutrition values must not be negative")
	}
	return nil
}
