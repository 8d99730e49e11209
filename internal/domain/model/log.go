package model

import (
	"errors"
	"strings"
	"time"
)

// MealType categorizes a daily log entry.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Valid reports whether the meal type is supported.
func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	default:
		return false
	}
}

// ParseMealType normalizes a meal type string and reports whether it is supported.
func ParseMealType(value string) (MealType, bool) {
	mt := MealType(strings.ToLower(strings.TrimSpace(value)))
	if mt.Valid() {
		return mt, true
	}
	return "", false
}

// DailyLog is a single food intake entry.
// Date uses the backend's YYYY-MM-DD wire format.
type DailyLog struct {
	ID       string   `json:"id,omitempty"`
	FoodName string   `json:"foodName"`
	Calories float64  `json:"calories"`
	Date     string   `json:"date"`
	MealType MealType `json:"mealType"`
	Quantity float64  `json:"quantity"`
}

// Validate checks a log entry before it is sent to the backend.
func (l DailyLog) Validate() error {
	if strings.TrimSpace(l.FoodName) == "" {
		return errors.New("food name is required")
	}
	if l.Calories < 0 {
		return errors.New("calories must not be negative")
	}
	if !l.MealType.Valid() {
		return errors.New("unsupported meal type")
	}
	if l.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	if _, err := time.Parse("2006-01-02", l.Date); err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}
	return nil
}

// ProgressPoint is one day's aggregate in the progress report.
type ProgressPoint struct {
	Date          string  `json:"date"`
	TotalCalories float64 `json:"totalCalories"`
	Target        float64 `json:"target,omitempty"`
}
