package model

import (
	"errors"
	"strings"
)

// Characteristics are the user's physical attributes used for nutrition planning.
type Characteristics struct {
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender,omitempty"`
	ActivityLevel string  `json:"activityLevel,omitempty"`
}

// Validate checks characteristics before they are sent to the backend.
func (c Characteristics) Validate() error {
	if c.Height <= 0 {
		return errors.New("height must be positive")
	}
	if c.Weight <= 0 {
		return errors.New("weight must be positive")
	}
	if c.Age <= 0 {
		return errors.New("age must be positive")
	}
	return nil
}

// Goals are the user's nutrition targets.
type Goals struct {
	TargetCalories float64 `json:"targetCalories"`
	TargetProtein  float64 `json:"targetProtein,omitempty"`
	TargetCarb     float64 `json:"targetCarb,omitempty"`
	TargetFat      float64 `json:"targetFat,omitempty"`
	TargetWeight   float64 `json:"targetWeight,omitempty"`
}

// Validate checks goals before they are sent to the backend.
func (g Goals) Validate() error {
	if g.TargetCalories <= 0 {
		return errors.New("target calories must be positive")
	}
	return nil
}

// Profile is the user's account profile as returned by the backend.
type Profile struct {
	ID              string          `json:"id"`
	Username        string          `json:"username"`
	Email           string          `json:"email,omitempty"`
	FullName        string          `json:"fullName,omitempty"`
	Characteristics Characteristics `json:"characteristics"`
	Goals           Goals           `json:"goals"`
}

// DisplayName returns the best available human-readable name.
func (p Profile) DisplayName() string {
	if name := strings.TrimSpace(p.FullName); name != "" {
		return name
	}
	return p.Username
}
