package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMealType(t *testing.T) {
	tests := []struct {
		input string
		want  MealType
		ok    bool
	}{
		{"breakfast", MealBreakfast, true},
		{" Lunch ", MealLunch, true},
		{"DINNER", MealDinner, true},
		{"snack", MealSnack, true},
		{"brunch", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseMealType(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestDailyLogValidate(t *testing.T) {
	valid := DailyLog{
		FoodName: "Grilled chicken",
		Calories: 350,
		Date:     "2026-08-31",
		MealType: MealLunch,
		Quantity: 1,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*DailyLog)
	}{
		{"empty food name", func(l *DailyLog) { l.FoodName = "  " }},
		{"negative calories", func(l *DailyLog) { l.Calories = -1 }},
		{"bad meal type", func(l *DailyLog) { l.MealType = "elevenses" }},
		{"zero quantity", func(l *DailyLog) { l.Quantity = 0 }},
		{"bad date", func(l *DailyLog) { l.Date = "31/08/2026" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := valid
			tt.mutate(&l)
			assert.Error(t, l.Validate())
		})
	}
}

func TestFoodValidate(t *testing.T) {
	require.NoError(t, Food{FoodName: "Oats", Calories: 380, Protein: 13, Carb: 67, Fat: 7}.Validate())
	assert.Error(t, Food{FoodName: ""}.Validate())
	assert.Error(t, Food{FoodName: "Oats", Protein: -1}.Validate())
}

func TestProfileDisplayName(t *testing.T) {
	assert.Equal(t, "Jamie Doe", Profile{Username: "jdoe", FullName: "Jamie Doe"}.DisplayName())
	assert.Equal(t, "jdoe", Profile{Username: "jdoe", FullName: "  "}.DisplayName())
}

func TestCharacteristicsValidate(t *testing.T) {
	require.NoError(t, Characteristics{Height: 175, Weight: 70, Age: 30}.Validate())
	assert.Error(t, Characteristics{Height: 0, Weight: 70, Age: 30}.Validate())
	assert.Error(t, Characteristics{Height: 175, Weight: 0, Age: 30}.Validate())
	assert.Error(t, Characteristics{Height: 175, Weight: 70, Age: 0}.Validate())
}

func TestGoalsValidate(t *testing.T) {
	require.NoError(t, Goals{TargetCalories: 2200}.Validate())
	assert.Error(t, Goals{}.Validate())
}
