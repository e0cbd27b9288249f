// Package nutritionlog records what the patient actually ate, day by day, and
// measures it against daily nutrient goals.
package nutritionlog

import (
	"errors"
	"strings"
	"time"

	"github.com/nutricancer/nutricancer/internal/domain/assessment"
	"github.com/nutricancer/nutricancer/internal/domain/nutrient"
)

var (
	ErrEntryNotFound = errors.New("food entry not found")
	ErrInvalidImport = errors.New("invalid import file")
)

// DateLayout is the calendar date format used for entries and day lookups.
const DateLayout = "2006-01-02"

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

func AllMealTypes() []MealType {
	return []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}
}

func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

func (m MealType) Label() string {
	switch m {
	case MealBreakfast:
		return "Petit-déjeuner"
	case MealLunch:
		return "Déjeuner"
	case MealDinner:
		return "Dîner"
	case MealSnack:
		return "Collation"
	}
	return string(m)
}

// FoodEntry is one logged food. Nutrient amounts are flattened into the JSON
// object next to the descriptive fields.
type FoodEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
	nutrient.Facts
	MealType MealType `json:"meal_type"`
	Date     string   `json:"date"`
}

// Validate checks the fields a caller supplies. ID is assigned by the service.
func (e *FoodEntry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return invalid("name", nil, "is required")
	}
	if strings.TrimSpace(e.Amount) == "" {
		return invalid("amount", nil, "is required")
	}
	if !(e.Calories > 0) {
		return invalid("calories", e.Calories, "must be greater than zero")
	}
	if err := e.Facts.Validate(); err != nil {
		return invalid("nutrition", nil, err.Error())
	}
	if !e.MealType.Valid() {
		return invalid("meal_type", string(e.MealType), "must be one of breakfast, lunch, dinner, snack")
	}
	if err := ValidateDate(e.Date); err != nil {
		return err
	}
	return nil
}

// ValidateDate accepts calendar dates in DateLayout.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return invalid("date", date, "must be a date formatted YYYY-MM-DD")
	}
	return nil
}

func invalid(field string, value interface{}, reason string) error {
	return &assessment.DomainError{Field: field, Value: value, Reason: reason}
}
