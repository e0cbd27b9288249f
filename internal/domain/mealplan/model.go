// Package mealplan manages the seven-day meal planner.
package mealplan

import (
	"errors"
	"fmt"

	"github.com/nutricancer/nutricancer/internal/domain/catalog"
	"github.com/nutricancer/nutricancer/internal/domain/nutrient"
)

var (
	ErrInvalidSlot = errors.New("invalid meal slot")
	ErrInvalidDay  = errors.New("invalid day")
)

type Slot string

const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
	SlotSnacks    Slot = "snacks"
)

func ParseSlot(s string) (Slot, error) {
	switch Slot(s) {
	case SlotBreakfast, SlotLunch, SlotDinner, SlotSnacks:
		return Slot(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSlot, s)
}

// DayLabels are the planner's day names, Monday first.
var DayLabels = [7]string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi", "Dimanche"}

// PlannerGoals are the daily targets the planner measures against when no
// food-log goals are available.
var PlannerGoals = nutrient.Goals{Calories: 2500, Protein: 80, Carbs: 300, Fat: 65, Fiber: 30}

type Meals struct {
	Breakfast *catalog.Recipe  `json:"breakfast"`
	Lunch     *catalog.Recipe  `json:"lunch"`
	Dinner    *catalog.Recipe  `json:"dinner"`
	Snacks    []catalog.Recipe `json:"snacks"`
}

type Day struct {
	ID    string `json:"id"`
	Day   string `json:"day"`
	Meals Meals  `json:"meals"`
	Notes string `json:"notes"`
}

// NewWeek returns seven empty days, ids day-0 to day-6.
func NewWeek() []Day {
	week := make([]Day, len(DayLabels))
	for i, label := range DayLabels {
		week[i] = Day{
			ID:    fmt.Sprintf("day-%d", i),
			Day:   label,
			Meals: Meals{Snacks: []catalog.Recipe{}},
		}
	}
	return week
}

func (d Day) clone() Day {
	d.Meals.Breakfast = cloneRecipe(d.Meals.Breakfast)
	d.Meals.Lunch = cloneRecipe(d.Meals.Lunch)
	d.Meals.Dinner = cloneRecipe(d.Meals.Dinner)
	snacks := make([]catalog.Recipe, len(d.Meals.Snacks))
	for i, s := range d.Meals.Snacks {
		snacks[i] = s.Clone()
	}
	d.Meals.Snacks = snacks
	return d
}

func cloneRecipe(r *catalog.Recipe) *catalog.Recipe {
	if r == nil {
		return nil
	}
	c := r.Clone()
	return &c
}

// WithMeal returns a copy of d with r placed in slot. Snacks accumulate;
// the other slots are replaced.
func (d Day) WithMeal(slot Slot, r catalog.Recipe) (Day, error) {
	out := d.clone()
	r = r.Clone()
	switch slot {
	case SlotBreakfast:
		out.Meals.Breakfast = &r
	case SlotLunch:
		out.Meals.Lunch = &r
	case SlotDinner:
		out.Meals.Dinner = &r
	case SlotSnacks:
		out.Meals.Snacks = append(out.Meals.Snacks, r)
	default:
		return d, fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}
	return out, nil
}

// WithoutMeal returns a copy of d with slot emptied. For snacks, index selects
// the snack to drop.
func (d Day) WithoutMeal(slot Slot, index int) (Day, error) {
	out := d.clone()
	switch slot {
	case SlotBreakfast:
		out.Meals.Breakfast = nil
	case SlotLunch:
		out.Meals.Lunch = nil
	case SlotDinner:
		out.Meals.Dinner = nil
	case SlotSnacks:
		if index < 0 || index >= len(out.Meals.Snacks) {
			return d, fmt.Errorf("%w: snack index %d out of range", ErrInvalidSlot, index)
		}
		out.Meals.Snacks = append(out.Meals.Snacks[:index], out.Meals.Snacks[index+1:]...)
	default:
		return d, fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}
	return out, nil
}
