package mealplan

import (
	"errors"
	"testing"

	"github.com/nutricancer/nutricancer/internal/domain/catalog"
	"github.com/nutricancer/nutricancer/internal/domain/nutrient"
)

func recipe(t *testing.T, id string) catalog.Recipe {
	t.Helper()
	r, err := catalog.Builtin().Recipe(id)
	if err != nil {
		t.Fatalf("recipe %s: %v", id, err)
	}
	return r
}

func TestNewWeek(t *testing.T) {
	week := NewWeek()
	if len(week) != 7 {
		t.Fatalf("expected 7 days, got %d", len(week))
	}
	if week[0].ID != "day-0" || week[0].Day != "Lundi" {
		t.Errorf("unexpected first day %+v", week[0])
	}
	if week[6].ID != "day-6" || week[6].Day != "Dimanche" {
		t.Errorf("unexpected last day %+v", week[6])
	}
	for _, d := range week {
		if d.Meals.Breakfast != nil || d.Meals.Lunch != nil || d.Meals.Dinner != nil {
			t.Errorf("%s: expected empty slots", d.ID)
		}
		if d.Meals.Snacks == nil || len(d.Meals.Snacks) != 0 {
			t.Errorf("%s: expected empty non-nil snacks", d.ID)
		}
	}
}

func TestParseSlot(t *testing.T) {
	for _, s := range []string{"breakfast", "lunch", "dinner", "snacks"} {
		if _, err := ParseSlot(s); err != nil {
			t.Errorf("ParseSlot(%q): %v", s, err)
		}
	}
	if _, err := ParseSlot("brunch"); !errors.Is(err, ErrInvalidSlot) {
		t.Errorf("expected ErrInvalidSlot, got %v", err)
	}
}

func TestDay_WithMeal(t *testing.T) {
	d := NewWeek()[0]

	d1, err := d.WithMeal(SlotBreakfast, recipe(t, "1"))
	if err != nil {
		t.Fatalf("WithMeal: %v", err)
	}
	if d.Meals.Breakfast != nil {
		t.Error("original day must not change")
	}
	if d1.Meals.Breakfast == nil || d1.Meals.Breakfast.ID != "1" {
		t.Fatalf("expected breakfast 1, got %+v", d1.Meals.Breakfast)
	}

	d2, _ := d1.WithMeal(SlotBreakfast, recipe(t, "3"))
	if d2.Meals.Breakfast.ID != "3" {
		t.Errorf("expected breakfast replaced by 3, got %s", d2.Meals.Breakfast.ID)
	}

	d3, _ := d2.WithMeal(SlotSnacks, recipe(t, "5"))
	d3, _ = d3.WithMeal(SlotSnacks, recipe(t, "5"))
	if len(d3.Meals.Snacks) != 2 {
		t.Errorf("expected snacks to accumulate, got %d", len(d3.Meals.Snacks))
	}
	if len(d2.Meals.Snacks) != 0 {
		t.Error("earlier copy must keep its snacks")
	}

	if _, err := d.WithMeal(Slot("brunch"), recipe(t, "1")); !errors.Is(err, ErrInvalidSlot) {
		t.Errorf("expected ErrInvalidSlot, got %v", err)
	}
}

func TestDay_WithoutMeal(t *testing.T) {
	d := NewWeek()[2]
	d, _ = d.WithMeal(SlotDinner, recipe(t, "3"))
	d, _ = d.WithMeal(SlotSnacks, recipe(t, "1"))
	d, _ = d.WithMeal(SlotSnacks, recipe(t, "5"))

	out, err := d.WithoutMeal(SlotSnacks, 0)
	if err != nil {
		t.Fatalf("WithoutMeal: %v", err)
	}
	if len(out.Meals.Snacks) != 1 || out.Meals.Snacks[0].ID != "5" {
		t.Errorf("expected only snack 5 left, got %+v", out.Meals.Snacks)
	}
	if len(d.Meals.Snacks) != 2 || d.Meals.Snacks[0].ID != "1" {
		t.Error("original snacks must not change")
	}

	out, _ = out.WithoutMeal(SlotDinner, 0)
	if out.Meals.Dinner != nil {
		t.Error("expected dinner removed")
	}

	if _, err := d.WithoutMeal(SlotSnacks, 2); !errors.Is(err, ErrInvalidSlot) {
		t.Errorf("expected ErrInvalidSlot for out of range snack, got %v", err)
	}
	if _, err := d.WithoutMeal(SlotSnacks, -1); !errors.Is(err, ErrInvalidSlot) {
		t.Errorf("expected ErrInvalidSlot for negative index, got %v", err)
	}
}

func TestAggregateDay(t *testing.T) {
	d := NewWeek()[0]
	if got := AggregateDay(d); got != (nutrient.Facts{}) {
		t.Errorf("expected zero totals for empty day, got %+v", got)
	}

	d, _ = d.WithMeal(SlotBreakfast, recipe(t, "1"))
	d, _ = d.WithMeal(SlotLunch, recipe(t, "3"))
	d, _ = d.WithMeal(SlotSnacks, recipe(t, "5"))
	d, _ = d.WithMeal(SlotSnacks, recipe(t, "5"))

	want := nutrient.Facts{Calories: 1010, Protein: 43, Carbs: 149, Fat: 26, Fiber: 14}
	if got := AggregateDay(d); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestAggregateDay_RemoveSubtractsMeal(t *testing.T) {
	d := NewWeek()[4]
	d, _ = d.WithMeal(SlotBreakfast, recipe(t, "1"))
	d, _ = d.WithMeal(SlotDinner, recipe(t, "14"))
	d, _ = d.WithMeal(SlotSnacks, recipe(t, "13"))

	before := AggregateDay(d)
	after, _ := d.WithoutMeal(SlotDinner, 0)
	if got, want := AggregateDay(after), before.Sub(recipe(t, "14").NutritionFacts); got != want {
		t.Errorf("expected %+v after removing dinner, got %+v", want, got)
	}
}
