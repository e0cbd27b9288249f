package mealplan

import (
	"github.com/nutricancer/nutricancer/internal/domain/catalog"
	"github.com/nutricancer/nutricancer/internal/domain/nutrient"
)

// AggregateDay sums the nutrition facts of every meal planned for the day.
// Empty slots contribute nothing.
func AggregateDay(d Day) nutrient.Facts {
	var total nutrient.Facts
	for _, r := range []*catalog.Recipe{d.Meals.Breakfast, d.Meals.Lunch, d.Meals.Dinner} {
		if r != nil {
			total = total.Add(r.NutritionFacts)
		}
	}
	for _, s := range d.Meals.Snacks {
		total = total.Add(s.NutritionFacts)
	}
	return total
}
