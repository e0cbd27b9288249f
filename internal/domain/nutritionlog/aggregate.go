package nutritionlog

import (
	"github.com/nutricancer/nutricancer/internal/domain/nutrient"
)

// DayLog is one calendar day of the food log.
type DayLog struct {
	Date     string                   `json:"date"`
	Totals   nutrient.Facts           `json:"totals"`
	Goals    nutrient.Goals           `json:"goals"`
	Progress nutrient.Progress        `json:"progress"`
	Meals    map[MealType][]FoodEntry `json:"meals"`
}

// EntriesFor returns the entries logged on date, in insertion order.
func EntriesFor(entries []FoodEntry, date string) []FoodEntry {
	out := []FoodEntry{}
	for _, e := range entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// AggregateByDate sums the nutrients of the entries logged on date. Entries
// from other days never contribute.
func AggregateByDate(entries []FoodEntry, date string) nutrient.Facts {
	var total nutrient.Facts
	for _, e := range entries {
		if e.Date == date {
			total = total.Add(e.Facts)
		}
	}
	return total
}

// BuildDay groups the day's entries by meal and measures them against goals.
// Every meal type is present in Meals, possibly empty.
func BuildDay(entries []FoodEntry, date string, goals nutrient.Goals) DayLog {
	day := DayLog{
		Date:  date,
		Goals: goals,
		Meals: make(map[MealType][]FoodEntry, 4),
	}
	for _, m := range AllMealTypes() {
		day.Meals[m] = []FoodEntry{}
	}
	for _, e := range EntriesFor(entries, date) {
		day.Meals[e.MealType] = append(day.Meals[e.MealType], e)
	}
	day.Totals = AggregateByDate(entries, date)
	day.Progress = nutrient.ProgressOf(day.Totals, goals)
	return day
}
