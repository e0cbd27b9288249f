// Package nutrient holds the five-nutrient shape shared by recipes, meal plans
// and the food log, and the goal-progress calculation.
package nutrient

import (
	"fmt"
	"math"
)

// Facts is an amount of each tracked nutrient: kcal for calories, grams for
// the rest.
type Facts struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

func (f Facts) Add(o Facts) Facts {
	return Facts{
		Calories: f.Calories + o.Calories,
		Protein:  f.Protein + o.Protein,
		Carbs:    f.Carbs + o.Carbs,
		Fat:      f.Fat + o.Fat,
		Fiber:    f.Fiber + o.Fiber,
	}
}

func (f Facts) Sub(o Facts) Facts {
	return f.Add(Facts{-o.Calories, -o.Protein, -o.Carbs, -o.Fat, -o.Fiber})
}

func Sum(items ...Facts) Facts {
	var total Facts
	for _, f := range items {
		total = total.Add(f)
	}
	return total
}

// Validate rejects negative or non-finite amounts.
func (f Facts) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"calories", f.Calories}, {"protein", f.Protein}, {"carbs", f.Carbs}, {"fat", f.Fat}, {"fiber", f.Fiber},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) || v.value < 0 {
			return fmt.Errorf("%s must be a non-negative number", v.name)
		}
	}
	return nil
}

// Goals are daily targets in the same units as Facts.
type Goals Facts

func (g Goals) Validate() error {
	return Facts(g).Validate()
}

// Progress is the fraction of each goal reached, in [0, 1].
type Progress struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

func ProgressOf(totals Facts, goals Goals) Progress {
	return Progress{
		Calories: fraction(totals.Calories, goals.Calories),
		Protein:  fraction(totals.Protein, goals.Protein),
		Carbs:    fraction(totals.Carbs, goals.Carbs),
		Fat:      fraction(totals.Fat, goals.Fat),
		Fiber:    fraction(totals.Fiber, goals.Fiber),
	}
}

// fraction is min(total/goal, 1) clamped at 0. A zero goal counts as met as
// soon as anything was eaten.
func fraction(total, goal float64) float64 {
	if goal <= 0 {
		if total > 0 {
			return 1
		}
		return 0
	}
	return math.Max(0, math.Min(total/goal, 1))
}
