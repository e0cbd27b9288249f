package nutritionlog

import (
	"math"

	"github.com/nutricancer/nutricancer/internal/domain/nutrient"
)

// FallbackGoals apply when neither stored goals nor an assessment exist.
var FallbackGoals = nutrient.Goals{Calories: 2000, Protein: 75, Carbs: 250, Fat: 65, Fiber: 25}

const defaultFiber = 25

// DefaultGoals splits a calorie target 15% protein, 50% carbs and 35% fat,
// converted to grams at 4, 4 and 9 kcal/g.
func DefaultGoals(kcal int) nutrient.Goals {
	c := float64(kcal)
	return nutrient.Goals{
		Calories: c,
		Protein:  math.Round(c * 0.15 / 4),
		Carbs:    math.Round(c * 0.50 / 4),
		Fat:      math.Round(c * 0.35 / 9),
		Fiber:    defaultFiber,
	}
}
