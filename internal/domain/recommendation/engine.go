// Package recommendation picks the recipes and advice shown on the patient
// dashboard.
package recommendation

import (
	"sort"

	"github.com/nutricancer/nutricancer/internal/domain/assessment"
	"github.com/nutricancer/nutricancer/internal/domain/catalog"
)

const (
	MaxRecipes = 3
	MaxAdvice  = 3
)

// RecommendRecipes keeps recipes suited to the patient's cancer type and, when
// symptoms were reported, to at least one of them. Recipes matching more
// symptoms come first; ties keep catalog order.
func RecommendRecipes(p assessment.PatientProfile, recipes []catalog.Recipe) []catalog.Recipe {
	type scored struct {
		recipe  catalog.Recipe
		matches int
	}
	var candidates []scored
	for _, r := range recipes {
		if !r.SuitableForCancer(p.CancerType) {
			continue
		}
		n := r.MatchingSymptoms(p.DigestiveSymptoms)
		if len(p.DigestiveSymptoms) > 0 && n == 0 {
			continue
		}
		candidates = append(candidates, scored{r, n})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].matches > candidates[j].matches
	})

	if len(candidates) > MaxRecipes {
		candidates = candidates[:MaxRecipes]
	}
	out := make([]catalog.Recipe, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.recipe.Clone())
	}
	return out
}

// RecommendAdvice returns general advice and advice addressing one of the
// patient's symptoms, in catalog order. Priority is not used.
func RecommendAdvice(p assessment.PatientProfile, advice []catalog.NutritionAdvice) []catalog.NutritionAdvice {
	out := make([]catalog.NutritionAdvice, 0, MaxAdvice)
	for _, a := range advice {
		if len(out) == MaxAdvice {
			break
		}
		if a.General() || a.Addresses(p.DigestiveSymptoms) {
			out = append(out, a.Clone())
		}
	}
	return out
}
