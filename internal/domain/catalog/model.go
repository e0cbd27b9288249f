package catalog

import (
	"strings"

	"github.com/nutricancer/nutricancer/internal/domain/assessment"
	"github.com/nutricancer/nutricancer/internal/domain/nutrient"
)

type Suitability struct {
	Symptoms    []assessment.Symptom    `json:"symptoms"`
	CancerTypes []assessment.CancerType `json:"cancer_types"`
}

type Recipe struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Ingredients    []string       `json:"ingredients"`
	Instructions   []string       `json:"instructions"`
	ImageURL       string         `json:"image_url,omitempty"`
	NutritionFacts nutrient.Facts `json:"nutrition_facts"`
	SuitableFor    Suitability    `json:"suitable_for"`
}

// Clone returns a deep copy so callers cannot alter catalog contents.
func (r Recipe) Clone() Recipe {
	r.Ingredients = cloneSlice(r.Ingredients)
	r.Instructions = cloneSlice(r.Instructions)
	r.SuitableFor.Symptoms = cloneSlice(r.SuitableFor.Symptoms)
	r.SuitableFor.CancerTypes = cloneSlice(r.SuitableFor.CancerTypes)
	return r
}

func (r Recipe) SuitableForCancer(ct assessment.CancerType) bool {
	for _, c := range r.SuitableFor.CancerTypes {
		if c == ct {
			return true
		}
	}
	return false
}

// MatchingSymptoms counts the distinct symptoms the recipe is suited to.
func (r Recipe) MatchingSymptoms(symptoms []assessment.Symptom) int {
	return assessment.SymptomSet(r.SuitableFor.Symptoms).Intersect(symptoms)
}

func (r Recipe) matchesText(lowerQuery string) bool {
	return strings.Contains(strings.ToLower(r.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(r.Description), lowerQuery)
}

// NutritionAdvice with a nil ForSymptoms is general advice shown to everyone.
type NutritionAdvice struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Content     string               `json:"content"`
	ForSymptoms []assessment.Symptom `json:"for_symptoms,omitempty"`
	ImageURL    string               `json:"image_url,omitempty"`
	Priority    int                  `json:"priority"`
}

func (a NutritionAdvice) General() bool {
	return a.ForSymptoms == nil
}

func (a NutritionAdvice) Addresses(symptoms []assessment.Symptom) bool {
	return assessment.SymptomSet(a.ForSymptoms).Intersect(symptoms) > 0
}

func (a NutritionAdvice) Clone() NutritionAdvice {
	a.ForSymptoms = cloneSlice(a.ForSymptoms)
	return a
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
