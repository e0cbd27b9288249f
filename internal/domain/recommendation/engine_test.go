package recommendation

import (
	"testing"

	"github.com/nutricancer/nutricancer/internal/domain/assessment"
	"github.com/nutricancer/nutricancer/internal/domain/catalog"
)

func profile(ct assessment.CancerType, symptoms ...assessment.Symptom) assessment.PatientProfile {
	return assessment.PatientProfile{
		Gender:            assessment.GenderFemale,
		CancerType:        ct,
		HeightCm:          160,
		WeightKg:          50,
		PhysicalActivity:  assessment.ActivityLight,
		DigestiveSymptoms: assessment.SymptomSet(symptoms),
	}
}

func ids[T interface{ catalog.Recipe | catalog.NutritionAdvice }](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		switch v := any(it).(type) {
		case catalog.Recipe:
			out[i] = v.ID
		case catalog.NutritionAdvice:
			out[i] = v.ID
		}
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRecommendRecipes(t *testing.T) {
	recipes := catalog.Builtin().Recipes()
	tests := []struct {
		name string
		p    assessment.PatientProfile
		want []string
	}{
		{"gastric nausea", profile(assessment.CancerGastric, assessment.SymptomNauseaVomiting), []string{"1", "2", "5"}},
		{"ranked by matches", profile(assessment.CancerColorectal, assessment.SymptomDryMouth, assessment.SymptomConstipation), []string{"4", "7", "9"}},
		{"no symptoms", profile(assessment.CancerPancreas), []string{"1", "4", "5"}},
		{"pancreas diarrhea", profile(assessment.CancerPancreas, assessment.SymptomDiarrhea), []string{"5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(RecommendRecipes(tt.p, recipes))
			if !equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecommendRecipes_OrderIndependent(t *testing.T) {
	recipes := catalog.Builtin().Recipes()
	a := RecommendRecipes(profile(assessment.CancerStomach, assessment.SymptomDiarrhea, assessment.SymptomDryMouth, assessment.SymptomAbdominalPain), recipes)
	b := RecommendRecipes(profile(assessment.CancerStomach, assessment.SymptomAbdominalPain, assessment.SymptomDiarrhea, assessment.SymptomDryMouth), recipes)
	if !equal(ids(a), ids(b)) {
		t.Errorf("symptom order changed the result: %v vs %v", ids(a), ids(b))
	}
	// 14 matches all three
	if len(a) == 0 || a[0].ID != "14" {
		t.Errorf("expected recipe 14 first, got %v", ids(a))
	}
}

func TestRecommendRecipes_EmptySymptomsIsSuperset(t *testing.T) {
	recipes := catalog.Builtin().Recipes()
	match := func(p assessment.PatientProfile) map[string]bool {
		// look at the full candidate set, not only the top 3
		out := map[string]bool{}
		for _, r := range recipes {
			if !r.SuitableForCancer(p.CancerType) {
				continue
			}
			if len(p.DigestiveSymptoms) > 0 && r.MatchingSymptoms(p.DigestiveSymptoms) == 0 {
				continue
			}
			out[r.ID] = true
		}
		return out
	}
	all := match(profile(assessment.CancerRectum))
	for _, s := range assessment.AllSymptoms() {
		for id := range match(profile(assessment.CancerRectum, s)) {
			if !all[id] {
				t.Errorf("recipe %s matches %s but not the symptom-free profile", id, s)
			}
		}
	}
}

func TestRecommendRecipes_DoesNotMutateInput(t *testing.T) {
	recipes := catalog.Builtin().Recipes()
	before := ids(recipes)
	out := RecommendRecipes(profile(assessment.CancerColorectal, assessment.SymptomConstipation), recipes)
	out[0].Title = "changed"
	if !equal(ids(recipes), before) {
		t.Error("input order changed")
	}
	for _, r := range recipes {
		if r.Title == "changed" {
			t.Error("result shares memory with input")
		}
	}
}

func TestRecommendRecipes_Empty(t *testing.T) {
	got := RecommendRecipes(profile(assessment.CancerGastric, assessment.SymptomDiarrhea), nil)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestRecommendAdvice(t *testing.T) {
	advice := catalog.Builtin().Advice()
	tests := []struct {
		name string
		p    assessment.PatientProfile
		want []string
	}{
		{"diarrhea", profile(assessment.CancerGastric, assessment.SymptomDiarrhea), []string{"2", "3", "7"}},
		{"no symptoms", profile(assessment.CancerGastric), []string{"2", "7", "8"}},
		{"nausea", profile(assessment.CancerGastric, assessment.SymptomNauseaVomiting), []string{"1", "2", "7"}},
		{"dry mouth", profile(assessment.CancerGastric, assessment.SymptomDryMouth), []string{"2", "4", "7"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(RecommendAdvice(tt.p, advice))
			if !equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecommendAdvice_IgnoresPriority(t *testing.T) {
	advice := []catalog.NutritionAdvice{
		{ID: "low", Title: "L", Priority: 1},
		{ID: "mid", Title: "M", Priority: 3},
		{ID: "high", Title: "H", Priority: 5},
		{ID: "top", Title: "T", Priority: 9},
	}
	got := ids(RecommendAdvice(profile(assessment.CancerGastric), advice))
	if !equal(got, []string{"low", "mid", "high"}) {
		t.Errorf("expected catalog order, got %v", got)
	}
}
