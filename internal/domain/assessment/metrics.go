package assessment

import (
	"math"
)

// Harris-Benedict is evaluated at a fixed age; the assessment does not ask
// for one.
const referenceAge = 40

// AnorexiaSupplement is added to the daily estimate when the patient reports
// anorexia. The estimate is a heuristic biased upward for malnutrition risk,
// not a clinical prescription.
const AnorexiaSupplement = 300

var bmiBuckets = []struct {
	upper    float64
	category BMICategory
}{
	{16, BMICategory{"< 16", "Dénutrition sévère", "Risque très élevé de complications"}},
	{17, BMICategory{"16 - 16.9", "Dénutrition modérée", "Risque élevé de complications"}},
	{18.5, BMICategory{"17 - 18.4", "Dénutrition légère", "Risque de complications"}},
	{25, BMICategory{"18.5 - 24.9", "Normal", "Risque faible"}},
	{30, BMICategory{"25 - 29.9", "Surpoids", "Risque augmenté"}},
	{35, BMICategory{"30 - 34.9", "Obésité modérée (Classe I)", "Risque élevé"}},
	{40, BMICategory{"35 - 39.9", "Obésité sévère (Classe II)", "Risque très élevé"}},
	{math.Inf(1), BMICategory{"≥ 40", "Obésité morbide (Classe III)", "Risque extrêmement élevé"}},
}

// ComputeBMI returns weight / height² (height in metres) rounded to one
// decimal place.
func ComputeBMI(weightKg, heightCm float64) (float64, error) {
	if !finite(weightKg) {
		return 0, invalid("weight_kg", weightKg, "must be a finite number")
	}
	if !finite(heightCm) || heightCm <= 0 {
		return 0, invalid("height_cm", heightCm, "must be greater than zero")
	}
	m := heightCm / 100
	return math.Round(weightKg/(m*m)*10) / 10, nil
}

// ClassifyBMI maps a BMI onto its bucket. Buckets are [low, high) except the
// first, which is everything below 16.
func ClassifyBMI(bmi float64) BMICategory {
	for _, b := range bmiBuckets {
		if bmi < b.upper {
			return b.category
		}
	}
	return bmiBuckets[len(bmiBuckets)-1].category
}

// IsUndernourished reports whether the category is one of the three
// "Dénutrition" buckets.
func (c BMICategory) IsUndernourished() bool {
	for _, b := range bmiBuckets[:3] {
		if b.category.Classification == c.Classification {
			return true
		}
	}
	return false
}

func (c BMICategory) IsNormal() bool {
	return c.Classification == bmiBuckets[3].category.Classification
}

func activityFactor(a Activity) (float64, error) {
	switch a {
	case ActivitySedentary:
		return 1.2, nil
	case ActivityLight:
		return 1.375, nil
	case ActivityModerate:
		return 1.55, nil
	case ActivityIntense:
		return 1.725, nil
	case ActivityVeryIntense:
		return 1.9, nil
	}
	return 0, invalid("physical_activity", string(a), "must be one of sedentary, light, moderate, intense, very_intense")
}

func basalMetabolicRate(g Gender, weightKg, heightCm float64) (float64, error) {
	switch g {
	case GenderMale:
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*referenceAge, nil
	case GenderFemale:
		return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*referenceAge, nil
	}
	return 0, invalid("gender", string(g), "must be one of male, female")
}

// EstimateDailyCalories returns the recommended daily intake in kcal.
func EstimateDailyCalories(g Gender, weightKg, heightCm float64, a Activity, hasAnorexia bool) (int, error) {
	if !finite(weightKg) {
		return 0, invalid("weight_kg", weightKg, "must be a finite number")
	}
	if !finite(heightCm) {
		return 0, invalid("height_cm", heightCm, "must be a finite number")
	}
	bmr, err := basalMetabolicRate(g, weightKg, heightCm)
	if err != nil {
		return 0, err
	}
	factor, err := activityFactor(a)
	if err != nil {
		return 0, err
	}
	kcal := bmr * factor
	if hasAnorexia {
		kcal += AnorexiaSupplement
	}
	return int(math.Round(kcal)), nil
}

// Derive validates p and computes its metrics.
func Derive(p PatientProfile) (Metrics, error) {
	if err := p.Validate(); err != nil {
		return Metrics{}, err
	}
	bmi, err := ComputeBMI(p.WeightKg, p.HeightCm)
	if err != nil {
		return Metrics{}, err
	}
	kcal, err := EstimateDailyCalories(p.Gender, p.WeightKg, p.HeightCm, p.PhysicalActivity, p.HasAnorexia)
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{
		BMI:      BMIResult{BMI: bmi, Category: ClassifyBMI(bmi)},
		Calories: CalorieEstimate{RecommendedCalories: kcal},
	}, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
