package assessment

import (
	"errors"
	"math"
	"testing"
)

func TestComputeBMI(t *testing.T) {
	tests := []struct {
		weight, height float64
		want           float64
	}{
		{70, 175, 22.9},
		{50, 160, 19.5},
		{30, 250, 4.8},
		{300, 100, 300},
	}
	for _, tt := range tests {
		got, err := ComputeBMI(tt.weight, tt.height)
		if err != nil {
			t.Fatalf("ComputeBMI(%v, %v): %v", tt.weight, tt.height, err)
		}
		if got != tt.want {
			t.Errorf("ComputeBMI(%v, %v) = %v, want %v", tt.weight, tt.height, got, tt.want)
		}
	}
}

func TestComputeBMI_OneDecimalOverDomain(t *testing.T) {
	for h := 100.0; h <= 250; h += 7.5 {
		for w := 30.0; w <= 300; w += 13 {
			bmi, err := ComputeBMI(w, h)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if bmi <= 0 || math.IsInf(bmi, 0) {
				t.Fatalf("BMI(%v, %v) = %v, want positive finite", w, h, bmi)
			}
			if scaled := bmi * 10; math.Abs(scaled-math.Round(scaled)) > 1e-9 {
				t.Fatalf("BMI(%v, %v) = %v has more than one decimal", w, h, bmi)
			}
		}
	}
}

func TestComputeBMI_InvalidHeight(t *testing.T) {
	for _, h := range []float64{0, -170, math.NaN(), math.Inf(1)} {
		_, err := ComputeBMI(70, h)
		var de *DomainError
		if !errors.As(err, &de) {
			t.Fatalf("height %v: expected *DomainError, got %v", h, err)
		}
		if de.Field != "height_cm" {
			t.Errorf("expected field height_cm, got %s", de.Field)
		}
		if !errors.Is(err, ErrDomain) {
			t.Error("expected errors.Is(err, ErrDomain)")
		}
	}
	if _, err := ComputeBMI(math.NaN(), 170); err == nil {
		t.Error("expected error for NaN weight")
	}
}

func TestClassifyBMI_Boundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{10, "Dénutrition sévère"},
		{15.99, "Dénutrition sévère"},
		{16.0, "Dénutrition modérée"},
		{16.9, "Dénutrition modérée"},
		{17.0, "Dénutrition légère"},
		{18.4, "Dénutrition légère"},
		{18.5, "Normal"},
		{24.99, "Normal"},
		{25.0, "Surpoids"},
		{30.0, "Obésité modérée (Classe I)"},
		{35.0, "Obésité sévère (Classe II)"},
		{39.99, "Obésité sévère (Classe II)"},
		{40.0, "Obésité morbide (Classe III)"},
		{80, "Obésité morbide (Classe III)"},
	}
	for _, tt := range tests {
		if got := ClassifyBMI(tt.bmi).Classification; got != tt.want {
			t.Errorf("ClassifyBMI(%v) = %q, want %q", tt.bmi, got, tt.want)
		}
	}
}

func TestClassifyBMI_RangeAndRisk(t *testing.T) {
	c := ClassifyBMI(22.9)
	if c.Range != "18.5 - 24.9" || c.Risk != "Risque faible" {
		t.Errorf("unexpected category %+v", c)
	}
	if !c.IsNormal() || c.IsUndernourished() {
		t.Error("22.9 should be normal")
	}
	if !ClassifyBMI(17.2).IsUndernourished() {
		t.Error("17.2 should be undernourished")
	}
	if ClassifyBMI(27).IsUndernourished() || ClassifyBMI(27).IsNormal() {
		t.Error("27 is neither normal nor undernourished")
	}
}

func TestEstimateDailyCalories(t *testing.T) {
	tests := []struct {
		name     string
		gender   Gender
		weight   float64
		height   float64
		activity Activity
		anorexia bool
		want     int
	}{
		// BMR 88.362 + 937.79 + 839.825 - 227.08 = 1638.897
		{"male sedentary", GenderMale, 70, 175, ActivitySedentary, false, 1967},
		{"male sedentary anorexia", GenderMale, 70, 175, ActivitySedentary, true, 2267},
		// BMR 447.593 + 462.35 + 495.68 - 173.2 = 1232.423
		{"female light", GenderFemale, 50, 160, ActivityLight, false, 1695},
		{"female very intense", GenderFemale, 50, 160, ActivityVeryIntense, false, 2342},
		{"male moderate", GenderMale, 70, 175, ActivityModerate, false, 2540},
		{"male intense", GenderMale, 70, 175, ActivityIntense, false, 2827},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EstimateDailyCalories(tt.gender, tt.weight, tt.height, tt.activity, tt.anorexia)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEstimateDailyCalories_AnorexiaAddsExactly300(t *testing.T) {
	for _, g := range AllGenders() {
		for _, a := range AllActivities() {
			base, _ := EstimateDailyCalories(g, 63.4, 171, a, false)
			with, _ := EstimateDailyCalories(g, 63.4, 171, a, true)
			if with-base != AnorexiaSupplement {
				t.Errorf("%s/%s: difference %d, want 300", g, a, with-base)
			}
		}
	}
}

func TestEstimateDailyCalories_UnknownEnums(t *testing.T) {
	_, err := EstimateDailyCalories(GenderMale, 70, 175, Activity("couch"), false)
	var de *DomainError
	if !errors.As(err, &de) || de.Field != "physical_activity" {
		t.Errorf("expected physical_activity domain error, got %v", err)
	}
	_, err = EstimateDailyCalories(Gender("other"), 70, 175, ActivityLight, false)
	if !errors.As(err, &de) || de.Field != "gender" {
		t.Errorf("expected gender domain error, got %v", err)
	}
}

func TestDerive(t *testing.T) {
	p := PatientProfile{
		Gender:            GenderFemale,
		CancerType:        CancerGastric,
		HeightCm:          160,
		WeightKg:          50,
		PhysicalActivity:  ActivityLight,
		DigestiveSymptoms: SymptomSet{SymptomNauseaVomiting},
	}
	m, err := Derive(p)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if m.BMI.BMI != 19.5 || m.BMI.Category.Classification != "Normal" {
		t.Errorf("unexpected BMI %+v", m.BMI)
	}
	if m.Calories.RecommendedCalories != 1695 {
		t.Errorf("expected 1695 kcal, got %d", m.Calories.RecommendedCalories)
	}

	p.HeightCm = 90
	if _, err := Derive(p); !errors.Is(err, ErrDomain) {
		t.Errorf("expected domain error for height 90, got %v", err)
	}
}
