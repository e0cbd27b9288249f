// Package report assembles the printable nutrition report from the current
// assessment.
package report

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/nutricancer/nutricancer/internal/domain/assessment"
)

// Tone drives how the BMI classification is highlighted.
type Tone string

const (
	ToneUndernourished Tone = "undernourished"
	ToneNormal         Tone = "normal"
	ToneOverweight     Tone = "overweight"
	ToneObese          Tone = "obese"
)

type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type AdviceBlock struct {
	Symptom assessment.Symptom `json:"symptom"`
	Title   string             `json:"title"`
	Items   []string           `json:"items"`
}

type Report struct {
	Reference     string               `json:"reference"`
	GeneratedAt   time.Time            `json:"generated_at"`
	GeneratedOn   string               `json:"generated_on"`
	Patient       []Field              `json:"patient"`
	Symptoms      []string             `json:"symptoms"`
	BMI           assessment.BMIResult `json:"bmi"`
	Tone          Tone                 `json:"tone"`
	Calories      int                  `json:"recommended_calories"`
	Objectives    []string             `json:"objectives"`
	SymptomAdvice []AdviceBlock        `json:"symptom_advice"`
	CancerLabel   string               `json:"cancer_label"`
	CancerAdvice  []string             `json:"cancer_advice"`
	Disclaimer    []string             `json:"disclaimer"`
}

// Build lays out the report for snap. It does no I/O; reference and at are
// supplied by the caller.
func Build(snap assessment.Snapshot, reference string, at time.Time) *Report {
	p := snap.Profile
	r := &Report{
		Reference:   reference,
		GeneratedAt: at,
		GeneratedOn: FrenchDate(at),
		Patient: []Field{
			{"Genre", p.Gender.Label()},
			{"Type de cancer", p.CancerType.Label()},
			{"Poids", formatNumber(p.WeightKg) + " kg"},
			{"Taille", formatNumber(p.HeightCm) + " cm"},
			{"Activité physique", p.PhysicalActivity.Label()},
			{"Anorexie", yesNo(p.HasAnorexia)},
		},
		Symptoms:     []string{},
		BMI:          snap.BMI,
		Tone:         toneOf(snap.BMI.Category),
		Calories:     snap.Calories.RecommendedCalories,
		CancerLabel:  p.CancerType.Label(),
		CancerAdvice: cancerAdvice[p.CancerType],
		Disclaimer:   disclaimer,
	}
	for _, s := range assessment.NewSymptomSet(p.DigestiveSymptoms...) {
		r.Symptoms = append(r.Symptoms, s.Label())
	}

	switch r.Tone {
	case ToneUndernourished:
		r.Objectives = undernourishedObjectives
	case ToneNormal:
		r.Objectives = normalObjectives
	default:
		r.Objectives = overweightObjectives
	}

	r.SymptomAdvice = []AdviceBlock{}
	for _, s := range symptomOrder {
		if p.DigestiveSymptoms.Contains(s) {
			r.SymptomAdvice = append(r.SymptomAdvice, AdviceBlock{Symptom: s, Title: s.Label(), Items: symptomAdvice[s]})
		}
	}
	return r
}

func toneOf(c assessment.BMICategory) Tone {
	switch {
	case c.IsUndernourished():
		return ToneUndernourished
	case c.IsNormal():
		return ToneNormal
	case c.Classification == "Surpoids":
		return ToneOverweight
	}
	return ToneObese
}

// FrenchDate formats t as "16 octobre 2026".
func FrenchDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), frenchMonths[t.Month()-1], t.Year())
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "Oui"
	}
	return "Non"
}

// NewReference returns a display reference of the form NC-0042. It is not
// an identifier; two reports may share one.
func NewReference() string {
	return fmt.Sprintf("NC-%04d", rand.Intn(10000))
}

type ProfileSource interface {
	Current(ctx context.Context) (*assessment.Snapshot, error)
}

type Service struct {
	profiles  ProfileSource
	now       func() time.Time
	reference func() string
}

func NewService(profiles ProfileSource) *Service {
	return &Service{profiles: profiles, now: time.Now, reference: NewReference}
}

// Build reports on the current assessment. Without one it returns
// assessment.ErrNoAssessment.
func (s *Service) Build(ctx context.Context) (*Report, error) {
	snap, err := s.profiles.Current(ctx)
	if err != nil {
		return nil, err
	}
	return Build(*snap, s.reference(), s.now()), nil
}
