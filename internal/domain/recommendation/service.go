package recommendation

import (
	"context"

	"github.com/nutricancer/nutricancer/internal/domain/assessment"
	"github.com/nutricancer/nutricancer/internal/domain/catalog"
)

// ProfileSource yields the current assessment. *assessment.Service
// implements it.
type ProfileSource interface {
	Current(ctx context.Context) (*assessment.Snapshot, error)
}

type Dashboard struct {
	Assessment *assessment.Snapshot       `json:"assessment"`
	Recipes    []catalog.Recipe          `json:"recipes"`
	Advice     []catalog.NutritionAdvice `json:"advice"`
}

type Recommendations struct {
	Recipes []catalog.Recipe          `json:"recipes"`
	Advice  []catalog.NutritionAdvice `json:"advice"`
}

type Service struct {
	profiles ProfileSource
	catalog  catalog.Source
}

func NewService(profiles ProfileSource, src catalog.Source) *Service {
	return &Service{profiles: profiles, catalog: src}
}

// Dashboard requires a submitted assessment.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	snap, err := s.profiles.Current(ctx)
	if err != nil {
		return nil, err
	}
	rec := s.For(snap.Profile)
	return &Dashboard{Assessment: snap, Recipes: rec.Recipes, Advice: rec.Advice}, nil
}

// For computes recommendations for any profile, stored or not.
func (s *Service) For(p assessment.PatientProfile) Recommendations {
	c := s.catalog.Current()
	return Recommendations{
		Recipes: RecommendRecipes(p, c.Recipes()),
		Advice:  RecommendAdvice(p, c.Advice()),
	}
}
