package mealplan

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/nutricancer/nutricancer/internal/domain/assessment"
	"github.com/nutricancer/nutricancer/internal/domain/catalog"
	"github.com/nutricancer/nutricancer/internal/domain/nutrient"
	"github.com/nutricancer/nutricancer/internal/platform/store"
	"github.com/nutricancer/nutricancer/internal/platform/websocket"
)

const WeekKey = "mealPlan"

type ProfileSource interface {
	Current(ctx context.Context) (*assessment.Snapshot, error)
}

// GoalSource supplies the daily targets. *nutritionlog.Service implements it.
type GoalSource interface {
	Goals(ctx context.Context) (nutrient.Goals, error)
}

type DaySummary struct {
	Day      Day               `json:"day"`
	Totals   nutrient.Facts    `json:"totals"`
	Goals    nutrient.Goals    `json:"goals"`
	Progress nutrient.Progress `json:"progress"`
}

type Service struct {
	kv       store.Store
	profiles ProfileSource
	catalog  catalog.Source
	goals    GoalSource
	events   websocket.EventPublisher
	logger   zerolog.Logger

	mu sync.Mutex
}

// NewService wires the planner. goals and events may be nil.
func NewService(kv store.Store, profiles ProfileSource, src catalog.Source, goals GoalSource, events websocket.EventPublisher, logger zerolog.Logger) *Service {
	return &Service{kv: kv, profiles: profiles, catalog: src, goals: goals, events: events, logger: logger}
}

func (s *Service) requireProfile(ctx context.Context) (*assessment.Snapshot, error) {
	return s.profiles.Current(ctx)
}

func (s *Service) load(ctx context.Context) ([]Day, error) {
	var week []Day
	err := s.kv.Load(ctx, WeekKey, &week)
	if errors.Is(err, store.ErrNotFound) {
		return NewWeek(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load meal plan: %w", err)
	}
	if len(week) != len(DayLabels) {
		s.logger.Warn().Int("days", len(week)).Msg("stored meal plan malformed, starting a new week")
		return NewWeek(), nil
	}
	return week, nil
}

func (s *Service) save(ctx context.Context, week []Day) error {
	if err := s.kv.Save(ctx, WeekKey, week); err != nil {
		return fmt.Errorf("save meal plan: %w", err)
	}
	websocket.Notify(ctx, s.events, s.logger, websocket.TopicMealPlan, week)
	return nil
}

func checkDay(index int) error {
	if index < 0 || index >= len(DayLabels) {
		return fmt.Errorf("%w: %d (expected 0-6)", ErrInvalidDay, index)
	}
	return nil
}

// Week returns the seven planned days, creating an empty week on first use.
func (s *Service) Week(ctx context.Context) ([]Day, error) {
	if _, err := s.requireProfile(ctx); err != nil {
		return nil, err
	}
	return s.load(ctx)
}

func (s *Service) Day(ctx context.Context, index int) (*Day, error) {
	if err := checkDay(index); err != nil {
		return nil, err
	}
	week, err := s.Week(ctx)
	if err != nil {
		return nil, err
	}
	return &week[index], nil
}

// update applies fn to one day and persists the week.
func (s *Service) update(ctx context.Context, index int, fn func(Day) (Day, error)) (*Day, error) {
	if err := checkDay(index); err != nil {
		return nil, err
	}
	if _, err := s.requireProfile(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	week, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	day, err := fn(week[index])
	if err != nil {
		return nil, err
	}
	week[index] = day
	if err := s.save(ctx, week); err != nil {
		return nil, err
	}
	return &day, nil
}

func (s *Service) AssignMeal(ctx context.Context, index int, slot Slot, recipeID string) (*Day, error) {
	r, err := s.catalog.Current().Recipe(recipeID)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, index, func(d Day) (Day, error) {
		return d.WithMeal(slot, r)
	})
}

func (s *Service) RemoveMeal(ctx context.Context, index int, slot Slot, snackIndex int) (*Day, error) {
	return s.update(ctx, index, func(d Day) (Day, error) {
		return d.WithoutMeal(slot, snackIndex)
	})
}

func (s *Service) SaveNotes(ctx context.Context, index int, notes string) (*Day, error) {
	return s.update(ctx, index, func(d Day) (Day, error) {
		d.Notes = notes
		return d, nil
	})
}

// Reset replaces the plan with an empty week.
func (s *Service) Reset(ctx context.Context) ([]Day, error) {
	if _, err := s.requireProfile(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	week := NewWeek()
	if err := s.save(ctx, week); err != nil {
		return nil, err
	}
	return week, nil
}

// DayNutrition totals the planned day and compares it with the daily goals.
func (s *Service) DayNutrition(ctx context.Context, index int) (*DaySummary, error) {
	day, err := s.Day(ctx, index)
	if err != nil {
		return nil, err
	}
	goals := PlannerGoals
	if s.goals != nil {
		if goals, err = s.goals.Goals(ctx); err != nil {
			return nil, err
		}
	}
	totals := AggregateDay(*day)
	return &DaySummary{
		Day:      *day,
		Totals:   totals,
		Goals:    goals,
		Progress: nutrient.ProgressOf(totals, goals),
	}, nil
}

// Candidates lists recipes the patient can pick: suited to their cancer type,
// to one of their symptoms when they have any, and matching query.
func (s *Service) Candidates(ctx context.Context, query string) ([]catalog.Recipe, error) {
	snap, err := s.requireProfile(ctx)
	if err != nil {
		return nil, err
	}
	p := snap.Profile
	return s.catalog.Current().Search(catalog.Filter{
		Query:       query,
		Symptoms:    p.DigestiveSymptoms,
		CancerTypes: []assessment.CancerType{p.CancerType},
	}), nil
}
