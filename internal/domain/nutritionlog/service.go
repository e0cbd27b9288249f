package nutritionlog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nutricancer/nutricancer/internal/domain/assessment"
	"github.com/nutricancer/nutricancer/internal/domain/nutrient"
	"github.com/nutricancer/nutricancer/internal/platform/store"
	"github.com/nutricancer/nutricancer/internal/platform/websocket"
)

const (
	EntriesKey = "foodEntries"
	GoalsKey   = "nutritionGoals"
)

type ProfileSource interface {
	Current(ctx context.Context) (*assessment.Snapshot, error)
}

type Service struct {
	kv       store.Store
	profiles ProfileSource
	events   websocket.EventPublisher
	logger   zerolog.Logger
	now      func() time.Time

	mu sync.Mutex
}

// NewService builds the food log. profiles and events may be nil; without a
// profile source goals never derive from the assessment.
func NewService(kv store.Store, profiles ProfileSource, events websocket.EventPublisher, logger zerolog.Logger) *Service {
	return &Service{kv: kv, profiles: profiles, events: events, logger: logger, now: time.Now}
}

// Today is the current calendar date in DateLayout.
func (s *Service) Today() string {
	return s.now().Format(DateLayout)
}

func (s *Service) load(ctx context.Context) ([]FoodEntry, error) {
	var entries []FoodEntry
	err := s.kv.Load(ctx, EntriesKey, &entries)
	if errors.Is(err, store.ErrNotFound) {
		return []FoodEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load food entries: %w", err)
	}
	return entries, nil
}

func (s *Service) save(ctx context.Context, entries []FoodEntry) error {
	if err := s.kv.Save(ctx, EntriesKey, entries); err != nil {
		return fmt.Errorf("save food entries: %w", err)
	}
	websocket.Notify(ctx, s.events, s.logger, websocket.TopicNutritionLog, entries)
	return nil
}

func newEntryID() string {
	return "food-" + uuid.New().String()
}

// Add validates e, assigns it an id and appends it to the log. An empty date
// means today.
func (s *Service) Add(ctx context.Context, e FoodEntry) (*FoodEntry, error) {
	if e.Date == "" {
		e.Date = s.Today()
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	e.ID = newEntryID()

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, append(entries, e)); err != nil {
		return nil, err
	}
	return &e, nil
}

// Update replaces the descriptive and nutrient fields of an entry. Its id,
// meal and date never change.
func (s *Service) Update(ctx context.Context, id string, patch FoodEntry) (*FoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].ID != id {
			continue
		}
		updated := entries[i]
		updated.Name = patch.Name
		updated.Amount = patch.Amount
		updated.Facts = patch.Facts
		if err := updated.Validate(); err != nil {
			return nil, err
		}
		entries[i] = updated
		if err := s.save(ctx, entries); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, ErrEntryNotFound
}

func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].ID == id {
			return s.save(ctx, append(entries[:i], entries[i+1:]...))
		}
	}
	return ErrEntryNotFound
}

// List returns the entries logged on date, or every entry when date is empty.
func (s *Service) List(ctx context.Context, date string) ([]FoodEntry, error) {
	if date != "" {
		if err := ValidateDate(date); err != nil {
			return nil, err
		}
	}
	entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if date == "" {
		return entries, nil
	}
	return EntriesFor(entries, date), nil
}

// Day summarises one calendar day against the current goals.
func (s *Service) Day(ctx context.Context, date string) (*DayLog, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	goals, err := s.Goals(ctx)
	if err != nil {
		return nil, err
	}
	day := BuildDay(entries, date, goals)
	return &day, nil
}

// Goals returns the stored goals. The first time none are stored and an
// assessment exists, goals are derived from its calorie estimate and
// persisted; without an assessment FallbackGoals apply and nothing is saved.
func (s *Service) Goals(ctx context.Context) (nutrient.Goals, error) {
	var g nutrient.Goals
	err := s.kv.Load(ctx, GoalsKey, &g)
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return g, fmt.Errorf("load nutrition goals: %w", err)
	}
	if s.profiles == nil {
		return FallbackGoals, nil
	}

	snap, err := s.profiles.Current(ctx)
	if errors.Is(err, assessment.ErrNoAssessment) {
		return FallbackGoals, nil
	}
	if err != nil {
		return g, err
	}
	g = DefaultGoals(snap.Calories.RecommendedCalories)
	if err := s.kv.Save(ctx, GoalsKey, g); err != nil {
		return g, fmt.Errorf("save nutrition goals: %w", err)
	}
	s.logger.Info().Float64("calories", g.Calories).Msg("nutrition goals derived from assessment")
	return g, nil
}

func (s *Service) SetGoals(ctx context.Context, g nutrient.Goals) (nutrient.Goals, error) {
	if err := g.Validate(); err != nil {
		return g, invalid("goals", nil, err.Error())
	}
	if err := s.kv.Save(ctx, GoalsKey, g); err != nil {
		return g, fmt.Errorf("save nutrition goals: %w", err)
	}
	websocket.Notify(ctx, s.events, s.logger, websocket.TopicNutritionLog, g)
	return g, nil
}

// Import appends every entry of a CSV export. Nothing is saved unless the
// whole file parses.
func (s *Service) Import(ctx context.Context, r io.Reader) (int, error) {
	parsed, err := ParseCSV(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}
	if len(parsed) == 0 {
		return 0, nil
	}
	for i := range parsed {
		parsed[i].ID = newEntryID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.save(ctx, append(entries, parsed...)); err != nil {
		return 0, err
	}
	return len(parsed), nil
}
