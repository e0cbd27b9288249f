package hydration

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/nutricancer/nutricancer/internal/domain/assessment"
	"github.com/nutricancer/nutricancer/internal/platform/store"
	"github.com/nutricancer/nutricancer/internal/platform/websocket"
)

const StateKey = "waterState"

const dateLayout = "2006-01-02"

type Service struct {
	kv          store.Store
	events      websocket.EventPublisher
	logger      zerolog.Logger
	defaultGoal int
	now         func() time.Time

	mu sync.Mutex
}

// NewService builds the water tracker. defaultGoal outside MinGoal..MaxGoal
// falls back to DefaultGoal.
func NewService(kv store.Store, events websocket.EventPublisher, defaultGoal int, logger zerolog.Logger) *Service {
	if defaultGoal < MinGoal || defaultGoal > MaxGoal {
		defaultGoal = DefaultGoal
	}
	return &Service{kv: kv, events: events, logger: logger, defaultGoal: defaultGoal, now: time.Now}
}

func (s *Service) today() string {
	return s.now().Format(dateLayout)
}

// current loads the state, starting the count over when it belongs to an
// earlier day. The goal carries over.
func (s *Service) current(ctx context.Context) (State, bool, error) {
	st := State{Goal: s.defaultGoal}
	err := s.kv.Load(ctx, StateKey, &st)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return st, false, fmt.Errorf("load water state: %w", err)
	}
	if today := s.today(); st.Date != today {
		st.Date = today
		st.Glasses = 0
		return st, true, nil
	}
	return st, false, nil
}

func (s *Service) save(ctx context.Context, st State) error {
	if err := s.kv.Save(ctx, StateKey, st); err != nil {
		return fmt.Errorf("save water state: %w", err)
	}
	websocket.Notify(ctx, s.events, s.logger, websocket.TopicHydration, st.Status())
	return nil
}

// State returns today's status. The first read of a new day persists the reset.
func (s *Service) State(ctx context.Context) (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, rolled, err := s.current(ctx)
	if err != nil {
		return Status{}, err
	}
	if rolled {
		if err := s.save(ctx, st); err != nil {
			return Status{}, err
		}
	}
	return st.Status(), nil
}

func (s *Service) mutate(ctx context.Context, fn func(*State) error) (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, _, err := s.current(ctx)
	if err != nil {
		return Status{}, err
	}
	if err := fn(&st); err != nil {
		return Status{}, err
	}
	if err := s.save(ctx, st); err != nil {
		return Status{}, err
	}
	return st.Status(), nil
}

// Add counts one glass. The returned Outcome is set when this glass reached
// or passed the goal.
func (s *Service) Add(ctx context.Context) (Status, error) {
	var outcome Outcome
	status, err := s.mutate(ctx, func(st *State) error {
		st.Glasses++
		outcome = outcomeOf(st.Glasses, st.Goal)
		return nil
	})
	status.Outcome = outcome
	return status, err
}

// Remove takes one glass off. The count never goes below zero.
func (s *Service) Remove(ctx context.Context) (Status, error) {
	return s.mutate(ctx, func(st *State) error {
		if st.Glasses > 0 {
			st.Glasses--
		}
		return nil
	})
}

func (s *Service) Reset(ctx context.Context) (Status, error) {
	return s.mutate(ctx, func(st *State) error {
		st.Glasses = 0
		return nil
	})
}

func (s *Service) SetGoal(ctx context.Context, goal int) (Status, error) {
	if goal < MinGoal || goal > MaxGoal {
		return Status{}, &assessment.DomainError{Field: "goal", Value: goal, Reason: "must be between 1 and 20"}
	}
	return s.mutate(ctx, func(st *State) error {
		st.Goal = goal
		return nil
	})
}
