package assessment

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nutricancer/nutricancer/internal/platform/store"
	"github.com/nutricancer/nutricancer/internal/platform/websocket"
)

// ProfileKey is the storage key of the submitted profile. Metrics are never
// stored; they are derived again on every read.
const ProfileKey = "patientData"

type Service struct {
	kv     store.Store
	events websocket.EventPublisher
	logger zerolog.Logger
}

func NewService(kv store.Store, events websocket.EventPublisher, logger zerolog.Logger) *Service {
	return &Service{kv: kv, events: events, logger: logger}
}

// Submit validates and stores p, replacing any earlier assessment.
func (s *Service) Submit(ctx context.Context, p PatientProfile) (*Snapshot, error) {
	p.DigestiveSymptoms = NewSymptomSet(p.DigestiveSymptoms...)
	m, err := Derive(p)
	if err != nil {
		return nil, err
	}
	if err := s.kv.Save(ctx, ProfileKey, p); err != nil {
		return nil, fmt.Errorf("save assessment: %w", err)
	}
	snap := &Snapshot{Profile: p, Metrics: m}
	websocket.Notify(ctx, s.events, s.logger, websocket.TopicAssessment, snap)
	return snap, nil
}

// Current returns the stored profile with freshly computed metrics.
func (s *Service) Current(ctx context.Context) (*Snapshot, error) {
	var p PatientProfile
	if err := s.kv.Load(ctx, ProfileKey, &p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoAssessment
		}
		return nil, fmt.Errorf("load assessment: %w", err)
	}
	m, err := Derive(p)
	if err != nil {
		return nil, fmt.Errorf("stored assessment: %w", err)
	}
	return &Snapshot{Profile: p, Metrics: m}, nil
}

func (s *Service) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, ProfileKey); err != nil {
		return fmt.Errorf("clear assessment: %w", err)
	}
	websocket.Notify(ctx, s.events, s.logger, websocket.TopicAssessment, nil)
	return nil
}
