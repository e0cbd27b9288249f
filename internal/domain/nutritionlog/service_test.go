package nutritionlog

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/nutricancer/nutricancer/internal/domain/assessment"
	"github.com/nutricancer/nutricancer/internal/domain/nutrient"
	"github.com/nutricancer/nutricancer/internal/platform/store"
	"github.com/nutricancer/nutricancer/internal/platform/websocket"
)

type stubProfiles struct {
	snap  *assessment.Snapshot
	err   error
	calls *int
}

func (s stubProfiles) Current(context.Context) (*assessment.Snapshot, error) {
	if s.calls != nil {
		*s.calls++
	}
	return s.snap, s.err
}

type recordingPublisher struct {
	events []websocket.Event
}

func (r *recordingPublisher) Publish(_ context.Context, e websocket.Event) error {
	r.events = append(r.events, e)
	return nil
}

func maleSedentary() *assessment.Snapshot {
	p := assessment.PatientProfile{
		Gender:           assessment.GenderMale,
		CancerType:       assessment.CancerColorectal,
		HeightCm:         175,
		WeightKg:         70,
		PhysicalActivity: assessment.ActivitySedentary,
	}
	m, _ := assessment.Derive(p)
	return &assessment.Snapshot{Profile: p, Metrics: m}
}

func newTestService(profiles ProfileSource) (*Service, *store.Memory, *recordingPublisher) {
	kv := store.NewMemory()
	pub := &recordingPublisher{}
	svc := NewService(kv, profiles, pub, zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC) }
	return svc, kv, pub
}

func TestService_AddDefaultsToToday(t *testing.T) {
	svc, _, pub := newTestService(nil)
	e := entry("", MealBreakfast, 180)

	got, err := svc.Add(context.Background(), e)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got.Date != "2026-10-16" {
		t.Errorf("expected today's date, got %s", got.Date)
	}
	if !strings.HasPrefix(got.ID, "food-") {
		t.Errorf("expected food- id, got %s", got.ID)
	}
	if len(pub.events) != 1 || pub.events[0].Type != "nutritionlog.updated" {
		t.Errorf("expected one nutritionlog.updated event, got %+v", pub.events)
	}
}

func TestService_AddRejectsInvalid(t *testing.T) {
	svc, kv, _ := newTestService(nil)
	_, err := svc.Add(context.Background(), entry("2026-10-16", MealLunch, 0))
	if !errors.Is(err, assessment.ErrDomain) {
		t.Errorf("expected domain error, got %v", err)
	}
	if len(kv.Keys()) != 0 {
		t.Error("invalid entry must not be stored")
	}
}

func TestService_UpdateKeepsIdentity(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()
	created, _ := svc.Add(ctx, entry("2026-10-15", MealDinner, 300))

	patch := entry("2030-01-01", MealSnack, 450)
	patch.Name = "Gratin"
	patch.ID = "food-other"
	updated, err := svc.Update(ctx, created.ID, patch)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != created.ID || updated.Date != "2026-10-15" || updated.MealType != MealDinner {
		t.Errorf("id, date and meal must not change: %+v", updated)
	}
	if updated.Name != "Gratin" || updated.Calories != 450 {
		t.Errorf("expected name and nutrients updated: %+v", updated)
	}

	if _, err := svc.Update(ctx, "food-missing", patch); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
	patch.Calories = -5
	if _, err := svc.Update(ctx, created.ID, patch); !errors.Is(err, assessment.ErrDomain) {
		t.Errorf("expected domain error, got %v", err)
	}
}

func TestService_DeleteAndList(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()
	a, _ := svc.Add(ctx, entry("2026-10-16", MealLunch, 300))
	svc.Add(ctx, entry("2026-10-16", MealDinner, 400))
	svc.Add(ctx, entry("2026-10-15", MealDinner, 500))

	all, _ := svc.List(ctx, "")
	if len(all) != 3 {
		t.Errorf("expected 3 entries, got %d", len(all))
	}
	if err := svc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, a.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound on second delete, got %v", err)
	}
	today, _ := svc.List(ctx, "2026-10-16")
	if len(today) != 1 || today[0].Calories != 400 {
		t.Errorf("expected only the dinner left today, got %+v", today)
	}
	if _, err := svc.List(ctx, "yesterday"); !errors.Is(err, assessment.ErrDomain) {
		t.Errorf("expected domain error for bad date, got %v", err)
	}
}

func TestService_GoalsFallback(t *testing.T) {
	svc, kv, _ := newTestService(stubProfiles{err: assessment.ErrNoAssessment})
	g, err := svc.Goals(context.Background())
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	if g != FallbackGoals {
		t.Errorf("expected fallback goals, got %+v", g)
	}
	if len(kv.Keys()) != 0 {
		t.Error("fallback goals must not be persisted")
	}
}

func TestService_GoalsDerivedOnce(t *testing.T) {
	calls := 0
	svc, _, _ := newTestService(stubProfiles{snap: maleSedentary(), calls: &calls})
	ctx := context.Background()

	g, err := svc.Goals(ctx)
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	want := DefaultGoals(1967)
	if g != want {
		t.Errorf("expected %+v, got %+v", want, g)
	}

	svc.profiles = stubProfiles{snap: nil, err: errors.New("must not be called"), calls: &calls}
	if g, err = svc.Goals(ctx); err != nil || g != want {
		t.Errorf("expected persisted goals, got %+v %v", g, err)
	}
	if calls != 1 {
		t.Errorf("expected the assessment read once, got %d", calls)
	}
}

func TestService_SetGoals(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()

	custom := nutrient.Goals{Calories: 1800, Protein: 90, Carbs: 200, Fat: 60, Fiber: 30}
	if _, err := svc.SetGoals(ctx, custom); err != nil {
		t.Fatalf("SetGoals: %v", err)
	}
	if g, _ := svc.Goals(ctx); g != custom {
		t.Errorf("expected custom goals, got %+v", g)
	}
	if _, err := svc.SetGoals(ctx, nutrient.Goals{Calories: -1}); !errors.Is(err, assessment.ErrDomain) {
		t.Errorf("expected domain error, got %v", err)
	}
}

func TestService_Day(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()
	svc.Add(ctx, entry("2026-10-16", MealLunch, 500))
	svc.Add(ctx, entry("2026-10-17", MealLunch, 700))

	day, err := svc.Day(ctx, "2026-10-16")
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	if day.Totals.Calories != 500 || day.Progress.Calories != 0.25 {
		t.Errorf("unexpected day %+v", day)
	}
}

func TestService_Import(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()
	svc.Add(ctx, entry("2026-10-16", MealLunch, 500))

	csv := "Date,Meal,Name,Amount,Calories,Protein,Carbs,Fat,Fiber\n" +
		"2026-10-16,dinner,Soupe,1 bol,180,3,22,9,6\n" +
		"2026-10-17,snack,Banane,1,90,1,23,0,3\n"
	n, err := svc.Import(ctx, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 imported, got %d", n)
	}
	all, _ := svc.List(ctx, "")
	if len(all) != 3 {
		t.Errorf("expected 3 entries, got %d", len(all))
	}

	bad := csv + "2026-10-18,brunch,X,1,10,0,0,0,0\n"
	if _, err := svc.Import(ctx, strings.NewReader(bad)); !errors.Is(err, ErrInvalidImport) {
		t.Errorf("expected ErrInvalidImport, got %v", err)
	}
	if all, _ = svc.List(ctx, ""); len(all) != 3 {
		t.Errorf("failed import must not store anything, got %d entries", len(all))
	}
}
