package service_test

import (
	"testing"

	appErrors "github.com/pressquest/pressquest-backend/internal/errors"
	"github.com/pressquest/pressquest-backend/internal/model"
	"github.com/pressquest/pressquest-backend/internal/repository"
	"github.com/pressquest/pressquest-backend/internal/service"
	"github.com/pressquest/pressquest-backend/internal/store"
)

func newTimelineService(t *testing.T, quest *model.Quest) *service.TimelineService {
	t.Helper()
	st := store.NewMemoryStore()
	questRepo := repository.NewQuestRepository(st)
	if quest != nil {
		if err := questRepo.Create(quest); err != nil {
			t.Fatalf("failed to seed quest: %v", err)
		}
	}
	return &service.TimelineService{
		TimelineRepo: &repository.TimelineRepository{Store: st},
		QuestRepo:    questRepo,
	}
}

func TestLoadTimelineSeedsOnce(t *testing.T) {
	quest := &model.Quest{ID: "q1", Title: "Launch", Deadline: "2026-01-10", EmbargoTime: "06:00"}
	svc := newTimelineService(t, quest)

	first, err := svc.LoadTimeline("q1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 seeded events, got %d", len(first))
	}
	if first[0].Type != model.EventTypeEmbargo || first[0].Date != "2026-01-10" {
		t.Errorf("expected embargo on the quest deadline, got %+v", first[0])
	}
	if first[1].Type != model.EventTypePublish || first[1].Date != "2026-01-11" {
		t.Errorf("expected publish the day after, got %+v", first[1])
	}

	second, err := svc.LoadTimeline("q1")
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(second) != 2 {
		t.Fatalf("expected seeding to happen at most once, got %d events", len(second))
	}
	if second[0].ID != first[0].ID || second[1].ID != first[1].ID {
		t.Errorf("expected identical event set on repeated loads")
	}
}

func TestLoadTimelinePlaceholderWithoutDeadline(t *testing.T) {
	svc := newTimelineService(t, &model.Quest{ID: "q1", Title: "No deadline"})

	events, err := svc.LoadTimeline("q1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 seeded events, got %d", len(events))
	}
	if events[0].Date == "" {
		t.Errorf("expected placeholder date on the embargo seed")
	}
}

func TestAddEventSortsIntoPlace(t *testing.T) {
	quest := &model.Quest{ID: "q1", Title: "Launch", Deadline: "2026-01-10"}
	svc := newTimelineService(t, quest)

	ev, err := svc.AddEvent("q1", service.AddEventInput{
		Type:  model.EventTypeEmbargo,
		Title: "Embargo Lift",
		Date:  "2026-01-15",
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if ev.ID == "" {
		t.Errorf("expected event to get an id")
	}

	events, err := svc.LoadTimeline("q1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events after add, got %d", len(events))
	}
	// seeded 2026-01-10 and 2026-01-11 both precede 2026-01-15
	if events[2].ID != ev.ID {
		t.Errorf("expected new event in sorted position 2, got %+v", events)
	}
}

func TestAddEventValidation(t *testing.T) {
	svc := newTimelineService(t, nil)

	if _, err := svc.AddEvent("q1", service.AddEventInput{Title: "", Date: "2026-01-15"}); !appErrors.IsValidation(err) {
		t.Errorf("expected validation error for empty title, got %v", err)
	}
	if _, err := svc.AddEvent("q1", service.AddEventInput{Title: "X", Date: "not-a-date"}); !appErrors.IsValidation(err) {
		t.Errorf("expected validation error for bad date, got %v", err)
	}
	if _, err := svc.AddEvent("q1", service.AddEventInput{Title: "X", Date: "2026-01-15", Time: "25:99"}); !appErrors.IsValidation(err) {
		t.Errorf("expected validation error for bad time, got %v", err)
	}
}

func TestSortEventsOrdering(t *testing.T) {
	events := []model.TimelineEvent{
		{ID: "late", Date: "2026-03-01"},
		{ID: "untimed", Date: "2026-02-01"},
		{ID: "timed", Date: "2026-02-01", Time: "09:00"},
		{ID: "early", Date: "2026-01-01", Time: "23:00"},
	}

	sorted := service.SortEvents(events)
	want := []string{"early", "timed", "untimed", "late"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, sorted[i].ID)
		}
	}
}

func TestUpdateAndDeleteEvent(t *testing.T) {
	svc := newTimelineService(t, &model.Quest{ID: "q1", Title: "Launch"})

	events, err := svc.LoadTimeline("q1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	target := events[0]

	newTitle := "Revised embargo"
	if err := svc.UpdateEvent("q1", target.ID, service.EventPatch{Title: &newTitle}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	events, _ = svc.LoadTimeline("q1")
	found := false
	for _, ev := range events {
		if ev.ID == target.ID && ev.Title == "Revised embargo" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected title change to persist")
	}

	// absent event id: silent no-op
	if err := svc.UpdateEvent("q1", "ghost", service.EventPatch{Title: &newTitle}); err != nil {
		t.Errorf("expected no-op for unknown event, got %v", err)
	}

	if err := svc.DeleteEvent("q1", target.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	events, _ = svc.LoadTimeline("q1")
	if len(events) != 1 {
		t.Fatalf("expected 1 event after delete, got %d", len(events))
	}

	// deleting the rest must not trigger a re-seed
	if err := svc.DeleteEvent("q1", events[0].ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	events, _ = svc.LoadTimeline("q1")
	if len(events) != 0 {
		t.Errorf("expected empty timeline to stay empty, got %d events", len(events))
	}
}
