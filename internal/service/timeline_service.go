// internal/service/timeline_service.go
package service

import (
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/pressquest/pressquest-backend/internal/errors"
	"github.com/pressquest/pressquest-backend/internal/model"
	"github.com/pressquest/pressquest-backend/internal/repository"
)

// Seed date used when the quest carries no deadline.
const placeholderEmbargoDate = "2026-02-01"

type TimelineService struct {
	TimelineRepo repository.TimelineRepositoryInterface
	QuestRepo    repository.QuestRepositoryInterface
}

type AddEventInput struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// EventPatch carries a partial event update; nil fields are left untouched.
type EventPatch struct {
	Type  *string `json:"type,omitempty"`
	Title *string `json:"title,omitempty"`
	Date  *string `json:"date,omitempty"`
	Time  *string `json:"time,omitempty"`
}

// LoadTimeline returns the quest's events in display order, seeding an
// embargo and a publish event the first time a quest's timeline is opened
// with nothing stored. The seed is persisted immediately, so repeated calls
// see the same two events.
func (s *TimelineService) LoadTimeline(questID string) ([]model.TimelineEvent, error) {
	if events, ok := s.TimelineRepo.Load(questID); ok {
		return SortEvents(events), nil
	}

	embargoDate := placeholderEmbargoDate
	embargoTime := ""
	if q, err := s.QuestRepo.GetByID(questID); err == nil && q != nil && q.Deadline != "" {
		if _, perr := time.Parse("2006-01-02", q.Deadline); perr == nil {
			embargoDate = q.Deadline
			embargoTime = q.EmbargoTime
		}
	}

	seeded := []model.TimelineEvent{
		{
			ID:      uuid.NewString(),
			QuestID: questID,
			Type:    model.EventTypeEmbargo,
			Title:   "Embargo lifts",
			Date:    embargoDate,
			Time:    embargoTime,
		},
		{
			ID:      uuid.NewString(),
			QuestID: questID,
			Type:    model.EventTypePublish,
			Title:   "Story goes live",
			Date:    dayAfter(embargoDate),
		},
	}
	if err := s.TimelineRepo.Save(questID, seeded); err != nil {
		return nil, err
	}
	return SortEvents(seeded), nil
}

// AddEvent validates, assigns an id and appends the event.
func (s *TimelineService) AddEvent(questID string, in AddEventInput) (*model.TimelineEvent, error) {
	if in.Title == "" {
		return nil, appErrors.NewValidation("title", "must not be empty")
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, appErrors.NewValidation("date", "expected YYYY-MM-DD")
	}
	if in.Time != "" {
		if _, err := time.Parse("15:04", in.Time); err != nil {
			return nil, appErrors.NewValidation("time", "expected HH:MM")
		}
	}
	if in.Type == "" {
		in.Type = model.EventTypeCustom
	}
	if !model.ValidEventType(in.Type) {
		return nil, appErrors.NewValidation("type", "unknown event type: "+in.Type)
	}

	events, err := s.LoadTimeline(questID)
	if err != nil {
		return nil, err
	}

	ev := model.TimelineEvent{
		ID:      uuid.NewString(),
		QuestID: questID,
		Type:    in.Type,
		Title:   in.Title,
		Date:    in.Date,
		Time:    in.Time,
	}
	events = append(events, ev)
	if err := s.TimelineRepo.Save(questID, events); err != nil {
		return nil, err
	}
	return &ev, nil
}

// UpdateEvent merges the patch into the matching event. An absent event id is
// a logged no-op.
func (s *TimelineService) UpdateEvent(questID, eventID string, patch EventPatch) error {
	events, ok := s.TimelineRepo.Load(questID)
	if !ok {
		log.Println("⚠️ no timeline stored for quest:", questID)
		return nil
	}
	for i := range events {
		if events[i].ID != eventID {
			continue
		}
		if patch.Title != nil {
			if *patch.Title == "" {
				return appErrors.NewValidation("title", "must not be empty")
			}
			events[i].Title = *patch.Title
		}
		if patch.Date != nil {
			if _, err := time.Parse("2006-01-02", *patch.Date); err != nil {
				return appErrors.NewValidation("date", "expected YYYY-MM-DD")
			}
			events[i].Date = *patch.Date
		}
		if patch.Time != nil {
			if *patch.Time != "" {
				if _, err := time.Parse("15:04", *patch.Time); err != nil {
					return appErrors.NewValidation("time", "expected HH:MM")
				}
			}
			events[i].Time = *patch.Time
		}
		if patch.Type != nil {
			if !model.ValidEventType(*patch.Type) {
				return appErrors.NewValidation("type", "unknown event type: "+*patch.Type)
			}
			events[i].Type = *patch.Type
		}
		return s.TimelineRepo.Save(questID, events)
	}
	log.Println("⚠️ timeline event not found for update:", eventID)
	return nil
}

// DeleteEvent removes the event if present and persists the result either
// way, so the stored state always reflects the delete.
func (s *TimelineService) DeleteEvent(questID, eventID string) error {
	events, _ := s.TimelineRepo.Load(questID)
	kept := []model.TimelineEvent{}
	for _, ev := range events {
		if ev.ID != eventID {
			kept = append(kept, ev)
		}
	}
	return s.TimelineRepo.Save(questID, kept)
}

// SortEvents returns a copy sorted ascending by (date, time). On the same
// date, events with a time sort before events without one.
func SortEvents(events []model.TimelineEvent) []model.TimelineEvent {
	out := make([]model.TimelineEvent, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return timeSortKey(out[i].Time) < timeSortKey(out[j].Time)
	})
	return out
}

// timeSortKey pushes untimed events to end-of-day.
func timeSortKey(t string) string {
	if t == "" {
		return "24:00"
	}
	return t
}

func dayAfter(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.AddDate(0, 0, 1).Format("2006-01-02")
}
