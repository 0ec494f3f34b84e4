// internal/repository/timeline_repository.go
package repository

import (
	"github.com/pressquest/pressquest-backend/internal/model"
	"github.com/pressquest/pressquest-backend/internal/store"
)

func timelineKey(questID string) string {
	return "quest_timeline_" + questID
}

type TimelineRepositoryInterface interface {
	Load(questID string) ([]model.TimelineEvent, bool)
	Save(questID string, events []model.TimelineEvent) error
}

type TimelineRepository struct {
	Store store.Store
}

// Load reports ok=false only when nothing (or garbage) is stored for the
// quest. An explicitly stored empty list is ok=true, so a quest whose events
// were all deleted is not re-seeded.
func (r *TimelineRepository) Load(questID string) ([]model.TimelineEvent, bool) {
	events := []model.TimelineEvent{}
	if !store.GetJSON(r.Store, timelineKey(questID), &events) {
		return nil, false
	}
	return events, true
}

func (r *TimelineRepository) Save(questID string, events []model.TimelineEvent) error {
	if events == nil {
		events = []model.TimelineEvent{}
	}
	return store.SetJSON(r.Store, timelineKey(questID), events)
}

var _ TimelineRepositoryInterface = (*TimelineRepository)(nil)
