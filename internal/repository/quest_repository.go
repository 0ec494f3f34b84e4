// internal/repository/quest_repository.go
package repository

import (
	"sync"

	"github.com/pressquest/pressquest-backend/internal/model"
	"github.com/pressquest/pressquest-backend/internal/store"
)

const (
	questsKey     = "quests"
	questDraftKey = "new_quest_draft"
)

func questMetadataKey(questID string) string {
	return "quest_metadata_" + questID
}

// QuestRepositoryInterface defines methods used by services
type QuestRepositoryInterface interface {
	Create(q *model.Quest) error
	GetByID(id string) (*model.Quest, error)
	ListAll() ([]model.Quest, error)
	Update(q *model.Quest) error

	SaveDraft(d *model.QuestDraft) error
	LoadDraft() (*model.QuestDraft, error)
	ClearDraft()
}

// QuestRepository keeps the canonical quest list in memory and mirrors it to
// the session store, with the editable metadata subset additionally persisted
// per quest so a metadata write survives even if the list write is lost.
type QuestRepository struct {
	Store store.Store

	mu     sync.Mutex
	quests []*model.Quest
}

func NewQuestRepository(s store.Store) *QuestRepository {
	r := &QuestRepository{Store: s}
	var persisted []*model.Quest
	if store.GetJSON(s, questsKey, &persisted) {
		for _, q := range persisted {
			var meta model.QuestMetadata
			if store.GetJSON(s, questMetadataKey(q.ID), &meta) {
				q.Title = meta.Title
				q.Synopsis = meta.Synopsis
				q.Type = meta.Type
				q.Status = meta.Status
				q.Hot = meta.Hot
			}
		}
		r.quests = persisted
	}
	return r
}

func (r *QuestRepository) Create(q *model.Quest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quests = append(r.quests, q)
	return r.persistLocked()
}

// GetByID returns nil, nil when the quest does not exist.
func (r *QuestRepository) GetByID(id string) (*model.Quest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range r.quests {
		if q.ID == id {
			cp := *q
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *QuestRepository) ListAll() ([]model.Quest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Quest, len(r.quests))
	for i, q := range r.quests {
		out[i] = *q
	}
	return out, nil
}

func (r *QuestRepository) Update(q *model.Quest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.quests {
		if existing.ID == q.ID {
			cp := *q
			r.quests[i] = &cp
			meta := model.QuestMetadata{
				Title:    q.Title,
				Synopsis: q.Synopsis,
				Type:     q.Type,
				Status:   q.Status,
				Hot:      q.Hot,
			}
			if err := store.SetJSON(r.Store, questMetadataKey(q.ID), meta); err != nil {
				return err
			}
			return r.persistLocked()
		}
	}
	// unknown id is a no-op, callers decide whether it matters
	return nil
}

func (r *QuestRepository) persistLocked() error {
	return store.SetJSON(r.Store, questsKey, r.quests)
}

// ====================== New-quest draft ======================

func (r *QuestRepository) SaveDraft(d *model.QuestDraft) error {
	return store.SetJSON(r.Store, questDraftKey, d)
}

func (r *QuestRepository) LoadDraft() (*model.QuestDraft, error) {
	var d model.QuestDraft
	if !store.GetJSON(r.Store, questDraftKey, &d) {
		return nil, nil
	}
	return &d, nil
}

func (r *QuestRepository) ClearDraft() {
	r.Store.Remove(questDraftKey)
}

var _ QuestRepositoryInterface = (*QuestRepository)(nil)
