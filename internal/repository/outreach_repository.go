// internal/repository/outreach_repository.go
package repository

import (
	"sync"
	"time"

	"github.com/pressquest/pressquest-backend/internal/model"
	"github.com/pressquest/pressquest-backend/internal/store"
)

func outreachKey(questID string) string {
	return "outreach_" + questID
}

func pitchesKey(questID string) string {
	return "outreach_pitches_" + questID
}

type OutreachRepositoryInterface interface {
	// Campaign: one current record per quest, last write wins
	SaveCampaign(c *model.OutreachCampaign) error
	GetCampaign(questID string) (*model.OutreachCampaign, error)

	// Outbound pitches
	SavePitches(questID string, pitches []model.OutboundPitch) error
	LoadPitches(questID string) []model.OutboundPitch
	GetPitchByID(questID, pitchID string) (*model.OutboundPitch, error)
	UpdatePitchStatus(questID, pitchID, status, lastError string) error
	CampaignStats(questID string) (map[string]int, error)
}

// OutreachRepository persists each quest's campaign and pitch list as whole
// JSON documents. The pitch list is rewritten as a unit on every status
// change, and the queue delivers pitches concurrently, so the mutex keeps one
// goroutine's load-modify-save from erasing another's.
type OutreachRepository struct {
	Store store.Store

	mu sync.Mutex
}

// ====================== Campaign ======================

func (r *OutreachRepository) SaveCampaign(c *model.OutreachCampaign) error {
	return store.SetJSON(r.Store, outreachKey(c.QuestID), c)
}

// GetCampaign returns nil, nil when no campaign has been recorded yet.
func (r *OutreachRepository) GetCampaign(questID string) (*model.OutreachCampaign, error) {
	var c model.OutreachCampaign
	if !store.GetJSON(r.Store, outreachKey(questID), &c) {
		return nil, nil
	}
	return &c, nil
}

// ====================== Outbound pitches ======================

func (r *OutreachRepository) SavePitches(questID string, pitches []model.OutboundPitch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.savePitchesLocked(questID, pitches)
}

func (r *OutreachRepository) savePitchesLocked(questID string, pitches []model.OutboundPitch) error {
	if pitches == nil {
		pitches = []model.OutboundPitch{}
	}
	return store.SetJSON(r.Store, pitchesKey(questID), pitches)
}

func (r *OutreachRepository) LoadPitches(questID string) []model.OutboundPitch {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadPitchesLocked(questID)
}

func (r *OutreachRepository) loadPitchesLocked(questID string) []model.OutboundPitch {
	pitches := []model.OutboundPitch{}
	store.GetJSON(r.Store, pitchesKey(questID), &pitches)
	return pitches
}

func (r *OutreachRepository) GetPitchByID(questID, pitchID string) (*model.OutboundPitch, error) {
	for _, p := range r.LoadPitches(questID) {
		if p.ID == pitchID {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

// UpdatePitchStatus rewrites the pitch list with one pitch's status changed.
// The whole load-modify-save holds the lock: concurrent deliveries must not
// drop each other's updates.
func (r *OutreachRepository) UpdatePitchStatus(questID, pitchID, status, lastError string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pitches := r.loadPitchesLocked(questID)
	for i := range pitches {
		if pitches[i].ID == pitchID {
			pitches[i].Status = status
			pitches[i].LastError = lastError
			pitches[i].RetryCount++
			pitches[i].UpdatedAt = time.Now()
			return r.savePitchesLocked(questID, pitches)
		}
	}
	// unknown pitch id is a no-op
	return nil
}

func (r *OutreachRepository) CampaignStats(questID string) (map[string]int, error) {
	stats := map[string]int{"total": 0, "pending": 0, "sent": 0, "failed": 0}
	for _, p := range r.LoadPitches(questID) {
		if _, ok := stats[p.Status]; ok {
			stats[p.Status]++
		}
		stats["total"]++
	}
	return stats, nil
}

var _ OutreachRepositoryInterface = (*OutreachRepository)(nil)
