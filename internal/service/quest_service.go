// internal/service/quest_service.go
package service

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/pressquest/pressquest-backend/internal/errors"
	"github.com/pressquest/pressquest-backend/internal/model"
	"github.com/pressquest/pressquest-backend/internal/repository"
)

// Every quest gets a deterministic inbound address derived from its title.
const uniqueEmailDomain = "@stories.pressquest.io"

const slugMaxLen = 30

type QuestService struct {
	QuestRepo repository.QuestRepositoryInterface
}

type CreateQuestInput struct {
	Title        string   `json:"title"`
	Synopsis     string   `json:"synopsis"`
	Type         string   `json:"type"`
	Hot          bool     `json:"hot"`
	Author       string   `json:"author"`
	AuthorRole   string   `json:"author_role"`
	Tags         []string `json:"tags"`
	Distribution []string `json:"distribution"`
	Deadline     string   `json:"deadline"`
	EmbargoTime  string   `json:"embargo_time"`
}

// CreateQuest validates the input, derives the unique address and appends the
// quest. New quests always start in draft.
func (s *QuestService) CreateQuest(in CreateQuestInput) (*model.Quest, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, appErrors.NewValidation("title", "must not be empty")
	}
	if in.Type == "" {
		in.Type = model.QuestTypePressRelease
	}
	if !model.ValidQuestType(in.Type) {
		return nil, appErrors.NewValidation("type", "unknown quest type: "+in.Type)
	}
	if in.Deadline != "" {
		if _, err := time.Parse("2006-01-02", in.Deadline); err != nil {
			return nil, appErrors.NewValidation("deadline", "expected YYYY-MM-DD")
		}
	}

	q := &model.Quest{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Synopsis:     in.Synopsis,
		Type:         in.Type,
		Status:       model.QuestStatusDraft,
		Hot:          in.Hot,
		Author:       in.Author,
		AuthorRole:   in.AuthorRole,
		Tags:         in.Tags,
		UniqueEmail:  UniqueEmail(in.Title),
		Distribution: in.Distribution,
		Deadline:     in.Deadline,
		EmbargoTime:  in.EmbargoTime,
		CreatedAt:    time.Now(),
	}

	if err := s.QuestRepo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

// UpdateQuestMetadata applies a partial update. An unknown id is a logged
// no-op, not an error.
func (s *QuestService) UpdateQuestMetadata(id string, patch model.QuestPatch) error {
	q, err := s.QuestRepo.GetByID(id)
	if err != nil {
		return err
	}
	if q == nil {
		log.Println("⚠️ quest not found for metadata update:", id)
		return nil
	}

	if patch.Status != nil {
		if !model.ValidQuestStatus(*patch.Status) {
			return appErrors.NewValidation("status", "unknown status: "+*patch.Status)
		}
		q.Status = *patch.Status
	}
	if patch.Type != nil {
		if !model.ValidQuestType(*patch.Type) {
			return appErrors.NewValidation("type", "unknown quest type: "+*patch.Type)
		}
		q.Type = *patch.Type
	}
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return appErrors.NewValidation("title", "must not be empty")
		}
		q.Title = *patch.Title
	}
	if patch.Synopsis != nil {
		q.Synopsis = *patch.Synopsis
	}
	if patch.Hot != nil {
		q.Hot = *patch.Hot
	}

	now := time.Now()
	q.UpdatedAt = &now
	return s.QuestRepo.Update(q)
}

func (s *QuestService) GetQuest(id string) (*model.Quest, error) {
	return s.QuestRepo.GetByID(id)
}

func (s *QuestService) ListQuests() ([]model.Quest, error) {
	return s.QuestRepo.ListAll()
}

// FilterQuests returns the quests matching filter ("all" or one exact status)
// in their original relative order.
func FilterQuests(quests []model.Quest, filter string) []model.Quest {
	if filter == "" || filter == "all" {
		out := make([]model.Quest, len(quests))
		copy(out, quests)
		return out
	}
	out := []model.Quest{}
	for _, q := range quests {
		if q.Status == filter {
			out = append(out, q)
		}
	}
	return out
}

// RecommendedContacts returns directory entries whose focus or outlet
// contains any of the quest's tags, case-insensitively, in directory order.
func RecommendedContacts(quest *model.Quest, directory []model.JournalistContact, limit int) []model.JournalistContact {
	out := []model.JournalistContact{}
	if quest == nil || limit <= 0 {
		return out
	}
	for _, c := range directory {
		focus := strings.ToLower(c.Focus)
		outlet := strings.ToLower(c.Outlet)
		for _, tag := range quest.Tags {
			t := strings.ToLower(strings.TrimSpace(tag))
			if t == "" {
				continue
			}
			if strings.Contains(focus, t) || strings.Contains(outlet, t) {
				out = append(out, c)
				break
			}
		}
		if len(out) >= limit {
			break
		}
	}
	return out
}

// Slugify lowercases the title, collapses non-alphanumeric runs to single
// hyphens and caps the result at slugMaxLen.
func Slugify(title string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}
	s := b.String()
	if len(s) > slugMaxLen {
		s = strings.TrimRight(s[:slugMaxLen], "-")
	}
	return s
}

// UniqueEmail derives the quest's inbound address from its title.
func UniqueEmail(title string) string {
	return Slugify(title) + uniqueEmailDomain
}

// ====================== New-quest draft ======================

// SaveDraft captures the in-progress editor form so navigation does not lose
// work. No validation: partial drafts are the point.
func (s *QuestService) SaveDraft(d *model.QuestDraft) error {
	d.UpdatedAt = time.Now()
	return s.QuestRepo.SaveDraft(d)
}

func (s *QuestService) LoadDraft() (*model.QuestDraft, error) {
	return s.QuestRepo.LoadDraft()
}

func (s *QuestService) ClearDraft() {
	s.QuestRepo.ClearDraft()
}
