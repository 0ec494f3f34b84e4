// internal/service/outreach_service.go
package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/pressquest/pressquest-backend/internal/errors"
	"github.com/pressquest/pressquest-backend/internal/model"
	"github.com/pressquest/pressquest-backend/internal/queue"
	"github.com/pressquest/pressquest-backend/internal/repository"
)

type OutreachService struct {
	OutreachRepo repository.OutreachRepositoryInterface
	ContactRepo  repository.ContactRepositoryInterface
	QuestRepo    repository.QuestRepositoryInterface
	Queue        queue.Queue

	// SendDelay keeps the pending state visible to UIs. Zero in tests.
	SendDelay time.Duration
}

// ToggleContactSelection adds the contact when absent and removes it when
// present, comparing by id.
func ToggleContactSelection(selected []model.JournalistContact, contact model.JournalistContact) []model.JournalistContact {
	out := []model.JournalistContact{}
	removed := false
	for _, c := range selected {
		if c.ID == contact.ID {
			removed = true
			continue
		}
		out = append(out, c)
	}
	if !removed {
		out = append(out, contact)
	}
	return out
}

// SendCampaign records the send: the campaign is persisted pending, one
// outbound pitch per contact is rendered and queued, and after the configured
// delay the campaign is marked sent. The returned campaign is immutable from
// the caller's point of view; there is no edit-after-send.
func (s *OutreachService) SendCampaign(quest *model.Quest, subject, body string, selected []model.JournalistContact) (*model.OutreachCampaign, error) {
	if quest == nil {
		return nil, fmt.Errorf("quest not found")
	}
	if len(selected) == 0 {
		return nil, appErrors.NewValidation("journalists", "select at least one contact")
	}
	if strings.TrimSpace(subject) == "" {
		return nil, appErrors.NewValidation("subject", "must not be empty")
	}
	if strings.TrimSpace(body) == "" {
		return nil, appErrors.NewValidation("body", "must not be empty")
	}

	campaign := &model.OutreachCampaign{
		ID:          uuid.NewString(),
		QuestID:     quest.ID,
		Status:      model.CampaignStatusPending,
		SentBy:      quest.Author,
		Journalists: selected,
		Subject:     subject,
		Body:        body,
	}
	// Last write wins: this replaces any prior campaign for the quest.
	if err := s.OutreachRepo.SaveCampaign(campaign); err != nil {
		return nil, err
	}

	now := time.Now()
	pitches := make([]model.OutboundPitch, 0, len(selected))
	for _, contact := range selected {
		c := contact
		renderedSubject, renderedBody := PersonalizeForContact(subject, body, &c)
		pitches = append(pitches, model.OutboundPitch{
			ID:              uuid.NewString(),
			CampaignID:      campaign.ID,
			QuestID:         quest.ID,
			ContactID:       c.ID,
			Status:          model.PitchStatusPending,
			RenderedSubject: renderedSubject,
			RenderedBody:    renderedBody,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}
	if err := s.OutreachRepo.SavePitches(quest.ID, pitches); err != nil {
		return nil, err
	}

	if s.Queue != nil {
		for _, pitch := range pitches {
			job := queue.PitchJob{QuestID: quest.ID, PitchID: pitch.ID}
			if err := s.Queue.Publish(queue.TopicOutreachSends, job); err != nil {
				log.Println("⚠️ failed to enqueue pitch", pitch.ID+":", err)
			}
		}
	}

	if s.SendDelay > 0 {
		time.Sleep(s.SendDelay)
	}

	sentAt := time.Now()
	campaign.Status = model.CampaignStatusSent
	campaign.SentAt = &sentAt
	if err := s.OutreachRepo.SaveCampaign(campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// PersonalizedPreview renders the chosen template for one quest and one
// contact, with optional subject/body overrides.
func (s *OutreachService) PersonalizedPreview(questID, contactID, templateID string, overrideSubject, overrideBody *string) (string, string, error) {
	quest, err := s.QuestRepo.GetByID(questID)
	if err != nil {
		return "", "", err
	}
	if quest == nil {
		return "", "", fmt.Errorf("quest not found")
	}

	contact, err := s.ContactRepo.GetByID(contactID)
	if err != nil {
		return "", "", err
	}
	if contact == nil {
		return "", "", fmt.Errorf("contact not found")
	}

	if templateID == "" {
		templateID = model.TemplateExclusive
	}
	tpl, ok := model.FindPitchTemplate(templateID)
	if !ok {
		return "", "", fmt.Errorf("unknown pitch template: %s", templateID)
	}

	subject, body := InstantiateTemplate(tpl, quest)
	if overrideSubject != nil && strings.TrimSpace(*overrideSubject) != "" {
		subject = *overrideSubject
	}
	if overrideBody != nil && strings.TrimSpace(*overrideBody) != "" {
		body = *overrideBody
	}

	subject, body = PersonalizeForContact(subject, body, contact)
	return subject, body, nil
}

// CurrentCampaign returns the quest's most recent campaign, nil when none.
func (s *OutreachService) CurrentCampaign(questID string) (*model.OutreachCampaign, error) {
	return s.OutreachRepo.GetCampaign(questID)
}

// CampaignStats returns outbound pitch counts by status.
func (s *OutreachService) CampaignStats(questID string) (map[string]int, error) {
	return s.OutreachRepo.CampaignStats(questID)
}
