// internal/model/outreach_campaign.go
package model

import "time"

const (
	CampaignStatusPending = "pending"
	CampaignStatusSent    = "sent"
)

// OutreachCampaign records one send of a pitch to a set of contacts. A
// campaign is immutable once sent; only the most recent campaign is kept per
// quest.
type OutreachCampaign struct {
	ID            string              `json:"id"`
	QuestID       string              `json:"quest_id"`
	Status        string              `json:"status"` // pending, sent
	SentAt        *time.Time          `json:"sent_at,omitempty"`
	SentBy        string              `json:"sent_by,omitempty"`
	Journalists   []JournalistContact `json:"journalists"`
	Subject       string              `json:"subject"`
	Body          string              `json:"body"`
	OpenRate      float64             `json:"open_rate"`
	ResponseCount int                 `json:"response_count"`
}
