// internal/model/outbound_pitch.go
package model

import "time"

// OutboundPitch is one queued delivery of a campaign pitch to a single
// contact, with the per-recipient tokens already rendered.
type OutboundPitch struct {
	ID              string    `json:"id"`
	CampaignID      string    `json:"campaign_id"`
	QuestID         string    `json:"quest_id"`
	ContactID       string    `json:"contact_id"`
	Status          string    `json:"status"` // pending, sent, failed
	RenderedSubject string    `json:"rendered_subject"`
	RenderedBody    string    `json:"rendered_body"`
	LastError       string    `json:"last_error,omitempty"`
	RetryCount      int       `json:"retry_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

const (
	PitchStatusPending = "pending"
	PitchStatusSent    = "sent"
	PitchStatusFailed  = "failed"
)
