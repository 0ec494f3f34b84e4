// internal/model/quest.go
package model

import "time"

// Quest statuses. The board lets a quest move from any status to any other,
// so only membership in this set is validated.
const (
	QuestStatusDraft  = "draft"
	QuestStatusReview = "review"
	QuestStatusReady  = "ready"
	QuestStatusLive   = "live"
)

const (
	QuestTypePressRelease = "press-release"
	QuestTypeBlogPost     = "blog-post"
	QuestTypeStrategyMemo = "strategy-memo"
)

type Quest struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Synopsis     string     `json:"synopsis,omitempty"`
	Type         string     `json:"type"`
	Status       string     `json:"status"` // draft, review, ready, live
	Hot          bool       `json:"hot"`
	Author       string     `json:"author,omitempty"`
	AuthorRole   string     `json:"author_role,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	UniqueEmail  string     `json:"unique_email"`
	Distribution []string   `json:"distribution,omitempty"`
	Deadline     string     `json:"deadline,omitempty"`     // YYYY-MM-DD
	EmbargoTime  string     `json:"embargo_time,omitempty"` // HH:MM
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// QuestPatch carries a partial metadata update; nil fields are left untouched.
type QuestPatch struct {
	Title    *string `json:"title,omitempty"`
	Synopsis *string `json:"synopsis,omitempty"`
	Type     *string `json:"type,omitempty"`
	Status   *string `json:"status,omitempty"`
	Hot      *bool   `json:"hot,omitempty"`
}

// QuestMetadata is the editable subset persisted per quest so edits survive a
// reload within the session.
type QuestMetadata struct {
	Title    string `json:"title"`
	Synopsis string `json:"synopsis"`
	Type     string `json:"type"`
	Status   string `json:"status"`
	Hot      bool   `json:"hot"`
}

// QuestDraft holds the in-progress editor form, captured incrementally so
// work survives navigation before the quest is finalized.
type QuestDraft struct {
	Title        string    `json:"title"`
	Synopsis     string    `json:"synopsis,omitempty"`
	Type         string    `json:"type,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	Author       string    `json:"author,omitempty"`
	AuthorRole   string    `json:"author_role,omitempty"`
	Deadline     string    `json:"deadline,omitempty"`
	EmbargoTime  string    `json:"embargo_time,omitempty"`
	Distribution []string  `json:"distribution,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ValidQuestStatus(s string) bool {
	switch s {
	case QuestStatusDraft, QuestStatusReview, QuestStatusReady, QuestStatusLive:
		return true
	}
	return false
}

func ValidQuestType(t string) bool {
	switch t {
	case QuestTypePressRelease, QuestTypeBlogPost, QuestTypeStrategyMemo:
		return true
	}
	return false
}
