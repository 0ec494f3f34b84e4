// internal/model/timeline_event.go
package model

const (
	EventTypeEmbargo  = "embargo"
	EventTypePublish  = "publish"
	EventTypeEvent    = "event"
	EventTypeDeadline = "deadline"
	EventTypeLaunch   = "launch"
	EventTypeCustom   = "custom"
)

// TimelineEvent is a dated milestone owned by exactly one quest.
type TimelineEvent struct {
	ID      string `json:"id"`
	QuestID string `json:"quest_id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Date    string `json:"date"`           // YYYY-MM-DD, mandatory
	Time    string `json:"time,omitempty"` // HH:MM, optional
}

func ValidEventType(t string) bool {
	switch t {
	case EventTypeEmbargo, EventTypePublish, EventTypeEvent, EventTypeDeadline, EventTypeLaunch, EventTypeCustom:
		return true
	}
	return false
}
