// internal/model/pitch_template.go
package model

// PitchTemplate is a named subject/body pair with {{token}} placeholders.
// Quest-level tokens ({{title}}, {{synopsis}}, {{topic}}, {{founder}},
// {{embargoDate}}, {{embargoTime}}, {{sender}}) are resolved when the
// template is instantiated for a quest; {{name}}, {{outlet}} and
// {{firstName}} stay in place until a pitch is rendered for one contact.
type PitchTemplate struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
}

const (
	TemplateExclusive = "exclusive"
	TemplateEmbargo   = "embargo"
	TemplateFollowup  = "followup"
)

// BuiltinPitchTemplates returns the three stock templates in display order.
func BuiltinPitchTemplates() []PitchTemplate {
	return []PitchTemplate{
		{
			ID:          TemplateExclusive,
			Label:       "Exclusive offer",
			Description: "Offer one outlet the story before anyone else.",
			Subject:     "Exclusive for {{outlet}}: {{title}}",
			Body: "Hi {{firstName}},\n\n" +
				"I wanted to offer {{outlet}} an exclusive first look at {{title}}. {{synopsis}}\n\n" +
				"Given your coverage of {{topic}}, I think this would land well with your readers. " +
				"I can set up time with {{founder}} this week and share everything you need to run it first.\n\n" +
				"Best,\n{{sender}}",
		},
		{
			ID:          TemplateEmbargo,
			Label:       "Embargoed briefing",
			Description: "Share the story ahead of time under embargo.",
			Subject:     "Under embargo until {{embargoDate}}: {{title}}",
			Body: "Hi {{name}},\n\n" +
				"Sharing this with you under embargo until {{embargoDate}} at {{embargoTime}}. {{synopsis}}\n\n" +
				"Would {{outlet}} be interested in a pre-brief? {{founder}} is available for interviews " +
				"before the embargo lifts.\n\n" +
				"Thanks,\n{{sender}}",
		},
		{
			ID:          TemplateFollowup,
			Label:       "Follow-up",
			Description: "Nudge a contact who has not replied yet.",
			Subject:     "Following up: {{title}}",
			Body: "Hi {{firstName}},\n\n" +
				"Following up on my earlier note about {{title}} in case it got buried. {{synopsis}}\n\n" +
				"Happy to send more detail on {{topic}} or connect you with {{founder}} directly.\n\n" +
				"Best,\n{{sender}}",
		},
	}
}

// FindPitchTemplate looks up a builtin template by id.
func FindPitchTemplate(id string) (PitchTemplate, bool) {
	for _, t := range BuiltinPitchTemplates() {
		if t.ID == id {
			return t, true
		}
	}
	return PitchTemplate{}, false
}
