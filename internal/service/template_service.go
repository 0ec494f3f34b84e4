// internal/service/template_service.go
package service

import (
	"strings"
	"time"

	"github.com/pressquest/pressquest-backend/internal/model"
)

// InstantiateTemplate substitutes the quest-level tokens in both subject and
// body. Tokens whose source field is empty are left verbatim; the per-contact
// tokens ({{name}}, {{outlet}}, {{firstName}}) are deliberately untouched
// here.
func InstantiateTemplate(tpl model.PitchTemplate, quest *model.Quest) (subject, body string) {
	vals := questTokenValues(quest)
	return substituteTokens(tpl.Subject, vals), substituteTokens(tpl.Body, vals)
}

// PersonalizeForContact resolves the free-insert tokens for one recipient.
func PersonalizeForContact(subject, body string, contact *model.JournalistContact) (string, string) {
	vals := contactTokenValues(contact)
	return substituteTokens(subject, vals), substituteTokens(body, vals)
}

func questTokenValues(q *model.Quest) map[string]string {
	vals := map[string]string{}
	if q == nil {
		return vals
	}
	put := func(k, v string) {
		if v != "" {
			vals[k] = v
		}
	}
	put("title", q.Title)
	put("synopsis", q.Synopsis)
	if len(q.Tags) > 0 {
		put("topic", q.Tags[0])
	}
	put("founder", q.Author)
	put("sender", q.Author)
	put("embargoDate", formatLongDate(q.Deadline))
	put("embargoTime", formatClock(q.EmbargoTime))
	return vals
}

func contactTokenValues(c *model.JournalistContact) map[string]string {
	vals := map[string]string{}
	if c == nil {
		return vals
	}
	put := func(k, v string) {
		if v != "" {
			vals[k] = v
		}
	}
	put("name", c.Name)
	put("outlet", c.Outlet)
	if fields := strings.Fields(c.Name); len(fields) > 0 {
		put("firstName", fields[0])
	}
	return vals
}

func substituteTokens(text string, vals map[string]string) string {
	for k, v := range vals {
		text = strings.ReplaceAll(text, "{{"+k+"}}", v)
	}
	return text
}

// formatLongDate turns "2026-01-15" into "January 15, 2026". Anything
// unparseable comes back empty so the token stays verbatim.
func formatLongDate(date string) string {
	if date == "" {
		return ""
	}
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return d.Format("January 2, 2006")
}

// formatClock turns "06:00" into "6:00 AM", keeping the raw value when it
// does not parse.
func formatClock(clock string) string {
	if clock == "" {
		return ""
	}
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return clock
	}
	return t.Format("3:04 PM")
}
