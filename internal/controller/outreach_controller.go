// internal/controller/outreach_controller.go
package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/streadway/amqp"

	appErrors "github.com/pressquest/pressquest-backend/internal/errors"
	"github.com/pressquest/pressquest-backend/internal/model"
	"github.com/pressquest/pressquest-backend/internal/queue"
	"github.com/pressquest/pressquest-backend/internal/service"
)

type OutreachController struct {
	OutreachService *service.OutreachService
	QuestService    *service.QuestService
}

func (c *OutreachController) ListTemplates(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"data": model.BuiltinPitchTemplates()})
}

func (c *OutreachController) PersonalizedPreview(w http.ResponseWriter, r *http.Request) {
	questID := chi.URLParam(r, "id")

	var body struct {
		ContactID       string  `json:"contact_id"`
		TemplateID      string  `json:"template_id"`
		OverrideSubject *string `json:"override_subject"`
		OverrideBody    *string `json:"override_body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	subject, renderedBody, err := c.OutreachService.PersonalizedPreview(
		questID, body.ContactID, body.TemplateID, body.OverrideSubject, body.OverrideBody)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"rendered_subject": subject,
		"rendered_body":    renderedBody,
		"contact_id":       body.ContactID,
	})
}

func (c *OutreachController) SendCampaign(w http.ResponseWriter, r *http.Request) {
	questID := chi.URLParam(r, "id")

	var body struct {
		Subject     string                    `json:"subject"`
		Body        string                    `json:"body"`
		Journalists []model.JournalistContact `json:"journalists"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	quest, err := c.QuestService.GetQuest(questID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if quest == nil {
		http.Error(w, appErrors.NewQuestNotFound(questID).Error(), http.StatusNotFound)
		return
	}

	campaign, err := c.OutreachService.SendCampaign(quest, body.Subject, body.Body, body.Journalists)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// Hand the pitch jobs to the external worker as well, when a broker is
	// configured. Best effort: the in-process subscriber already covers
	// delivery.
	if amqpURL := os.Getenv("AMQP_URL"); amqpURL != "" {
		publishToBroker(amqpURL, questID, campaign.ID, c.OutreachService)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(campaign)
}

func publishToBroker(amqpURL, questID, campaignID string, svc *service.OutreachService) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		log.Println("⚠️ failed to connect to broker:", err)
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Println("⚠️ failed to open broker channel:", err)
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		queue.TopicOutreachSends,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Println("⚠️ failed to declare queue:", err)
		return
	}

	for _, pitch := range svc.OutreachRepo.LoadPitches(questID) {
		if pitch.CampaignID != campaignID {
			continue
		}
		raw, _ := json.Marshal(queue.PitchJob{QuestID: questID, PitchID: pitch.ID})
		err = ch.Publish(
			"",
			q.Name,
			false,
			false,
			amqp.Publishing{
				ContentType: "application/json",
				Body:        raw,
			},
		)
		if err != nil {
			log.Println("Failed to publish pitch job:", err)
		}
	}
}

func (c *OutreachController) GetOutreach(w http.ResponseWriter, r *http.Request) {
	questID := chi.URLParam(r, "id")

	campaign, err := c.OutreachService.CurrentCampaign(questID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	stats, err := c.OutreachService.CampaignStats(questID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"campaign": campaign,
		"stats":    stats,
	})
}
