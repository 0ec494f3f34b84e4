// internal/controller/timeline_controller.go
package controller

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pressquest/pressquest-backend/internal/service"
)

type TimelineController struct {
	TimelineService *service.TimelineService
}

func (c *TimelineController) GetTimeline(w http.ResponseWriter, r *http.Request) {
	questID := chi.URLParam(r, "id")

	events, err := c.TimelineService.LoadTimeline(questID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"data": events})
}

func (c *TimelineController) AddEvent(w http.ResponseWriter, r *http.Request) {
	questID := chi.URLParam(r, "id")

	var body service.AddEventInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	event, err := c.TimelineService.AddEvent(questID, body)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(event)
}

func (c *TimelineController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	questID := chi.URLParam(r, "id")
	eventID := chi.URLParam(r, "eventID")

	var patch service.EventPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if err := c.TimelineService.UpdateEvent(questID, eventID, patch); err != nil {
		writeServiceError(w, err)
		return
	}

	events, err := c.TimelineService.LoadTimeline(questID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"data": events})
}

func (c *TimelineController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	questID := chi.URLParam(r, "id")
	eventID := chi.URLParam(r, "eventID")

	if err := c.TimelineService.DeleteEvent(questID, eventID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
