// internal/controller/quest_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/pressquest/pressquest-backend/internal/errors"
	"github.com/pressquest/pressquest-backend/internal/model"
	"github.com/pressquest/pressquest-backend/internal/repository"
	"github.com/pressquest/pressquest-backend/internal/service"
)

type QuestController struct {
	QuestService *service.QuestService
	ContactRepo  repository.ContactRepositoryInterface
}

func writeServiceError(w http.ResponseWriter, err error) {
	if appErrors.IsValidation(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func (c *QuestController) CreateQuest(w http.ResponseWriter, r *http.Request) {
	var body service.CreateQuestInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	quest, err := c.QuestService.CreateQuest(body)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// creating a quest consumes the editor draft
	c.QuestService.ClearDraft()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(quest)
}

// ListQuests returns the board, optionally filtered to one status.
func (c *QuestController) ListQuests(w http.ResponseWriter, r *http.Request) {
	quests, err := c.QuestService.ListQuests()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filter := r.URL.Query().Get("status")
	filtered := service.FilterQuests(quests, filter)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data":  filtered,
		"count": len(filtered),
	})
}

func (c *QuestController) UpdateQuest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch model.QuestPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if err := c.QuestService.UpdateQuestMetadata(id, patch); err != nil {
		writeServiceError(w, err)
		return
	}

	quest, err := c.QuestService.GetQuest(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if quest == nil {
		http.Error(w, appErrors.NewQuestNotFound(id).Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(quest)
}

func (c *QuestController) RecommendedContacts(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	quest, err := c.QuestService.GetQuest(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if quest == nil {
		http.Error(w, appErrors.NewQuestNotFound(id).Error(), http.StatusNotFound)
		return
	}

	limit := 5
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 {
		limit = l
	}

	directory, err := c.ContactRepo.ListAll()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data": service.RecommendedContacts(quest, directory, limit),
	})
}

func (c *QuestController) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := c.ContactRepo.ListAll()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"data": contacts})
}

// ====================== New-quest draft ======================

func (c *QuestController) GetDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := c.QuestService.LoadDraft()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if draft == nil {
		json.NewEncoder(w).Encode(map[string]interface{}{"draft": nil})
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{"draft": draft})
}

func (c *QuestController) SaveDraft(w http.ResponseWriter, r *http.Request) {
	var draft model.QuestDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if err := c.QuestService.SaveDraft(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(draft)
}

func (c *QuestController) ClearDraft(w http.ResponseWriter, r *http.Request) {
	c.QuestService.ClearDraft()
	w.WriteHeader(http.StatusNoContent)
}
