// internal/handler/quest_handler.go
package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pressquest/pressquest-backend/internal/model"
	"github.com/pressquest/pressquest-backend/internal/repository"
	"github.com/pressquest/pressquest-backend/internal/service"
)

// QuestHandler holds the dependencies for the quest detail view
type QuestHandler struct {
	QuestRepo       repository.QuestRepositoryInterface
	OutreachService *service.OutreachService
}

// QuestDetails is a quest together with its outreach pitch stats.
type QuestDetails struct {
	model.Quest
	Stats map[string]int `json:"stats"`
}

// GetQuestHandlerWithStats returns a single quest with outbound pitch counts
// by status
func (h *QuestHandler) GetQuestHandlerWithStats(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	quest, err := h.QuestRepo.GetByID(id)
	if err != nil {
		log.Println("❌ Error fetching quest:", err)
		http.Error(w, "failed to fetch quest: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if quest == nil {
		http.Error(w, "quest not found", http.StatusNotFound)
		return
	}

	stats, err := h.OutreachService.CampaignStats(id)
	if err != nil {
		log.Println("❌ Error fetching outreach stats:", err)
		http.Error(w, "failed to fetch stats: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(QuestDetails{Quest: *quest, Stats: stats})
}
