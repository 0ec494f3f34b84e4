package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/pressquest/pressquest-backend/internal/controller"
	"github.com/pressquest/pressquest-backend/internal/model"
	"github.com/pressquest/pressquest-backend/internal/repository"
	"github.com/pressquest/pressquest-backend/internal/service"
	"github.com/pressquest/pressquest-backend/internal/store"
)

func newOutreachRouter(t *testing.T) *chi.Mux {
	t.Helper()
	st := store.NewMemoryStore()
	questRepo := repository.NewQuestRepository(st)
	if err := questRepo.Create(&model.Quest{
		ID:       "q1",
		Title:    "Series B Funding",
		Synopsis: "We raised $40M.",
		Author:   "Maya Rodriguez",
		Tags:     []string{"fintech"},
	}); err != nil {
		t.Fatalf("seed quest failed: %v", err)
	}

	questService := &service.QuestService{QuestRepo: questRepo}
	outreachService := &service.OutreachService{
		OutreachRepo: &repository.OutreachRepository{Store: st},
		ContactRepo:  repository.NewContactRepository(nil),
		QuestRepo:    questRepo,
	}

	ctrl := &controller.OutreachController{
		OutreachService: outreachService,
		QuestService:    questService,
	}

	r := chi.NewRouter()
	r.Post("/quests/{id}/outreach/preview", ctrl.PersonalizedPreview)
	r.Post("/quests/{id}/outreach/send", ctrl.SendCampaign)
	r.Get("/quests/{id}/outreach", ctrl.GetOutreach)
	return r
}

func TestPersonalizedPreviewHandler(t *testing.T) {
	r := newOutreachRouter(t)

	b, _ := json.Marshal(map[string]interface{}{"contact_id": "c-1", "template_id": "exclusive"})
	req := httptest.NewRequest("POST", "/quests/q1/outreach/preview", bytes.NewReader(b))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var res map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	body, ok := res["rendered_body"].(string)
	if !ok {
		t.Fatalf("rendered_body not found or not a string")
	}
	if !strings.Contains(body, "Sarah") {
		t.Errorf("expected 'Sarah' in body, got %q", body)
	}
	if !strings.Contains(body, "Series B Funding") {
		t.Errorf("expected quest title in body, got %q", body)
	}
}

func TestSendCampaignEndpoint(t *testing.T) {
	r := newOutreachRouter(t)

	b, _ := json.Marshal(map[string]interface{}{
		"subject": "Exclusive: Series B",
		"body":    "Hi {{firstName}}, we have news.",
		"journalists": []map[string]string{
			{"id": "c-1", "name": "Sarah Chen", "outlet": "TechCrunch"},
			{"id": "c-2", "name": "Marcus Webb", "outlet": "The Verge"},
		},
	})
	req := httptest.NewRequest("POST", "/quests/q1/outreach/send", bytes.NewReader(b))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var campaign model.OutreachCampaign
	if err := json.NewDecoder(resp.Body).Decode(&campaign); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if campaign.Status != "sent" {
		t.Errorf("expected sent, got %s", campaign.Status)
	}
	if len(campaign.Journalists) != 2 {
		t.Errorf("expected 2 journalists, got %d", len(campaign.Journalists))
	}

	// current campaign readable afterwards
	req = httptest.NewRequest("GET", "/quests/q1/outreach", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var res struct {
		Campaign *model.OutreachCampaign `json:"campaign"`
		Stats    map[string]int          `json:"stats"`
	}
	if err := json.NewDecoder(w.Result().Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if res.Campaign == nil || res.Campaign.ID != campaign.ID {
		t.Errorf("expected current campaign back, got %+v", res.Campaign)
	}
	if res.Stats["total"] != 2 {
		t.Errorf("expected 2 pitches in stats, got %+v", res.Stats)
	}
}

func TestSendCampaignEndpointRejectsZeroContacts(t *testing.T) {
	r := newOutreachRouter(t)

	b, _ := json.Marshal(map[string]interface{}{
		"subject":     "S",
		"body":        "B",
		"journalists": []map[string]string{},
	})
	req := httptest.NewRequest("POST", "/quests/q1/outreach/send", bytes.NewReader(b))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 with zero contacts, got %d", w.Result().StatusCode)
	}
}

func TestSendCampaignEndpointUnknownQuest(t *testing.T) {
	r := newOutreachRouter(t)

	b, _ := json.Marshal(map[string]interface{}{
		"subject":     "S",
		"body":        "B",
		"journalists": []map[string]string{{"id": "c-1"}},
	})
	req := httptest.NewRequest("POST", "/quests/ghost/outreach/send", bytes.NewReader(b))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for unknown quest, got %d", w.Result().StatusCode)
	}
}
