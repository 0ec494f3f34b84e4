package repository_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/pressquest/pressquest-backend/internal/model"
	"github.com/pressquest/pressquest-backend/internal/repository"
	"github.com/pressquest/pressquest-backend/internal/store"
)

func TestConcurrentPitchStatusUpdates(t *testing.T) {
	repo := &repository.OutreachRepository{Store: store.NewMemoryStore()}

	const n = 50
	pitches := make([]model.OutboundPitch, 0, n)
	for i := 0; i < n; i++ {
		pitches = append(pitches, model.OutboundPitch{
			ID:      fmt.Sprintf("p-%d", i),
			QuestID: "q1",
			Status:  model.PitchStatusPending,
		})
	}
	if err := repo.SavePitches("q1", pitches); err != nil {
		t.Fatalf("SavePitches failed: %v", err)
	}

	// every delivery rewrites the whole list; run them all at once
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := repo.UpdatePitchStatus("q1", id, model.PitchStatusSent, ""); err != nil {
				t.Errorf("UpdatePitchStatus(%s) failed: %v", id, err)
			}
		}(fmt.Sprintf("p-%d", i))
	}
	wg.Wait()

	sent := 0
	for _, p := range repo.LoadPitches("q1") {
		if p.Status == model.PitchStatusSent {
			sent++
		}
	}
	if sent != n {
		t.Errorf("expected all %d pitches sent, got %d", n, sent)
	}

	stats, err := repo.CampaignStats("q1")
	if err != nil {
		t.Fatalf("CampaignStats failed: %v", err)
	}
	if stats["sent"] != n || stats["pending"] != 0 {
		t.Errorf("expected %d sent and 0 pending, got %+v", n, stats)
	}
}

func TestUpdatePitchStatusUnknownIDIsNoop(t *testing.T) {
	repo := &repository.OutreachRepository{Store: store.NewMemoryStore()}
	if err := repo.SavePitches("q1", []model.OutboundPitch{{ID: "p1", QuestID: "q1", Status: model.PitchStatusPending}}); err != nil {
		t.Fatalf("SavePitches failed: %v", err)
	}

	if err := repo.UpdatePitchStatus("q1", "ghost", model.PitchStatusSent, ""); err != nil {
		t.Fatalf("expected no error for unknown pitch, got %v", err)
	}
	if got := repo.LoadPitches("q1")[0].Status; got != model.PitchStatusPending {
		t.Errorf("expected untouched pitch to stay pending, got %s", got)
	}
}
