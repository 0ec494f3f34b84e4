package repository_test

import (
	"testing"

	"github.com/pressquest/pressquest-backend/internal/model"
	"github.com/pressquest/pressquest-backend/internal/repository"
	"github.com/pressquest/pressquest-backend/internal/store"
)

func TestQuestMetadataSurvivesReload(t *testing.T) {
	st := store.NewMemoryStore()
	repo := repository.NewQuestRepository(st)

	q := &model.Quest{ID: "q1", Title: "Launch", Type: model.QuestTypePressRelease, Status: model.QuestStatusDraft}
	if err := repo.Create(q); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	q.Status = model.QuestStatusLive
	q.Hot = true
	if err := repo.Update(q); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	// a fresh repository over the same store simulates a page reload
	reloaded := repository.NewQuestRepository(st)
	got, err := reloaded.GetByID("q1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected quest to survive reload")
	}
	if got.Status != model.QuestStatusLive {
		t.Errorf("expected status live after reload, got %s", got.Status)
	}
	if !got.Hot {
		t.Errorf("expected hot flag to survive reload")
	}
}

func TestQuestUpdateUnknownIDIsNoop(t *testing.T) {
	repo := repository.NewQuestRepository(store.NewMemoryStore())
	if err := repo.Update(&model.Quest{ID: "ghost"}); err != nil {
		t.Errorf("expected no-op, got error: %v", err)
	}
}

func TestDraftRoundTrip(t *testing.T) {
	repo := repository.NewQuestRepository(store.NewMemoryStore())

	if d, _ := repo.LoadDraft(); d != nil {
		t.Fatalf("expected no draft initially, got %+v", d)
	}

	if err := repo.SaveDraft(&model.QuestDraft{Title: "Half-written"}); err != nil {
		t.Fatalf("save draft failed: %v", err)
	}
	d, err := repo.LoadDraft()
	if err != nil || d == nil || d.Title != "Half-written" {
		t.Fatalf("expected draft back, got %+v (err=%v)", d, err)
	}

	repo.ClearDraft()
	if d, _ := repo.LoadDraft(); d != nil {
		t.Errorf("expected draft cleared, got %+v", d)
	}
}

func TestProductSaveUpsertsByID(t *testing.T) {
	repo := &repository.ProductRepository{Store: store.NewMemoryStore()}

	p1 := &model.ProductOutput{ID: "p1", QuestID: "q1", Type: model.ProductTypeBlogPost, Content: "v1"}
	p2 := &model.ProductOutput{ID: "p2", QuestID: "q1", Type: model.ProductTypeXPost, Content: "post"}
	if err := repo.Save("q1", p1); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := repo.Save("q1", p2); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	p1.Content = "v2"
	if err := repo.Save("q1", p1); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	products := repo.List("q1")
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].ID != "p1" || products[0].Content != "v2" {
		t.Errorf("expected p1 replaced in place, got %+v", products[0])
	}
	if products[1].ID != "p2" {
		t.Errorf("expected order preserved, got %+v", products[1])
	}
}
