package store_test

import (
	"testing"

	"github.com/pressquest/pressquest-backend/internal/store"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := store.NewMemoryStore()

	if _, ok := s.Get("missing"); ok {
		t.Errorf("expected missing key to be absent")
	}

	if err := s.Set("k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	raw, ok := s.Get("k")
	if !ok || string(raw) != `{"a":1}` {
		t.Errorf("expected stored value back, got %q (ok=%v)", raw, ok)
	}

	s.Remove("k")
	if _, ok := s.Get("k"); ok {
		t.Errorf("expected removed key to be absent")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := store.NewFileStore(dir)
	if err != nil {
		t.Fatalf("failed to create file store: %v", err)
	}

	if err := s.Set("quest_metadata_abc", []byte(`{"title":"T"}`)); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	raw, ok := s.Get("quest_metadata_abc")
	if !ok || string(raw) != `{"title":"T"}` {
		t.Errorf("expected stored value back, got %q (ok=%v)", raw, ok)
	}

	// a second store over the same dir sees the write
	s2, err := store.NewFileStore(dir)
	if err != nil {
		t.Fatalf("failed to reopen file store: %v", err)
	}
	if _, ok := s2.Get("quest_metadata_abc"); !ok {
		t.Errorf("expected value to survive reopen")
	}

	s.Remove("quest_metadata_abc")
	if _, ok := s.Get("quest_metadata_abc"); ok {
		t.Errorf("expected removed key to be absent")
	}
	s.Remove("quest_metadata_abc") // removing twice is fine
}

func TestGetJSONCorruptValueIsAbsent(t *testing.T) {
	s := store.NewMemoryStore()
	if err := s.Set("bad", []byte("not json at all {")); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	var out map[string]int
	if store.GetJSON(s, "bad", &out) {
		t.Errorf("expected corrupt value to read as absent")
	}
	if store.GetJSON(s, "never-set", &out) {
		t.Errorf("expected missing key to read as absent")
	}

	if err := store.SetJSON(s, "good", map[string]int{"n": 3}); err != nil {
		t.Fatalf("SetJSON failed: %v", err)
	}
	if !store.GetJSON(s, "good", &out) || out["n"] != 3 {
		t.Errorf("expected round trip, got %v", out)
	}
}
