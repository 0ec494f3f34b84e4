package queue_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/pressquest/pressquest-backend/internal/model"
	"github.com/pressquest/pressquest-backend/internal/queue"
	"github.com/pressquest/pressquest-backend/internal/repository"
	"github.com/pressquest/pressquest-backend/internal/store"
)

// Drives the in-process delivery path end to end: pending pitches published as
// jobs must all reach a terminal status, even though the queue hands every job
// to its own goroutine.
func TestOutreachSendSubscriberDeliversAllPitches(t *testing.T) {
	repo := &repository.OutreachRepository{Store: store.NewMemoryStore()}

	const n = 20
	pitches := make([]model.OutboundPitch, 0, n)
	for i := 0; i < n; i++ {
		pitches = append(pitches, model.OutboundPitch{
			ID:           fmt.Sprintf("p-%d", i),
			QuestID:      "q1",
			Status:       model.PitchStatusPending,
			RenderedBody: "Hi, we have news.",
		})
	}
	if err := repo.SavePitches("q1", pitches); err != nil {
		t.Fatalf("SavePitches failed: %v", err)
	}

	q := queue.NewInMemoryQueue()
	queue.StartOutreachSendSubscriber(q, repo, 0)

	// the subscriber registers on a goroutine; wait for it to be up
	deadline := time.Now().Add(2 * time.Second)
	for {
		err := q.Publish(queue.TopicOutreachSends, queue.PitchJob{QuestID: "q1", PitchID: "p-0"})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("subscriber never registered: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
	}
	for i := 1; i < n; i++ {
		if err := q.Publish(queue.TopicOutreachSends, queue.PitchJob{QuestID: "q1", PitchID: fmt.Sprintf("p-%d", i)}); err != nil {
			t.Fatalf("Publish failed: %v", err)
		}
	}

	// deliveries run concurrently and may retry; poll for terminal statuses
	deadline = time.Now().Add(10 * time.Second)
	for {
		pending := 0
		for _, p := range repo.LoadPitches("q1") {
			if p.Status == model.PitchStatusPending {
				pending++
			}
		}
		if pending == 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("%d of %d pitches still pending", pending, n)
		}
		time.Sleep(20 * time.Millisecond)
	}

	stats, err := repo.CampaignStats("q1")
	if err != nil {
		t.Fatalf("CampaignStats failed: %v", err)
	}
	if stats["sent"]+stats["failed"] != n {
		t.Errorf("expected %d terminal pitches, got %+v", n, stats)
	}
}

func TestPublishWithoutSubscriberFails(t *testing.T) {
	q := queue.NewInMemoryQueue()
	if err := q.Publish("nobody_listens", queue.PitchJob{}); err == nil {
		t.Error("expected an error publishing to a topic with no subscribers")
	}
}
