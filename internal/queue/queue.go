// internal/queue/queue.go
package queue

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/pressquest/pressquest-backend/internal/repository"
)

// TopicOutreachSends carries one job per outbound pitch.
const TopicOutreachSends = "outreach_sends"

// PitchJob identifies one outbound pitch to deliver.
type PitchJob struct {
	QuestID string `json:"quest_id"`
	PitchID string `json:"pitch_id"`
}

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue is an in-process pub/sub queue with retry
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
}

func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	job := JobPayload{
		Payload:    payload,
		RetryCount: 0,
		MaxRetries: 3,
	}

	for _, handler := range handlers {
		go q.processJob(handler, job)
	}

	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	for job.RetryCount <= job.MaxRetries {
		err := handler(job.Payload)
		if err == nil {
			return // ACK
		}

		job.RetryCount++
		log.Printf("Job failed (attempt %d/%d): %+v, error: %v\n", job.RetryCount, job.MaxRetries, job.Payload, err)

		if job.RetryCount > job.MaxRetries {
			log.Printf("Job permanently failed after %d attempts: %+v\n", job.MaxRetries, job.Payload)
			return // No requeue
		}

		// Exponential backoff before retry
		time.Sleep(time.Duration(job.RetryCount*500) * time.Millisecond)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// StartOutreachSendSubscriber delivers queued pitches: each job moves one
// outbound pitch from pending to sent (or failed, which triggers a retry).
func StartOutreachSendSubscriber(q Queue, outreachRepo repository.OutreachRepositoryInterface, delay time.Duration) {
	go func() {
		err := q.Subscribe(TopicOutreachSends, func(payload any) error {
			job, ok := payload.(PitchJob)
			if !ok {
				log.Println("⚠️ Invalid payload type, expected PitchJob")
				return nil // no retry
			}

			pitch, err := outreachRepo.GetPitchByID(job.QuestID, job.PitchID)
			if err != nil {
				log.Println("⚠️ Failed to fetch pitch:", err)
				return err
			}
			if pitch == nil {
				log.Println("⚠️ Pitch not found for ID:", job.PitchID)
				return nil // no retry
			}

			if delay > 0 {
				time.Sleep(delay)
			}

			if err := MockSender(pitch.RenderedBody); err != nil {
				log.Println("⚠️ Failed to send pitch:", err)
				_ = outreachRepo.UpdatePitchStatus(job.QuestID, job.PitchID, "failed", err.Error())
				return err // triggers retry in queue
			}

			if err := outreachRepo.UpdatePitchStatus(job.QuestID, job.PitchID, "sent", ""); err != nil {
				log.Println("⚠️ Failed to update pitch status:", err)
				return err // retry
			}

			log.Println("✅ Pitch delivered:", job.PitchID)
			return nil
		})

		if err != nil {
			log.Println("⚠️ Failed to start subscriber for", TopicOutreachSends+":", err)
		}
	}()
}

// MockSender simulates delivery with 90% success. No real mail leaves the
// system.
func MockSender(payload any) error {
	r := rand.Float64()
	if r < 0.9 {
		return nil // success
	}
	return fmt.Errorf("mock sending failed")
}
