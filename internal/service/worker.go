// internal/service/worker.go
package service

import (
	"log"

	"github.com/pressquest/pressquest-backend/internal/model"
)

// PitchRepository defines the methods the worker needs
type PitchRepository interface {
	GetPitchByID(questID, pitchID string) (*model.OutboundPitch, error)
	UpdatePitchStatus(questID, pitchID, status, lastError string) error
}

// SendJob identifies one outbound pitch to deliver.
type SendJob struct {
	QuestID string
	PitchID string
}

// Worker processes outbound pitch jobs
type Worker struct {
	OutreachRepo PitchRepository
	JobChan      <-chan SendJob
	SendFunc     func(subject, body string) bool
}

// Constructor
func NewWorker(repo PitchRepository, jobChan <-chan SendJob, sendFunc func(subject, body string) bool) *Worker {
	return &Worker{
		OutreachRepo: repo,
		JobChan:      jobChan,
		SendFunc:     sendFunc,
	}
}

// Start begins processing jobs
func (w *Worker) Start() {
	for job := range w.JobChan {
		pitch, err := w.OutreachRepo.GetPitchByID(job.QuestID, job.PitchID)
		if err != nil {
			log.Println("Failed to get pitch:", err)
			continue
		}
		if pitch == nil {
			log.Println("Pitch not found:", job.PitchID)
			continue
		}

		if w.SendFunc(pitch.RenderedSubject, pitch.RenderedBody) {
			_ = w.OutreachRepo.UpdatePitchStatus(job.QuestID, job.PitchID, model.PitchStatusSent, "")
		} else {
			_ = w.OutreachRepo.UpdatePitchStatus(job.QuestID, job.PitchID, model.PitchStatusFailed, "send failed")
		}
	}
}
