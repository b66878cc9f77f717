package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"warebook-backend/internal/logger"
)

// EmailJob represents an email to be sent asynchronously
type EmailJob struct {
	ID        string
	To        string
	ToName    string
	Subject   string
	HTML      string
	Retries   int
	CreatedAt time.Time
}

// EmailSender is the delivery backend the queue drains into.
type EmailSender interface {
	Send(to, toName, subject, html string) error
}

// EmailQueue makes email dispatch an explicit fire-and-forget concern:
// callers enqueue and move on, workers deliver with bounded retries, and
// failures end up in the log rather than in the caller's error path.
type EmailQueue struct {
	sender     EmailSender
	jobs       chan EmailJob
	maxRetries int
	workers    int
}

func NewEmailQueue(sender EmailSender, workers, queueSize, maxRetries int) *EmailQueue {
	return &EmailQueue{
		sender:     sender,
		jobs:       make(chan EmailJob, queueSize),
		maxRetries: maxRetries,
		workers:    workers,
	}
}

// Start begins processing emails asynchronously
func (eq *EmailQueue) Start(ctx context.Context) {
	for i := 0; i < eq.workers; i++ {
		go eq.worker(ctx, i)
	}
}

func (eq *EmailQueue) worker(ctx context.Context, id int) {
	logger.Debug("Email worker started", "worker", id)

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Email worker stopping", "worker", id)
			return
		case job := <-eq.jobs:
			eq.processJob(job)
		}
	}
}

func (eq *EmailQueue) processJob(job EmailJob) {
	err := eq.sender.Send(job.To, job.ToName, job.Subject, job.HTML)
	if err != nil {
		logger.Error("Failed to send email", "job_id", job.ID, "to", job.To, "error", err)

		if job.Retries < eq.maxRetries {
			// Retry with quadratic backoff
			job.Retries++
			backoff := time.Duration(job.Retries*job.Retries) * time.Second
			logger.Warn("Retrying email", "job_id", job.ID, "in", backoff, "attempt", job.Retries, "max", eq.maxRetries)

			time.AfterFunc(backoff, func() {
				eq.requeue(job)
			})
		} else {
			logger.Error("Email dropped after retries", "job_id", job.ID, "retries", eq.maxRetries)
		}
		return
	}

	logger.Debug("Email sent", "job_id", job.ID, "to", job.To)
}

// requeue puts a retry back on the queue without blocking. A full queue,
// or one whose workers have already stopped, drops the job.
func (eq *EmailQueue) requeue(job EmailJob) bool {
	select {
	case eq.jobs <- job:
		return true
	default:
		logger.Error("Email dropped, queue full on retry", "job_id", job.ID, "to", job.To)
		return false
	}
}

// Enqueue adds an email to the queue
func (eq *EmailQueue) Enqueue(to, toName, subject, html string) error {
	job := EmailJob{
		ID:        uuid.NewString(),
		To:        to,
		ToName:    toName,
		Subject:   subject,
		HTML:      html,
		CreatedAt: time.Now(),
	}

	select {
	case eq.jobs <- job:
		return nil
	default:
		return fmt.Errorf("email queue is full")
	}
}
