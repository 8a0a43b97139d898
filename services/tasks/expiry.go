package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"ridelink/config"

	"github.com/hibiken/asynq"
)

// TypeExpireUnpaid is the task type for the payment-timeout sweep.
const TypeExpireUnpaid = "booking:expire_unpaid"

// ExpireUnpaidPayload identifies the booking to sweep.
type ExpireUnpaidPayload struct {
	BookingID string `json:"bookingId"`
}

// NewExpireUnpaidTask builds a task that fires at the given time.
func NewExpireUnpaidTask(bookingID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(ExpireUnpaidPayload{BookingID: bookingID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeExpireUnpaid, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Scheduler enqueues expiry tasks onto the Redis-backed queue.
type Scheduler struct {
	client *asynq.Client
}

// NewScheduler creates a task scheduler against the configured queue DB.
func NewScheduler() *Scheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &Scheduler{client: client}
}

// ScheduleExpireUnpaid schedules the sweep for a booking after the window.
func (s *Scheduler) ScheduleExpireUnpaid(bookingID string, after time.Duration) error {
	task, opts, err := NewExpireUnpaidTask(bookingID, time.Now().Add(after))
	if err != nil {
		return fmt.Errorf("failed to build expiry task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue expiry task: %w", err)
	}
	return nil
}
