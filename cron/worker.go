package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ridelink/config"
	"ridelink/services/booking"
	"ridelink/services/tasks"

	"github.com/hibiken/asynq"
)

// InitExpiryWorker runs the payment-timeout sweeper in the background. It
// consumes expire_unpaid tasks and cancels bookings whose payment is still
// pending when the window closes.
func InitExpiryWorker(bookingSvc booking.BookingService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeExpireUnpaid, handleExpireUnpaid(bookingSvc))

	go func() {
		log.Println("[ExpiryWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ExpiryWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Printf("[ExpiryWorker] max retry attempts reached; payment-timeout sweep disabled")
					return
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleExpireUnpaid(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ExpireUnpaidPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ExpiryWorker] invalid payload: %v", err)
			return err
		}

		cancelled, err := bookingSvc.CancelIfUnpaid(ctx, p.BookingID)
		if err != nil {
			log.Printf("[ExpiryWorker] sweep failed for booking %s: %v", p.BookingID, err)
			return err
		}
		if cancelled {
			log.Printf("[ExpiryWorker] cancelled unpaid booking %s", p.BookingID)
		}
		return nil
	}
}
