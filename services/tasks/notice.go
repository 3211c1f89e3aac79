package tasks

import (
	"context"
	"encoding/json"
	"errors"

	"studiobook/config"
	"studiobook/models"

	"github.com/hibiken/asynq"
)

const TypeBookingNotice = "booking:notice"

// NewBookingNoticeTask builds the queued task for a booking notice. The task
// ID is derived from the booking and notice kind so a retried webhook cannot
// enqueue the same notice twice.
func NewBookingNoticeTask(payload models.BookingNoticePayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingNotice, b)
	opts := []asynq.Option{
		asynq.TaskID("notice:" + payload.BookingID + ":" + payload.Kind),
		asynq.MaxRetry(5),
	}
	return task, opts, nil
}

// Dispatcher enqueues notification tasks on the Redis-backed queue.
type Dispatcher struct {
	client *asynq.Client
}

// NewDispatcher creates a Dispatcher against the configured queue Redis DB.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

// EnqueueBookingNotice queues a booking notice for async delivery. A task ID
// conflict means the notice is already queued or delivered; that is success.
func (d *Dispatcher) EnqueueBookingNotice(ctx context.Context, payload models.BookingNoticePayload) error {
	task, opts, err := NewBookingNoticeTask(payload)
	if err != nil {
		return err
	}
	if _, err := d.client.EnqueueContext(ctx, task, opts...); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return err
	}
	return nil
}

// Close releases the underlying queue client.
func (d *Dispatcher) Close() error {
	return d.client.Close()
}
