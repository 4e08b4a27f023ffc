package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"raisedesk/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSendReminder = "reminder:send"

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(reminderTaskID(payload)),
		asynq.MaxRetry(3),
	}
	return task, opts, nil
}

// reminderTaskID keeps one pending reminder per target and fire date.
func reminderTaskID(p models.ReminderPayload) string {
	return fmt.Sprintf("%s:%s:%s", p.Target, p.ID, p.FireDate)
}

// ReminderScheduler queues reminders for later delivery.
type ReminderScheduler interface {
	Schedule(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error
}

// AsynqScheduler enqueues reminders on the Redis-backed asynq queue.
type AsynqScheduler struct {
	Client *asynq.Client
	Logger *zap.Logger
}

func NewAsynqScheduler(client *asynq.Client, logger *zap.Logger) *AsynqScheduler {
	return &AsynqScheduler{Client: client, Logger: logger}
}

func (s *AsynqScheduler) Schedule(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	payload.FireDate = fireAt.UTC().Format(time.RFC3339)
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	info, err := s.Client.EnqueueContext(ctx, task, opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	s.Logger.Info("reminder scheduled",
		zap.String("taskId", info.ID),
		zap.String("target", payload.Target),
		zap.String("id", payload.ID),
		zap.Time("fireAt", fireAt),
	)
	return nil
}

// NoopScheduler drops reminders; used when no queue is configured.
type NoopScheduler struct{}

func (NoopScheduler) Schedule(context.Context, models.ReminderPayload, time.Time) error { return nil }
