package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"raisedesk/config"
	"raisedesk/database"
	"raisedesk/database/repository"
	"raisedesk/models"
	"raisedesk/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Notifier delivers a reminder that is still relevant.
type Notifier interface {
	Notify(ctx context.Context, p models.ReminderPayload) error
}

// LogNotifier writes reminders to the structured log; the dashboard polls upcoming meetings itself.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n LogNotifier) Notify(_ context.Context, p models.ReminderPayload) error {
	n.Logger.Info("reminder",
		zap.String("target", p.Target),
		zap.String("id", p.ID),
		zap.String("title", p.Title),
		zap.String("body", p.Body),
		zap.String("fireDate", p.FireDate),
	)
	return nil
}

// ReminderHandler processes queued reminders, dropping those whose meeting or task moved on.
type ReminderHandler struct {
	Meetings repository.MeetingRepository
	Tasks    repository.TaskRepository
	Notifier Notifier
	LeadTime time.Duration
	Logger   *zap.Logger
}

func (h *ReminderHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		h.Logger.Error("invalid reminder payload", zap.Error(err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	live, err := h.stillRelevant(ctx, p)
	if err != nil {
		return err
	}
	if !live {
		h.Logger.Debug("dropping stale reminder", zap.String("target", p.Target), zap.String("id", p.ID))
		return nil
	}
	if err := h.Notifier.Notify(ctx, p); err != nil {
		h.Logger.Error("failed to deliver reminder", zap.String("id", p.ID), zap.Error(err))
		return err
	}
	return nil
}

func (h *ReminderHandler) stillRelevant(ctx context.Context, p models.ReminderPayload) (bool, error) {
	switch p.Target {
	case models.ReminderMeeting:
		m, err := h.Meetings.GetByID(ctx, p.ID)
		if err != nil {
			return false, ignoreNotFound(err)
		}
		return m.Status == models.MeetingStatusScheduled, nil
	case models.ReminderTask:
		t, err := h.Tasks.GetByID(ctx, p.ID)
		if err != nil {
			return false, ignoreNotFound(err)
		}
		if t.Column == models.ColumnDone || t.DueAt == nil {
			return false, nil
		}
		// A rescheduled task gets a new reminder; an old one no longer lines up with dueAt.
		fireDate, err := time.Parse(time.RFC3339, p.FireDate)
		if err != nil {
			return true, nil
		}
		return fireDate.Equal(t.DueAt.Add(-h.LeadTime).Truncate(time.Second)), nil
	default:
		h.Logger.Warn("unknown reminder target", zap.String("target", p.Target))
		return false, nil
	}
}

// Worker runs the asynq server that consumes reminder tasks.
type Worker struct {
	srv *asynq.Server
	mux *asynq.ServeMux
}

// NewReminderWorker builds a worker on the configured queue DB.
func NewReminderWorker(h *ReminderHandler) *Worker {
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
			Logger: h.Logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.Handle(tasks.TypeSendReminder, h)
	return &Worker{srv: srv, mux: mux}
}

// Start runs the worker in the background, retrying startup with a growing backoff.
func (w *Worker) Start(logger *zap.Logger) {
	go func() {
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := w.srv.Start(w.mux)
			if err == nil {
				return
			}
			logger.Warn("reminder worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("reminder worker giving up")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

func (w *Worker) Shutdown() {
	w.srv.Shutdown()
}

func ignoreNotFound(err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return nil
	}
	return err
}
