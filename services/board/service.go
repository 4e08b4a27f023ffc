package board

import (
	"context"
	"fmt"
	"time"

	"raisedesk/database/repository"
	"raisedesk/models"
	"raisedesk/services/tasks"

	"go.uber.org/zap"
)

type BoardService interface {
	GetBoard(ctx context.Context) ([]models.BoardColumn, error)
	CreateTask(ctx context.Context, task *models.Task) error
	UpdateTask(ctx context.Context, id string, patch TaskPatch) (*models.Task, error)
	MoveTask(ctx context.Context, id string, req models.TaskMoveRequest) ([]models.BoardColumn, error)
	DeleteTask(ctx context.Context, id string) error
}

// TaskPatch carries the editable card fields. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string    `json:"title" binding:"omitempty,notblank"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=low medium high"`
	Assignee    *string    `json:"assignee"`
	DueAt       *time.Time `json:"dueAt"`
}

type DefaultBoardService struct {
	Repo      repository.TaskRepository
	Reminders tasks.ReminderScheduler
	LeadTime  time.Duration
	Logger    *zap.Logger
	Now       func() time.Time
}

func NewDefaultBoardService(repo repository.TaskRepository, reminders tasks.ReminderScheduler, leadTime time.Duration, logger *zap.Logger) *DefaultBoardService {
	if reminders == nil {
		reminders = tasks.NoopScheduler{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBoardService{Repo: repo, Reminders: reminders, LeadTime: leadTime, Logger: logger, Now: time.Now}
}

func (s *DefaultBoardService) GetBoard(ctx context.Context) ([]models.BoardColumn, error) {
	all, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return Build(all), nil
}

// CreateTask appends the task to the bottom of its column, todo by default.
func (s *DefaultBoardService) CreateTask(ctx context.Context, task *models.Task) error {
	if task.Column == "" {
		task.Column = models.ColumnTodo
	}
	if !models.IsColumn(task.Column) {
		return ErrInvalidColumn
	}
	if task.Priority == "" {
		task.Priority = "medium"
	}
	all, err := s.Repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	task.ID = ""
	task.Position = NextPosition(all, task.Column)
	if err := s.Repo.Create(ctx, task); err != nil {
		return err
	}
	s.scheduleDueReminder(ctx, *task)
	return nil
}

func (s *DefaultBoardService) UpdateTask(ctx context.Context, id string, patch TaskPatch) (*models.Task, error) {
	task, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Assignee != nil {
		task.Assignee = *patch.Assignee
	}
	dueChanged := patch.DueAt != nil && (task.DueAt == nil || !task.DueAt.Equal(*patch.DueAt))
	if patch.DueAt != nil {
		task.DueAt = patch.DueAt
	}
	if err := s.Repo.Update(ctx, task); err != nil {
		return nil, err
	}
	if dueChanged {
		s.scheduleDueReminder(ctx, *task)
	}
	return task, nil
}

func (s *DefaultBoardService) MoveTask(ctx context.Context, id string, req models.TaskMoveRequest) ([]models.BoardColumn, error) {
	all, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	moved, changed, err := Move(all, id, req.Column, req.Index)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.SavePositions(ctx, changed); err != nil {
		return nil, err
	}
	s.Logger.Debug("task moved",
		zap.String("taskId", id),
		zap.String("column", req.Column),
		zap.Int("index", req.Index),
		zap.Int("repositioned", len(changed)),
	)
	return Build(moved), nil
}

// DeleteTask removes the card and closes the gap it leaves in its column.
func (s *DefaultBoardService) DeleteTask(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	all, err := s.Repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	var changed []models.Task
	for _, col := range Build(all) {
		for i, t := range col.Tasks {
			if t.Position != i {
				t.Position = i
				changed = append(changed, t)
			}
		}
	}
	return s.Repo.SavePositions(ctx, changed)
}

func (s *DefaultBoardService) scheduleDueReminder(ctx context.Context, task models.Task) {
	if task.DueAt == nil {
		return
	}
	fireAt := task.DueAt.Add(-s.LeadTime)
	if !fireAt.After(s.Now()) {
		return
	}
	payload := models.ReminderPayload{
		ID:     task.ID,
		Target: models.ReminderTask,
		Title:  task.Title,
		Body:   fmt.Sprintf("Task %q is due at %s", task.Title, task.DueAt.UTC().Format(time.RFC1123)),
	}
	if err := s.Reminders.Schedule(ctx, payload, fireAt); err != nil {
		s.Logger.Warn("failed to schedule task reminder", zap.String("taskId", task.ID), zap.Error(err))
	}
}
