package taskRepo

import (
	"context"
	"fmt"
	"time"

	"raisedesk/database"
	"raisedesk/models"

	"github.com/google/uuid"
)

type MemoryTaskRepo struct {
	table *database.MemoryTable[models.Task]
}

func NewMemoryTaskRepo() *MemoryTaskRepo {
	return &MemoryTaskRepo{
		table: database.NewMemoryTable(func(t models.Task) string { return t.ID }),
	}
}

func (r *MemoryTaskRepo) GetByID(_ context.Context, id string) (*models.Task, error) {
	t, ok := r.table.Get(id)
	if !ok {
		return nil, fmt.Errorf("task %s: %w", id, database.ErrNotFound)
	}
	return &t, nil
}

func (r *MemoryTaskRepo) GetAll(_ context.Context) ([]models.Task, error) {
	return r.table.All(), nil
}

func (r *MemoryTaskRepo) Create(_ context.Context, task *models.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now
	if !r.table.Insert(*task) {
		return fmt.Errorf("task with id %s already exists", task.ID)
	}
	return nil
}

func (r *MemoryTaskRepo) Update(_ context.Context, task *models.Task) error {
	task.UpdatedAt = time.Now().UTC()
	if !r.table.Update(*task) {
		return fmt.Errorf("task %s: %w", task.ID, database.ErrNotFound)
	}
	return nil
}

func (r *MemoryTaskRepo) Delete(_ context.Context, id string) error {
	if !r.table.Delete(id) {
		return fmt.Errorf("task %s: %w", id, database.ErrNotFound)
	}
	return nil
}

func (r *MemoryTaskRepo) SavePositions(_ context.Context, tasks []models.Task) error {
	now := time.Now().UTC()
	for _, moved := range tasks {
		stored, ok := r.table.Get(moved.ID)
		if !ok {
			return fmt.Errorf("task %s: %w", moved.ID, database.ErrNotFound)
		}
		stored.Column = moved.Column
		stored.Position = moved.Position
		stored.UpdatedAt = now
		r.table.Update(stored)
	}
	return nil
}
