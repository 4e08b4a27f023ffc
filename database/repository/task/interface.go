package taskRepo

import (
	"context"

	"raisedesk/models"
)

// TaskRepository defines methods for board task data access.
type TaskRepository interface {
	GetByID(ctx context.Context, id string) (*models.Task, error)
	GetAll(ctx context.Context) ([]models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id string) error
	// SavePositions persists only the column and position of each task.
	SavePositions(ctx context.Context, tasks []models.Task) error
}
