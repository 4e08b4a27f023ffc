package clientRepo

import (
	"context"
	"fmt"
	"time"

	"raisedesk/database"
	"raisedesk/models"

	"github.com/google/uuid"
)

// MemoryClientRepo keeps clients in process memory.
type MemoryClientRepo struct {
	table *database.MemoryTable[models.Client]
}

func NewMemoryClientRepo() *MemoryClientRepo {
	return &MemoryClientRepo{
		table: database.NewMemoryTable(func(c models.Client) string { return c.ID }),
	}
}

func (r *MemoryClientRepo) GetByID(_ context.Context, id string) (*models.Client, error) {
	c, ok := r.table.Get(id)
	if !ok {
		return nil, fmt.Errorf("client %s: %w", id, database.ErrNotFound)
	}
	return &c, nil
}

func (r *MemoryClientRepo) GetAll(_ context.Context) ([]models.Client, error) {
	return r.table.All(), nil
}

func (r *MemoryClientRepo) Create(_ context.Context, client *models.Client) error {
	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now
	if !r.table.Insert(*client) {
		return fmt.Errorf("client with id %s already exists", client.ID)
	}
	return nil
}

func (r *MemoryClientRepo) Update(_ context.Context, client *models.Client) error {
	client.UpdatedAt = time.Now().UTC()
	if !r.table.Update(*client) {
		return fmt.Errorf("client %s: %w", client.ID, database.ErrNotFound)
	}
	return nil
}

func (r *MemoryClientRepo) Delete(_ context.Context, id string) error {
	if !r.table.Delete(id) {
		return fmt.Errorf("client %s: %w", id, database.ErrNotFound)
	}
	return nil
}

func (r *MemoryClientRepo) ReplaceAll(_ context.Context, clients []models.Client) error {
	r.table.Replace(clients)
	return nil
}
