package clientRepo

import (
	"context"

	"raisedesk/models"
)

// ClientRepository defines methods for client data access.
type ClientRepository interface {
	// GetByID retrieves an client by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Client, error)
	// GetAll retrieves all clients in creation order.
	GetAll(ctx context.Context) ([]models.Client, error)
	// Create inserts a new client, assigning an ID and timestamps.
	Create(ctx context.Context, client *models.Client) error
	// Update replaces an existing client record.
	Update(ctx context.Context, client *models.Client) error
	// Delete removes an client record by its ID.
	Delete(ctx context.Context, id string) error
	// ReplaceAll swaps the whole collection for clients.
	ReplaceAll(ctx context.Context, clients []models.Client) error
}
