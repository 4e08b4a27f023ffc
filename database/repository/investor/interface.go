package investorRepo

import (
	"context"

	"raisedesk/models"
)

// InvestorRepository defines methods for investor data access.
type InvestorRepository interface {
	// GetByID retrieves an investor by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Investor, error)
	// GetAll retrieves all investors in creation order.
	GetAll(ctx context.Context) ([]models.Investor, error)
	// Create inserts a new investor, assigning an ID and timestamps.
	Create(ctx context.Context, investor *models.Investor) error
	// Update replaces an existing investor record.
	Update(ctx context.Context, investor *models.Investor) error
	// Delete removes an investor record by its ID.
	Delete(ctx context.Context, id string) error
	// ReplaceAll swaps the whole collection for investors.
	ReplaceAll(ctx context.Context, investors []models.Investor) error
}
