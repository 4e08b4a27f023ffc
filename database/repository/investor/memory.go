package investorRepo

import (
	"context"
	"fmt"
	"time"

	"raisedesk/database"
	"raisedesk/models"

	"github.com/google/uuid"
)

// MemoryInvestorRepo keeps investors in process memory.
type MemoryInvestorRepo struct {
	table *database.MemoryTable[models.Investor]
}

func NewMemoryInvestorRepo() *MemoryInvestorRepo {
	return &MemoryInvestorRepo{
		table: database.NewMemoryTable(func(i models.Investor) string { return i.ID }),
	}
}

func (r *MemoryInvestorRepo) GetByID(_ context.Context, id string) (*models.Investor, error) {
	inv, ok := r.table.Get(id)
	if !ok {
		return nil, fmt.Errorf("investor %s: %w", id, database.ErrNotFound)
	}
	return &inv, nil
}

func (r *MemoryInvestorRepo) GetAll(_ context.Context) ([]models.Investor, error) {
	return r.table.All(), nil
}

func (r *MemoryInvestorRepo) Create(_ context.Context, investor *models.Investor) error {
	if investor.ID == "" {
		investor.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	investor.CreatedAt = now
	investor.UpdatedAt = now
	if !r.table.Insert(*investor) {
		return fmt.Errorf("investor with id %s already exists", investor.ID)
	}
	return nil
}

func (r *MemoryInvestorRepo) Update(_ context.Context, investor *models.Investor) error {
	investor.UpdatedAt = time.Now().UTC()
	if !r.table.Update(*investor) {
		return fmt.Errorf("investor %s: %w", investor.ID, database.ErrNotFound)
	}
	return nil
}

func (r *MemoryInvestorRepo) Delete(_ context.Context, id string) error {
	if !r.table.Delete(id) {
		return fmt.Errorf("investor %s: %w", id, database.ErrNotFound)
	}
	return nil
}

func (r *MemoryInvestorRepo) ReplaceAll(_ context.Context, investors []models.Investor) error {
	r.table.Replace(investors)
	return nil
}
