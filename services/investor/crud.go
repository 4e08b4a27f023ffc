package investor

import (
	"context"
	"fmt"

	"raisedesk/models"
	"raisedesk/services/matching"
)

func (s *DefaultInvestorService) ListInvestors(ctx context.Context, q models.InvestorQuery) ([]models.Investor, error) {
	all, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list investors: %w", err)
	}
	return matching.FilterInvestors(all, q), nil
}

func (s *DefaultInvestorService) GetInvestor(ctx context.Context, id string) (*models.Investor, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultInvestorService) CreateInvestor(ctx context.Context, inv *models.Investor) error {
	if err := Validate(*inv); err != nil {
		return err
	}
	if err := s.Repo.Create(ctx, inv); err != nil {
		return err
	}
	s.Matching.Invalidate(ctx)
	return nil
}

// UpdateInvestor replaces the stored record, keeping its id and creation time.
func (s *DefaultInvestorService) UpdateInvestor(ctx context.Context, id string, inv *models.Investor) error {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := Validate(*inv); err != nil {
		return err
	}
	inv.ID = existing.ID
	inv.CreatedAt = existing.CreatedAt
	if err := s.Repo.Update(ctx, inv); err != nil {
		return err
	}
	s.Matching.Invalidate(ctx)
	return nil
}

func (s *DefaultInvestorService) DeleteInvestor(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.Matching.Invalidate(ctx)
	return nil
}

func (s *DefaultInvestorService) FindMatches(ctx context.Context, id string) ([]models.Client, error) {
	return s.Matching.FindMatches(ctx, id)
}
