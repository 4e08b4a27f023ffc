package client

import (
	"context"
	"fmt"

	"raisedesk/models"
	"raisedesk/services/matching"
)

func (s *DefaultClientService) ListClients(ctx context.Context, q models.ClientQuery) ([]models.Client, error) {
	all, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return matching.FilterClients(all, q), nil
}

func (s *DefaultClientService) GetClient(ctx context.Context, id string) (*models.Client, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultClientService) CreateClient(ctx context.Context, c *models.Client) error {
	if err := Validate(*c); err != nil {
		return err
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return err
	}
	s.Matching.Invalidate(ctx)
	return nil
}

func (s *DefaultClientService) UpdateClient(ctx context.Context, id string, c *models.Client) error {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := Validate(*c); err != nil {
		return err
	}
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	if err := s.Repo.Update(ctx, c); err != nil {
		return err
	}
	s.Matching.Invalidate(ctx)
	return nil
}

func (s *DefaultClientService) DeleteClient(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.Matching.Invalidate(ctx)
	return nil
}
