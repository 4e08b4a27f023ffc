package client

import (
	"context"
	"fmt"

	"raisedesk/database/repository"
	"raisedesk/models"
	"raisedesk/services/matching"
)

type ClientService interface {
	ListClients(ctx context.Context, q models.ClientQuery) ([]models.Client, error)
	GetClient(ctx context.Context, id string) (*models.Client, error)
	CreateClient(ctx context.Context, c *models.Client) error
	UpdateClient(ctx context.Context, id string, c *models.Client) error
	DeleteClient(ctx context.Context, id string) error
}

type DefaultClientService struct {
	Repo     repository.ClientRepository
	Matching matching.MatchingService
}

func NewDefaultClientService(repo repository.ClientRepository, m matching.MatchingService) (*DefaultClientService, error) {
	if repo == nil || m == nil {
		return nil, fmt.Errorf("client service initialization error: one or more dependencies are nil")
	}
	return &DefaultClientService{Repo: repo, Matching: m}, nil
}
