package investor

import (
	"context"
	"fmt"

	"raisedesk/database/repository"
	"raisedesk/models"
	"raisedesk/services/matching"
)

type InvestorService interface {
	ListInvestors(ctx context.Context, q models.InvestorQuery) ([]models.Investor, error)
	GetInvestor(ctx context.Context, id string) (*models.Investor, error)
	CreateInvestor(ctx context.Context, inv *models.Investor) error
	UpdateInvestor(ctx context.Context, id string, inv *models.Investor) error
	DeleteInvestor(ctx context.Context, id string) error
	FindMatches(ctx context.Context, id string) ([]models.Client, error)
}

// DefaultInvestorService is the production implementation.
type DefaultInvestorService struct {
	Repo     repository.InvestorRepository
	Matching matching.MatchingService
}

func NewDefaultInvestorService(repo repository.InvestorRepository, m matching.MatchingService) (*DefaultInvestorService, error) {
	if repo == nil || m == nil {
		return nil, fmt.Errorf("investor service initialization error: one or more dependencies are nil")
	}
	return &DefaultInvestorService{Repo: repo, Matching: m}, nil
}
