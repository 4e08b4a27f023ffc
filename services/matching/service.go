package matching

import (
	"context"
	"fmt"

	"raisedesk/database/repository"
	"raisedesk/models"

	"go.uber.org/zap"
)

// MatchingService runs the match engine against stored records.
type MatchingService interface {
	FindMatches(ctx context.Context, investorID string) ([]models.Client, error)
	// Invalidate drops cached results after investors or clients change.
	Invalidate(ctx context.Context)
}

// DefaultMatchingService loads records from the repositories and caches results.
type DefaultMatchingService struct {
	Investors repository.InvestorRepository
	Clients   repository.ClientRepository
	Cache     MatchCache
	Logger    *zap.Logger
}

func NewDefaultMatchingService(investors repository.InvestorRepository, clients repository.ClientRepository, cache MatchCache, logger *zap.Logger) *DefaultMatchingService {
	if cache == nil {
		cache = NoopCache{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultMatchingService{Investors: investors, Clients: clients, Cache: cache, Logger: logger}
}

// FindMatches returns the raising clients that fit the investor's preferences.
// Cache failures are logged and fall through to computation.
func (s *DefaultMatchingService) FindMatches(ctx context.Context, investorID string) ([]models.Client, error) {
	gen, err := s.Cache.Generation(ctx)
	cacheUsable := err == nil
	if err != nil {
		s.Logger.Warn("match cache generation read failed", zap.Error(err))
	}
	if cacheUsable {
		cached, ok, err := s.Cache.Get(ctx, gen, investorID)
		if err != nil {
			s.Logger.Warn("match cache read failed", zap.String("investorId", investorID), zap.Error(err))
		}
		if ok {
			return cached, nil
		}
	}

	investor, err := s.Investors.GetByID(ctx, investorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load investor: %w", err)
	}
	clients, err := s.Clients.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}

	matches := FindMatches(*investor, clients)
	s.Logger.Debug("computed matches",
		zap.String("investorId", investorID),
		zap.Int64("generation", gen),
		zap.Int("clients", len(clients)),
		zap.Int("matches", len(matches)),
	)

	// Stored under the generation read before loading: a write that invalidated
	// meanwhile has moved readers to a newer generation.
	if cacheUsable {
		if err := s.Cache.Set(ctx, gen, investorID, matches); err != nil {
			s.Logger.Warn("match cache write failed", zap.String("investorId", investorID), zap.Error(err))
		}
	}
	return matches, nil
}

func (s *DefaultMatchingService) Invalidate(ctx context.Context) {
	if err := s.Cache.Invalidate(ctx); err != nil {
		s.Logger.Warn("match cache invalidation failed", zap.Error(err))
	}
}
