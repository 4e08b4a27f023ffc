package onboarding

import (
	"context"
	"fmt"
	"time"

	"raisedesk/database/repository"
	"raisedesk/models"

	"go.uber.org/zap"
)

type OnboardingService interface {
	Steps(kind string) ([]models.OnboardingStep, error)
	Start(ctx context.Context, kind string) (*models.OnboardingView, error)
	Get(ctx context.Context, id string) (*models.OnboardingView, error)
	SetFields(ctx context.Context, id string, fields map[string]string) (*models.OnboardingView, error)
	Next(ctx context.Context, id string) (*models.OnboardingView, error)
	Prev(ctx context.Context, id string) (*models.OnboardingView, error)
	Submit(ctx context.Context, id string) (*models.OnboardingView, error)
	Promote(ctx context.Context, id string) (*models.OnboardingView, error)
}

// InvestorCreator and ClientCreator are the parts of the CRM services promotion needs.
type InvestorCreator interface {
	CreateInvestor(ctx context.Context, inv *models.Investor) error
}

type ClientCreator interface {
	CreateClient(ctx context.Context, c *models.Client) error
}

type DefaultOnboardingService struct {
	Repo      repository.SubmissionRepository
	Investors InvestorCreator
	Clients   ClientCreator
	Logger    *zap.Logger
	Now       func() time.Time
}

func NewDefaultOnboardingService(repo repository.SubmissionRepository, investors InvestorCreator, clients ClientCreator, logger *zap.Logger) (*DefaultOnboardingService, error) {
	if repo == nil || investors == nil || clients == nil {
		return nil, fmt.Errorf("onboarding service initialization error: one or more dependencies are nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultOnboardingService{Repo: repo, Investors: investors, Clients: clients, Logger: logger, Now: time.Now}, nil
}

func (s *DefaultOnboardingService) Steps(kind string) ([]models.OnboardingStep, error) {
	return Steps(kind)
}

func (s *DefaultOnboardingService) Start(ctx context.Context, kind string) (*models.OnboardingView, error) {
	if _, err := Steps(kind); err != nil {
		return nil, err
	}
	sub := &models.OnboardingSubmission{
		Kind:   kind,
		Data:   map[string]string{},
		Status: models.SubmissionDraft,
	}
	if err := s.Repo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to start onboarding: %w", err)
	}
	s.Logger.Info("onboarding started", zap.String("submissionId", sub.ID), zap.String("kind", kind))
	return view(sub)
}

func (s *DefaultOnboardingService) Get(ctx context.Context, id string) (*models.OnboardingView, error) {
	sub, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return view(sub)
}

func (s *DefaultOnboardingService) SetFields(ctx context.Context, id string, fields map[string]string) (*models.OnboardingView, error) {
	return s.mutate(ctx, id, func(sub *models.OnboardingSubmission, f *Flow) error {
		if sub.Status != models.SubmissionDraft {
			return ErrAlreadySubmitted
		}
		for name, value := range fields {
			if err := f.Set(name, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *DefaultOnboardingService) Next(ctx context.Context, id string) (*models.OnboardingView, error) {
	return s.mutate(ctx, id, func(_ *models.OnboardingSubmission, f *Flow) error {
		f.Next()
		return nil
	})
}

func (s *DefaultOnboardingService) Prev(ctx context.Context, id string) (*models.OnboardingView, error) {
	return s.mutate(ctx, id, func(_ *models.OnboardingSubmission, f *Flow) error {
		f.Prev()
		return nil
	})
}

// Submit freezes a draft once every required field across all steps is filled.
func (s *DefaultOnboardingService) Submit(ctx context.Context, id string) (*models.OnboardingView, error) {
	return s.mutate(ctx, id, func(sub *models.OnboardingSubmission, f *Flow) error {
		if sub.Status != models.SubmissionDraft {
			return ErrAlreadySubmitted
		}
		if missing := f.Missing(); len(missing) > 0 {
			return &MissingFieldsError{Fields: missing}
		}
		now := s.Now().UTC()
		sub.Status = models.SubmissionSubmitted
		sub.SubmittedAt = &now
		return nil
	})
}

// mutate loads a submission, applies fn through its flow and persists the result.
// Nothing is written when fn fails.
func (s *DefaultOnboardingService) mutate(ctx context.Context, id string, fn func(*models.OnboardingSubmission, *Flow) error) (*models.OnboardingView, error) {
	sub, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	f, err := NewFlow(sub.Kind, sub.Step, sub.Data)
	if err != nil {
		return nil, err
	}
	if err := fn(sub, f); err != nil {
		return nil, err
	}
	sub.Step = f.Index()
	sub.Data = f.Data()
	if err := s.Repo.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to save submission %s: %w", id, err)
	}
	return view(sub)
}

func view(sub *models.OnboardingSubmission) (*models.OnboardingView, error) {
	f, err := NewFlow(sub.Kind, sub.Step, sub.Data)
	if err != nil {
		return nil, err
	}
	return &models.OnboardingView{
		Submission: *sub,
		Current:    f.Current(),
		TotalSteps: f.Len(),
		CanNext:    f.CanNext(),
		CanPrev:    f.CanPrev(),
		Progress:   f.Progress(),
		Missing:    f.Missing(),
	}, nil
}
