package onboardingRepo

import (
	"context"

	"raisedesk/models"
)

// SubmissionRepository stores onboarding questionnaires, drafts included.
type SubmissionRepository interface {
	GetByID(ctx context.Context, id string) (*models.OnboardingSubmission, error)
	// GetAll lists submissions; an empty kind lists every kind.
	GetAll(ctx context.Context, kind string) ([]models.OnboardingSubmission, error)
	Create(ctx context.Context, submission *models.OnboardingSubmission) error
	Update(ctx context.Context, submission *models.OnboardingSubmission) error
}
