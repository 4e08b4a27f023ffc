package onboardingRepo

import (
	"context"
	"fmt"
	"maps"
	"time"

	"raisedesk/database"
	"raisedesk/models"

	"github.com/google/uuid"
)

type MemorySubmissionRepo struct {
	table *database.MemoryTable[models.OnboardingSubmission]
}

func NewMemorySubmissionRepo() *MemorySubmissionRepo {
	return &MemorySubmissionRepo{
		table: database.NewMemoryTable(func(s models.OnboardingSubmission) string { return s.ID }),
	}
}

// clone detaches the data map so callers cannot mutate stored state.
func clone(s models.OnboardingSubmission) models.OnboardingSubmission {
	s.Data = maps.Clone(s.Data)
	return s
}

func (r *MemorySubmissionRepo) GetByID(_ context.Context, id string) (*models.OnboardingSubmission, error) {
	s, ok := r.table.Get(id)
	if !ok {
		return nil, fmt.Errorf("submission %s: %w", id, database.ErrNotFound)
	}
	s = clone(s)
	return &s, nil
}

func (r *MemorySubmissionRepo) GetAll(_ context.Context, kind string) ([]models.OnboardingSubmission, error) {
	all := r.table.All()
	subs := make([]models.OnboardingSubmission, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if kind == "" || all[i].Kind == kind {
			subs = append(subs, clone(all[i]))
		}
	}
	return subs, nil
}

func (r *MemorySubmissionRepo) Create(_ context.Context, submission *models.OnboardingSubmission) error {
	if submission.ID == "" {
		submission.ID = uuid.New().String()
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	submission.CreatedAt = now
	submission.UpdatedAt = now
	if !r.table.Insert(clone(*submission)) {
		return fmt.Errorf("submission with id %s already exists", submission.ID)
	}
	return nil
}

// Update writes submission back only if the stored copy still carries the
// UpdatedAt it was read with, then advances UpdatedAt.
func (r *MemorySubmissionRepo) Update(_ context.Context, submission *models.OnboardingSubmission) error {
	prev := submission.UpdatedAt
	row := clone(*submission)
	row.UpdatedAt = database.NextVersion(prev, time.Now())
	found, applied := r.table.UpdateIf(row, func(cur models.OnboardingSubmission) bool {
		return cur.UpdatedAt.Equal(prev)
	})
	if !found {
		return fmt.Errorf("submission %s: %w", submission.ID, database.ErrNotFound)
	}
	if !applied {
		return fmt.Errorf("submission %s: %w", submission.ID, database.ErrConflict)
	}
	submission.UpdatedAt = row.UpdatedAt
	return nil
}
