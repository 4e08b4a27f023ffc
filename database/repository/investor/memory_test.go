package investorRepo

import (
	"context"
	"testing"

	"raisedesk/database"
	"raisedesk/models"

	"github.com/stretchr/testify/require"
)

func TestMemoryInvestorRepoLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryInvestorRepo()

	inv := &models.Investor{Name: "Sarah Johnson", Status: models.InvestorStatusActive}
	require.NoError(t, repo.Create(ctx, inv))
	require.NotEmpty(t, inv.ID)
	require.False(t, inv.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, "Sarah Johnson", got.Name)

	got.Status = models.InvestorStatusInactive
	require.NoError(t, repo.Update(ctx, got))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, models.InvestorStatusInactive, all[0].Status)

	require.NoError(t, repo.Delete(ctx, inv.ID))
	_, err = repo.GetByID(ctx, inv.ID)
	require.ErrorIs(t, err, database.ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, inv.ID), database.ErrNotFound)
}

func TestMemoryInvestorRepoReplaceAll(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryInvestorRepo()
	require.NoError(t, repo.Create(ctx, &models.Investor{ID: "stale"}))

	require.NoError(t, repo.ReplaceAll(ctx, []models.Investor{{ID: "b"}, {ID: "a"}}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a"}, []string{all[0].ID, all[1].ID})
}
