package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"raisedesk/database/repository"
	"raisedesk/models"
	clientService "raisedesk/services/client"
	investorService "raisedesk/services/investor"
	"raisedesk/services/matching"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var now = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

func TestLoadEmbeddedDataset(t *testing.T) {
	ds, err := Load(now)
	require.NoError(t, err)
	require.Len(t, ds.Investors, 6)
	require.Len(t, ds.Clients, 8)
	require.NotEmpty(t, ds.Meetings)
	require.NotEmpty(t, ds.Tasks)

	investorIDs := map[string]bool{}
	for _, inv := range ds.Investors {
		require.NoError(t, investorService.Validate(inv), inv.ID)
		investorIDs[inv.ID] = true
	}
	for _, c := range ds.Clients {
		require.NoError(t, clientService.Validate(c), c.ID)
	}
	for _, m := range ds.Meetings {
		require.True(t, investorIDs[m.InvestorID], m.ID)
		require.True(t, m.StartsAt.After(now), m.ID)
	}

	require.Equal(t, "+1 415 555 0142", *ds.Investors[0].Phone)
	require.Nil(t, ds.Investors[0].Notes)
	require.Equal(t, time.Date(2026, 5, 5, 11, 0, 0, 0, time.UTC), ds.Meetings[0].StartsAt)
}

func TestTaskPositionsPerColumn(t *testing.T) {
	ds, err := Load(now)
	require.NoError(t, err)

	next := map[string]int{}
	for _, task := range ds.Tasks {
		require.Equal(t, next[task.Column], task.Position, task.ID)
		next[task.Column]++
	}
}

func TestParseRejectsUnknownColumn(t *testing.T) {
	_, err := Parse([]byte("tasks:\n  - id: t1\n    title: x\n    column: backlog\n"), now)
	require.Error(t, err)

	_, err = Parse([]byte("investors: ["), now)
	require.Error(t, err)
}

func TestApplyFeedsMatching(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	ds, err := Load(now)
	require.NoError(t, err)
	require.NoError(t, Apply(ctx, store, ds, nil, zaptest.NewLogger(t)))

	meetings, err := store.Meetings.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, meetings, len(ds.Meetings))

	svc := matching.NewDefaultMatchingService(store.Investors, store.Clients, nil, nil)
	matches, err := svc.FindMatches(ctx, "inv-001")
	require.NoError(t, err)

	ids := make([]string, 0, len(matches))
	for _, c := range matches {
		ids = append(ids, c.ID)
	}
	require.Equal(t, []string{"cli-001", "cli-007"}, ids)

	// Re-applying replaces investors and clients instead of duplicating them.
	require.NoError(t, Apply(ctx, store, ds, nil, zaptest.NewLogger(t)))
	clients, err := store.Clients.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 8)
	require.Equal(t, models.ClientStatusRaising, clients[0].Status)
}

type countingInvalidator struct {
	calls int
	err   error
}

func (c *countingInvalidator) Invalidate(context.Context) error {
	c.calls++
	return c.err
}

func TestApplyInvalidatesMatchCache(t *testing.T) {
	ctx := context.Background()
	ds, err := Load(now)
	require.NoError(t, err)

	cache := &countingInvalidator{}
	require.NoError(t, Apply(ctx, repository.NewMemoryStore(), ds, cache, zaptest.NewLogger(t)))
	require.Equal(t, 1, cache.calls)

	cache.err = errors.New("redis down")
	err = Apply(ctx, repository.NewMemoryStore(), ds, cache, zaptest.NewLogger(t))
	require.ErrorContains(t, err, "match cache")
}

func TestReseedDropsCachedMatches(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	cache := matching.NewRedisMatchCache(rdb, time.Minute)

	store := repository.NewMemoryStore()
	ds, err := Load(now)
	require.NoError(t, err)
	require.NoError(t, Apply(ctx, store, ds, cache, zaptest.NewLogger(t)))

	svc := matching.NewDefaultMatchingService(store.Investors, store.Clients, cache, zaptest.NewLogger(t))
	matches, err := svc.FindMatches(ctx, "inv-001")
	require.NoError(t, err)
	require.Len(t, matches, 2)

	for i := range ds.Clients {
		if ds.Clients[i].ID == "cli-001" {
			ds.Clients[i].Status = models.ClientStatusFunded
		}
	}
	ds.Meetings, ds.Tasks = nil, nil
	require.NoError(t, Apply(ctx, store, ds, cache, zaptest.NewLogger(t)))

	matches, err = svc.FindMatches(ctx, "inv-001")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "cli-007", matches[0].ID)
}
