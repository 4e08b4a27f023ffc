package matching

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"raisedesk/database"
	clientRepo "raisedesk/database/repository/client"
	investorRepo "raisedesk/database/repository/investor"
	"raisedesk/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeCache struct {
	gen         int64
	entries     map[string][]models.Client
	getErr      error
	genErr      error
	sets        int
	invalidated int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]models.Client{}}
}

func fakeKey(gen int64, id string) string {
	return fmt.Sprintf("%d:%s", gen, id)
}

func (f *fakeCache) Generation(context.Context) (int64, error) {
	return f.gen, f.genErr
}

func (f *fakeCache) Get(_ context.Context, gen int64, id string) ([]models.Client, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	c, ok := f.entries[fakeKey(gen, id)]
	return c, ok, nil
}

func (f *fakeCache) Set(_ context.Context, gen int64, id string, clients []models.Client) error {
	f.sets++
	f.entries[fakeKey(gen, id)] = clients
	return nil
}

func (f *fakeCache) Invalidate(context.Context) error {
	f.invalidated++
	f.gen++
	f.entries = map[string][]models.Client{}
	return nil
}

// pausingClients blocks the first GetAll until release is closed.
type pausingClients struct {
	*clientRepo.MemoryClientRepo
	once    sync.Once
	reached chan struct{}
	release chan struct{}
}

func (p *pausingClients) GetAll(ctx context.Context) ([]models.Client, error) {
	all, err := p.MemoryClientRepo.GetAll(ctx)
	p.once.Do(func() {
		close(p.reached)
		<-p.release
	})
	return all, err
}

func seededService(t *testing.T, cache MatchCache) *DefaultMatchingService {
	t.Helper()
	ctx := context.Background()

	investors := investorRepo.NewMemoryInvestorRepo()
	clients := clientRepo.NewMemoryClientRepo()
	require.NoError(t, investors.ReplaceAll(ctx, []models.Investor{aiInvestor()}))

	funded := aiClient("c2")
	funded.Status = models.ClientStatusFunded
	require.NoError(t, clients.ReplaceAll(ctx, []models.Client{aiClient("c1"), funded, aiClient("c3")}))

	return NewDefaultMatchingService(investors, clients, cache, zaptest.NewLogger(t))
}

func TestServiceFindMatches(t *testing.T) {
	cache := newFakeCache()
	svc := seededService(t, cache)

	got, err := svc.FindMatches(context.Background(), "inv-1")
	require.NoError(t, err)
	require.Equal(t, []string{"c1", "c3"}, ids(got))
	require.Equal(t, 1, cache.sets)

	// Second call is served from the cache.
	got, err = svc.FindMatches(context.Background(), "inv-1")
	require.NoError(t, err)
	require.Equal(t, []string{"c1", "c3"}, ids(got))
	require.Equal(t, 1, cache.sets)

	svc.Invalidate(context.Background())
	require.Equal(t, 1, cache.invalidated)
	require.Empty(t, cache.entries)
}

func TestServiceCacheErrorFallsThrough(t *testing.T) {
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	svc := seededService(t, cache)

	got, err := svc.FindMatches(context.Background(), "inv-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestServiceUnknownInvestor(t *testing.T) {
	svc := seededService(t, nil)

	_, err := svc.FindMatches(context.Background(), "nope")
	require.ErrorIs(t, err, database.ErrNotFound)
}

func TestServiceGenerationErrorSkipsCache(t *testing.T) {
	cache := newFakeCache()
	cache.genErr = errors.New("redis down")
	svc := seededService(t, cache)

	got, err := svc.FindMatches(context.Background(), "inv-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Zero(t, cache.sets)
}

func TestServiceInvalidateDuringComputeDiscardsStaleResult(t *testing.T) {
	ctx := context.Background()
	cache := newFakeCache()

	investors := investorRepo.NewMemoryInvestorRepo()
	require.NoError(t, investors.ReplaceAll(ctx, []models.Investor{aiInvestor()}))
	mem := clientRepo.NewMemoryClientRepo()
	require.NoError(t, mem.ReplaceAll(ctx, []models.Client{aiClient("c1")}))
	clients := &pausingClients{MemoryClientRepo: mem, reached: make(chan struct{}), release: make(chan struct{})}

	svc := NewDefaultMatchingService(investors, clients, cache, zaptest.NewLogger(t))

	type result struct {
		got []models.Client
		err error
	}
	done := make(chan result, 1)
	go func() {
		got, err := svc.FindMatches(ctx, "inv-1")
		done <- result{got, err}
	}()

	// The client is funded and the cache invalidated while the first
	// computation still holds the old snapshot.
	<-clients.reached
	funded := aiClient("c1")
	funded.Status = models.ClientStatusFunded
	require.NoError(t, mem.Update(ctx, &funded))
	svc.Invalidate(ctx)
	close(clients.release)

	first := <-done
	require.NoError(t, first.err)
	require.Equal(t, []string{"c1"}, ids(first.got))

	got, err := svc.FindMatches(ctx, "inv-1")
	require.NoError(t, err)
	require.Empty(t, got)
}
