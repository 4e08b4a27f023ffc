package onboarding

import (
	"context"
	"errors"
	"sync"
	"testing"

	"raisedesk/database"
	clientRepo "raisedesk/database/repository/client"
	investorRepo "raisedesk/database/repository/investor"
	onboardingRepo "raisedesk/database/repository/onboarding"
	"raisedesk/models"
	clientService "raisedesk/services/client"
	investorService "raisedesk/services/investor"
	"raisedesk/services/matching"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type harness struct {
	svc       *DefaultOnboardingService
	repo      *onboardingRepo.MemorySubmissionRepo
	investors *investorRepo.MemoryInvestorRepo
	clients   *clientRepo.MemoryClientRepo
}

func newHarness(t *testing.T) harness {
	t.Helper()
	investors := investorRepo.NewMemoryInvestorRepo()
	clients := clientRepo.NewMemoryClientRepo()
	m := matching.NewDefaultMatchingService(investors, clients, nil, nil)

	invSvc, err := investorService.NewDefaultInvestorService(investors, m)
	require.NoError(t, err)
	cliSvc, err := clientService.NewDefaultClientService(clients, m)
	require.NoError(t, err)

	repo := onboardingRepo.NewMemorySubmissionRepo()
	svc, err := NewDefaultOnboardingService(repo, invSvc, cliSvc, zaptest.NewLogger(t))
	require.NoError(t, err)
	return harness{svc: svc, repo: repo, investors: investors, clients: clients}
}

func TestStartRejectsUnknownKind(t *testing.T) {
	h := newHarness(t)
	_, err := h.svc.Start(context.Background(), "family-office")
	require.ErrorIs(t, err, ErrInvalidKind)
}

func TestNavigationPersists(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	v, err := h.svc.Start(ctx, models.OnboardingStartup)
	require.NoError(t, err)
	require.Equal(t, 35, v.TotalSteps)
	require.False(t, v.CanPrev)
	require.Equal(t, "companyName", v.Current.ID)

	v, err = h.svc.Prev(ctx, v.Submission.ID)
	require.NoError(t, err)
	require.Equal(t, 0, v.Submission.Step)

	_, err = h.svc.Next(ctx, v.Submission.ID)
	require.NoError(t, err)
	v, err = h.svc.Next(ctx, v.Submission.ID)
	require.NoError(t, err)
	require.Equal(t, 2, v.Submission.Step)

	v, err = h.svc.Get(ctx, v.Submission.ID)
	require.NoError(t, err)
	require.Equal(t, "founderName", v.Current.ID)
	require.True(t, v.CanPrev)

	_, err = h.svc.Get(ctx, "missing")
	require.ErrorIs(t, err, database.ErrNotFound)
}

func TestSubmitAndPromoteStartup(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	v, err := h.svc.Start(ctx, models.OnboardingStartup)
	require.NoError(t, err)
	id := v.Submission.ID

	_, err = h.svc.SetFields(ctx, id, map[string]string{"companyName": "Nova Labs", "shoeSize": "9"})
	require.ErrorIs(t, err, ErrUnknownField)

	// A rejected patch must not have been persisted.
	v, err = h.svc.Get(ctx, id)
	require.NoError(t, err)
	require.Empty(t, v.Submission.Data)

	_, err = h.svc.SetFields(ctx, id, map[string]string{"companyName": "Nova Labs", "founderName": "Lena Ortiz"})
	require.NoError(t, err)

	_, err = h.svc.Submit(ctx, id)
	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, []string{"founderEmail", "sector", "stage", "geography", "pitch", "raiseAmount"}, missing.Fields)

	_, err = h.svc.Promote(ctx, id)
	require.ErrorIs(t, err, ErrNotSubmitted)

	_, err = h.svc.SetFields(ctx, id, map[string]string{
		"founderEmail": "lena@novalabs.io",
		"sector":       "AI/ML",
		"stage":        "Series A",
		"geography":    "North America",
		"pitch":        "Copilots for clinical trials",
		"raiseAmount":  "$3M",
	})
	require.NoError(t, err)

	v, err = h.svc.Submit(ctx, id)
	require.NoError(t, err)
	require.Equal(t, models.SubmissionSubmitted, v.Submission.Status)
	require.NotNil(t, v.Submission.SubmittedAt)
	require.Empty(t, v.Missing)

	_, err = h.svc.Submit(ctx, id)
	require.ErrorIs(t, err, ErrAlreadySubmitted)
	_, err = h.svc.SetFields(ctx, id, map[string]string{"notes": "late"})
	require.ErrorIs(t, err, ErrAlreadySubmitted)

	v, err = h.svc.Promote(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, v.Submission.PromotedID)

	c, err := h.clients.GetByID(ctx, *v.Submission.PromotedID)
	require.NoError(t, err)
	require.Equal(t, "Nova Labs", c.Company)
	require.Equal(t, int64(3_000_000), c.FundingNeeded)
	require.Equal(t, models.ClientStatusRaising, c.Status)

	_, err = h.svc.Promote(ctx, id)
	require.ErrorIs(t, err, ErrAlreadyPromoted)
}

func TestPromoteFund(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	v, err := h.svc.Start(ctx, models.OnboardingFund)
	require.NoError(t, err)
	require.Equal(t, 26, v.TotalSteps)
	id := v.Submission.ID

	_, err = h.svc.SetFields(ctx, id, map[string]string{
		"fundName":          "Apex Growth II",
		"contactName":       "Sarah Johnson",
		"contactEmail":      "sarah@apex.vc",
		"contactPhone":      "+1 415 555 0100",
		"targetSectors":     "Fintech, AI/ML",
		"targetStages":      "Seed,Series A",
		"targetGeographies": "North America",
		"checkSizeMin":      "500k",
		"checkSizeMax":      "5,000,000",
	})
	require.NoError(t, err)
	_, err = h.svc.Submit(ctx, id)
	require.NoError(t, err)

	v, err = h.svc.Promote(ctx, id)
	require.NoError(t, err)

	inv, err := h.investors.GetByID(ctx, *v.Submission.PromotedID)
	require.NoError(t, err)
	require.Equal(t, "Apex Growth II", inv.Company)
	require.Equal(t, models.InvestmentSize{Min: 500_000, Max: 5_000_000}, inv.InvestmentSize)
	require.Equal(t, []string{"Fintech", "AI/ML"}, inv.PreferredSectors)
	require.Equal(t, []string{"Seed", "Series A"}, inv.PreferredStages)
	require.Equal(t, models.InvestorStatusProspect, inv.Status)
	require.NotNil(t, inv.Phone)
}

func TestPromoteFundRejectsInvertedRange(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	v, err := h.svc.Start(ctx, models.OnboardingFund)
	require.NoError(t, err)
	id := v.Submission.ID
	_, err = h.svc.SetFields(ctx, id, map[string]string{
		"fundName": "Backwards Capital", "contactName": "Ann", "contactEmail": "ann@b.vc",
		"targetSectors": "Fintech", "targetStages": "Seed", "targetGeographies": "Europe",
		"checkSizeMin": "5M", "checkSizeMax": "1M",
	})
	require.NoError(t, err)
	_, err = h.svc.Submit(ctx, id)
	require.NoError(t, err)

	_, err = h.svc.Promote(ctx, id)
	var verr investorService.ValidationError
	require.ErrorAs(t, err, &verr)

	v, err = h.svc.Get(ctx, id)
	require.NoError(t, err)
	require.Nil(t, v.Submission.PromotedID)
}

// frozenRepo serves the snapshot taken by freeze, as if every caller had read
// the submission before any of them wrote it back.
type frozenRepo struct {
	*onboardingRepo.MemorySubmissionRepo
	snapshot *models.OnboardingSubmission
}

func (r *frozenRepo) freeze(t *testing.T, id string) {
	t.Helper()
	sub, err := r.MemorySubmissionRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	r.snapshot = sub
}

func (r *frozenRepo) GetByID(_ context.Context, _ string) (*models.OnboardingSubmission, error) {
	cp := *r.snapshot
	cp.Data = make(map[string]string, len(r.snapshot.Data))
	for k, v := range r.snapshot.Data {
		cp.Data[k] = v
	}
	return &cp, nil
}

func submittedStartup(t *testing.T, h harness) string {
	t.Helper()
	ctx := context.Background()
	v, err := h.svc.Start(ctx, models.OnboardingStartup)
	require.NoError(t, err)
	id := v.Submission.ID
	_, err = h.svc.SetFields(ctx, id, map[string]string{
		"companyName":  "Nova Labs",
		"founderName":  "Lena Ortiz",
		"founderEmail": "lena@novalabs.io",
		"sector":       "AI/ML",
		"stage":        "Series A",
		"geography":    "North America",
		"pitch":        "Copilots for clinical trials",
		"raiseAmount":  "$3M",
	})
	require.NoError(t, err)
	_, err = h.svc.Submit(ctx, id)
	require.NoError(t, err)
	return id
}

func TestPromoteFromStaleReadCreatesOneRecord(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	id := submittedStartup(t, h)

	frozen := &frozenRepo{MemorySubmissionRepo: h.repo}
	frozen.freeze(t, id)
	h.svc.Repo = frozen

	v, err := h.svc.Promote(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, v.Submission.PromotedID)

	// Same snapshot again: PromotedID still looks empty, but the version moved on.
	_, err = h.svc.Promote(ctx, id)
	require.ErrorIs(t, err, database.ErrConflict)

	clients, err := h.clients.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	require.Equal(t, *v.Submission.PromotedID, clients[0].ID)

	stored, err := h.repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, v.Submission.PromotedID, stored.PromotedID)
}

func TestSetFieldsFromStaleReadConflicts(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	v, err := h.svc.Start(ctx, models.OnboardingStartup)
	require.NoError(t, err)
	id := v.Submission.ID

	frozen := &frozenRepo{MemorySubmissionRepo: h.repo}
	frozen.freeze(t, id)
	h.svc.Repo = frozen

	_, err = h.svc.SetFields(ctx, id, map[string]string{"companyName": "First"})
	require.NoError(t, err)
	_, err = h.svc.SetFields(ctx, id, map[string]string{"companyName": "Second"})
	require.ErrorIs(t, err, database.ErrConflict)

	stored, err := h.repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "First", stored.Data["companyName"])
}

func TestConcurrentPromotesCreateOneRecord(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	id := submittedStartup(t, h)

	const callers = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.svc.Promote(ctx, id)
			if err != nil && !errors.Is(err, database.ErrConflict) && !errors.Is(err, ErrAlreadyPromoted) {
				t.Errorf("unexpected promote error: %v", err)
				return
			}
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, wins)
	clients, err := h.clients.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
}

func TestPromoteReleasesClaimWhenCreateFails(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	id := submittedStartup(t, h)

	h.svc.Clients = failingClients{}
	_, err := h.svc.Promote(ctx, id)
	require.ErrorContains(t, err, "store offline")

	stored, err := h.repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Nil(t, stored.PromotedID)
}

type failingClients struct{}

func (failingClients) CreateClient(context.Context, *models.Client) error {
	return errors.New("store offline")
}
