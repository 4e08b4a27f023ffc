package onboarding

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"raisedesk/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Promote creates the CRM record described by a submitted questionnaire:
// a raising client for startups, a prospect investor for funds.
//
// The record id is claimed on the submission first, through the repository's
// version check, so two concurrent promotes cannot both create a record. The
// claim is released if the record cannot be created.
func (s *DefaultOnboardingService) Promote(ctx context.Context, id string) (*models.OnboardingView, error) {
	sub, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.Status != models.SubmissionSubmitted {
		return nil, ErrNotSubmitted
	}
	if sub.PromotedID != nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyPromoted, *sub.PromotedID)
	}

	var create func() error
	recordID := uuid.New().String()
	switch sub.Kind {
	case models.OnboardingStartup:
		c, err := clientFromSubmission(sub.Data)
		if err != nil {
			return nil, err
		}
		c.ID = recordID
		create = func() error { return s.Clients.CreateClient(ctx, c) }
	case models.OnboardingFund:
		inv, err := investorFromSubmission(sub.Data)
		if err != nil {
			return nil, err
		}
		inv.ID = recordID
		create = func() error { return s.Investors.CreateInvestor(ctx, inv) }
	default:
		return nil, ErrInvalidKind
	}

	sub.PromotedID = &recordID
	if err := s.Repo.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to claim submission %s: %w", id, err)
	}
	if err := create(); err != nil {
		sub.PromotedID = nil
		if rerr := s.Repo.Update(ctx, sub); rerr != nil {
			s.Logger.Error("failed to release promotion claim",
				zap.String("submissionId", id), zap.String("recordId", recordID), zap.Error(rerr))
		}
		return nil, fmt.Errorf("failed to promote submission %s: %w", id, err)
	}
	s.Logger.Info("onboarding promoted",
		zap.String("submissionId", sub.ID),
		zap.String("kind", sub.Kind),
		zap.String("recordId", recordID))
	return view(sub)
}

func clientFromSubmission(data map[string]string) (*models.Client, error) {
	amount, err := ParseAmount(data["raiseAmount"])
	if err != nil {
		return nil, fmt.Errorf("raiseAmount: %w", err)
	}
	return &models.Client{
		Name:          strings.TrimSpace(data["founderName"]),
		Company:       strings.TrimSpace(data["companyName"]),
		Email:         strings.TrimSpace(data["founderEmail"]),
		Sector:        strings.TrimSpace(data["sector"]),
		Stage:         strings.TrimSpace(data["stage"]),
		Geography:     strings.TrimSpace(data["geography"]),
		FundingNeeded: amount,
		Description:   strings.TrimSpace(data["pitch"]),
		Status:        models.ClientStatusRaising,
	}, nil
}

func investorFromSubmission(data map[string]string) (*models.Investor, error) {
	minCheck, err := ParseAmount(data["checkSizeMin"])
	if err != nil {
		return nil, fmt.Errorf("checkSizeMin: %w", err)
	}
	maxCheck, err := ParseAmount(data["checkSizeMax"])
	if err != nil {
		return nil, fmt.Errorf("checkSizeMax: %w", err)
	}
	inv := &models.Investor{
		Name:                 strings.TrimSpace(data["contactName"]),
		Email:                strings.TrimSpace(data["contactEmail"]),
		Company:              strings.TrimSpace(data["fundName"]),
		InvestmentSize:       models.InvestmentSize{Min: minCheck, Max: maxCheck},
		PreferredSectors:     SplitList(data["targetSectors"]),
		PreferredStages:      SplitList(data["targetStages"]),
		PreferredGeographies: SplitList(data["targetGeographies"]),
		Status:               models.InvestorStatusProspect,
		Tags:                 []string{"onboarding"},
	}
	if phone := strings.TrimSpace(data["contactPhone"]); phone != "" {
		inv.Phone = &phone
	}
	if notes := strings.TrimSpace(data["notes"]); notes != "" {
		inv.Notes = &notes
	}
	return inv, nil
}

// SplitList turns "Fintech, AI/ML" into its trimmed, non-empty items.
func SplitList(raw string) []string {
	items := []string{}
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// ParseAmount reads amounts such as "2,500,000", "$750k" or "1.5M" as whole units.
func ParseAmount(raw string) (int64, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "_", "")

	mult := 1.0
	switch {
	case strings.HasSuffix(s, "k"):
		mult, s = 1e3, strings.TrimSuffix(s, "k")
	case strings.HasSuffix(s, "m"):
		mult, s = 1e6, strings.TrimSuffix(s, "m")
	case strings.HasSuffix(s, "b"):
		mult, s = 1e9, strings.TrimSuffix(s, "b")
	}
	s = strings.TrimSpace(s)
	// Plain decimal only: ParseFloat would also take hex, exponents, inf and nan.
	if s == "" || strings.TrimLeft(s, "0123456789.") != "" {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}
	total := v * mult
	if total >= math.MaxInt64 {
		return 0, fmt.Errorf("amount %q is out of range", raw)
	}
	return int64(total), nil
}
