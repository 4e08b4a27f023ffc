package onboarding

import "raisedesk/models"

func field(name, label string, required bool) models.OnboardingField {
	return models.OnboardingField{Name: name, Label: label, Required: required}
}

// ask is a step holding a single field whose id doubles as the step id.
func ask(name, label string, required bool) models.OnboardingStep {
	return models.OnboardingStep{ID: name, Title: label, Fields: []models.OnboardingField{field(name, label, required)}}
}

var fundSteps = []models.OnboardingStep{
	ask("fundName", "Fund name", true),
	ask("legalEntity", "Legal entity", false),
	ask("contactName", "Primary contact", true),
	ask("contactEmail", "Contact email", true),
	ask("contactPhone", "Contact phone", false),
	ask("website", "Website", false),
	ask("headquarters", "Headquarters", false),
	ask("vintageYear", "Vintage year", false),
	ask("targetSize", "Target fund size", false),
	ask("raisedToDate", "Capital raised to date", false),
	ask("minCommitment", "Minimum LP commitment", false),
	ask("strategy", "Investment strategy", false),
	ask("assetClass", "Asset class", false),
	ask("targetSectors", "Target sectors", true),
	ask("targetStages", "Target stages", true),
	ask("targetGeographies", "Target geographies", true),
	{
		ID:    "checkSize",
		Title: "Typical check size",
		Fields: []models.OnboardingField{
			field("checkSizeMin", "Minimum check", true),
			field("checkSizeMax", "Maximum check", true),
		},
	},
	ask("teamBios", "Investment team", false),
	ask("trackRecord", "Track record", false),
	ask("priorFunds", "Prior funds", false),
	ask("lpBase", "LP base", false),
	ask("terms", "Fees and terms", false),
	ask("structure", "Structure and domicile", false),
	ask("regulatoryStatus", "Regulatory status", false),
	ask("deckUrl", "Deck link", false),
	ask("notes", "Anything else", false),
}

var startupSteps = []models.OnboardingStep{
	ask("companyName", "Company name", true),
	ask("legalEntity", "Legal entity", false),
	ask("founderName", "Founder name", true),
	ask("founderEmail", "Founder email", true),
	ask("founderPhone", "Founder phone", false),
	ask("website", "Website", false),
	ask("headquarters", "Headquarters", false),
	ask("foundedYear", "Year founded", false),
	ask("sector", "Sector", true),
	ask("stage", "Stage", true),
	ask("geography", "Geography", true),
	ask("pitch", "One-line pitch", true),
	ask("problem", "Problem", false),
	ask("solution", "Solution", false),
	ask("productStatus", "Product status", false),
	ask("businessModel", "Business model", false),
	ask("targetMarket", "Target market", false),
	ask("marketSize", "Market size", false),
	ask("competitors", "Competitors", false),
	ask("advantage", "Competitive advantage", false),
	ask("traction", "Traction", false),
	ask("mrr", "Monthly recurring revenue", false),
	ask("growth", "Month-over-month growth", false),
	ask("customers", "Key customers", false),
	ask("teamSize", "Team size", false),
	ask("coFounders", "Co-founders", false),
	ask("keyHires", "Key hires", false),
	ask("previousFunding", "Previous funding", false),
	ask("raiseAmount", "Amount raising", true),
	ask("valuation", "Target valuation", false),
	ask("useOfFunds", "Use of funds", false),
	ask("runway", "Current runway", false),
	ask("capTable", "Cap table summary", false),
	ask("deckUrl", "Deck link", false),
	ask("notes", "Anything else", false),
}

// Steps returns the ordered step catalogue for kind.
func Steps(kind string) ([]models.OnboardingStep, error) {
	switch kind {
	case models.OnboardingFund:
		return fundSteps, nil
	case models.OnboardingStartup:
		return startupSteps, nil
	}
	return nil, ErrInvalidKind
}
