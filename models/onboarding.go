package models

import "time"

// Onboarding kinds.
const (
	OnboardingFund    = "fund"
	OnboardingStartup = "startup"
)

const (
	SubmissionDraft     = "draft"
	SubmissionSubmitted = "submitted"
)

// OnboardingSubmission is the persisted state of one onboarding questionnaire.
type OnboardingSubmission struct {
	ID          string            `bson:"id" json:"id"`
	Kind        string            `bson:"kind" json:"kind"`
	Step        int               `bson:"step" json:"step"`
	Data        map[string]string `bson:"data" json:"data"`
	Status      string            `bson:"status" json:"status"`
	PromotedID  *string           `bson:"promotedId,omitempty" json:"promotedId,omitempty"`
	CreatedAt   time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time         `bson:"updatedAt" json:"updatedAt"`
	SubmittedAt *time.Time        `bson:"submittedAt,omitempty" json:"submittedAt,omitempty"`
}

// OnboardingField describes one input of a step.
type OnboardingField struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

// OnboardingStep is one page of the questionnaire.
type OnboardingStep struct {
	ID     string            `json:"id"`
	Title  string            `json:"title"`
	Fields []OnboardingField `json:"fields"`
}

// OnboardingView is what the dashboard renders for a submission.
type OnboardingView struct {
	Submission OnboardingSubmission `json:"submission"`
	Current    OnboardingStep       `json:"current"`
	TotalSteps int                  `json:"totalSteps"`
	CanNext    bool                 `json:"canNext"`
	CanPrev    bool                 `json:"canPrev"`
	Progress   float64              `json:"progress"`
	Missing    []string             `json:"missing"`
}
