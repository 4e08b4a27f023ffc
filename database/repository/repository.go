package repository

import (
	"context"

	clientRepo "raisedesk/database/repository/client"
	investorRepo "raisedesk/database/repository/investor"
	meetingRepo "raisedesk/database/repository/meeting"
	onboardingRepo "raisedesk/database/repository/onboarding"
	taskRepo "raisedesk/database/repository/task"

	"go.mongodb.org/mongo-driver/mongo"
)

// Re-export the repository interfaces.
type InvestorRepository = investorRepo.InvestorRepository

type ClientRepository = clientRepo.ClientRepository

type MeetingRepository = meetingRepo.MeetingRepository

type TaskRepository = taskRepo.TaskRepository

type SubmissionRepository = onboardingRepo.SubmissionRepository

// Store bundles every repository the services depend on.
type Store struct {
	Investors   InvestorRepository
	Clients     ClientRepository
	Meetings    MeetingRepository
	Tasks       TaskRepository
	Submissions SubmissionRepository
}

// NewMemoryStore returns a store that lives in process memory.
func NewMemoryStore() *Store {
	return &Store{
		Investors:   investorRepo.NewMemoryInvestorRepo(),
		Clients:     clientRepo.NewMemoryClientRepo(),
		Meetings:    meetingRepo.NewMemoryMeetingRepo(),
		Tasks:       taskRepo.NewMemoryTaskRepo(),
		Submissions: onboardingRepo.NewMemorySubmissionRepo(),
	}
}

// NewMongoStore returns a store backed by db, creating indexes as it goes.
func NewMongoStore(ctx context.Context, db *mongo.Database) (*Store, error) {
	investors, err := investorRepo.NewMongoInvestorRepo(ctx, db)
	if err != nil {
		return nil, err
	}
	clients, err := clientRepo.NewMongoClientRepo(ctx, db)
	if err != nil {
		return nil, err
	}
	meetings, err := meetingRepo.NewMongoMeetingRepo(ctx, db)
	if err != nil {
		return nil, err
	}
	tasks, err := taskRepo.NewMongoTaskRepo(ctx, db)
	if err != nil {
		return nil, err
	}
	submissions, err := onboardingRepo.NewMongoSubmissionRepo(ctx, db)
	if err != nil {
		return nil, err
	}
	return &Store{
		Investors:   investors,
		Clients:     clients,
		Meetings:    meetings,
		Tasks:       tasks,
		Submissions: submissions,
	}, nil
}
