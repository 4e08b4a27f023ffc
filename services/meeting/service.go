package meeting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"raisedesk/database/repository"
	"raisedesk/models"
	"raisedesk/services/tasks"

	"go.uber.org/zap"
)

// ErrInvalidTransition is returned when a meeting is no longer scheduled.
var ErrInvalidTransition = errors.New("meeting is not scheduled")

type MeetingService interface {
	ListMeetings(ctx context.Context) ([]models.Meeting, error)
	ListUpcoming(ctx context.Context) ([]models.Meeting, error)
	ScheduleMeeting(ctx context.Context, m *models.Meeting) error
	CancelMeeting(ctx context.Context, id string) (*models.Meeting, error)
	CompleteMeeting(ctx context.Context, id string, notes *string) (*models.Meeting, error)
}

type DefaultMeetingService struct {
	Repo      repository.MeetingRepository
	Investors repository.InvestorRepository
	Reminders tasks.ReminderScheduler
	LeadTime  time.Duration
	Logger    *zap.Logger
	Now       func() time.Time
}

func NewDefaultMeetingService(repo repository.MeetingRepository, investors repository.InvestorRepository, reminders tasks.ReminderScheduler, leadTime time.Duration, logger *zap.Logger) *DefaultMeetingService {
	if reminders == nil {
		reminders = tasks.NoopScheduler{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultMeetingService{
		Repo:      repo,
		Investors: investors,
		Reminders: reminders,
		LeadTime:  leadTime,
		Logger:    logger,
		Now:       time.Now,
	}
}

func (s *DefaultMeetingService) ListMeetings(ctx context.Context) ([]models.Meeting, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultMeetingService) ListUpcoming(ctx context.Context) ([]models.Meeting, error) {
	return s.Repo.GetUpcoming(ctx, s.Now())
}

// ScheduleMeeting stores a meeting with an existing investor and queues its reminder.
func (s *DefaultMeetingService) ScheduleMeeting(ctx context.Context, m *models.Meeting) error {
	investor, err := s.Investors.GetByID(ctx, m.InvestorID)
	if err != nil {
		return fmt.Errorf("failed to load investor for meeting: %w", err)
	}
	m.ID = ""
	m.Status = models.MeetingStatusScheduled
	if m.DurationMinutes == 0 {
		m.DurationMinutes = 30
	}
	if err := s.Repo.Create(ctx, m); err != nil {
		return err
	}

	fireAt := m.StartsAt.Add(-s.LeadTime)
	if fireAt.After(s.Now()) {
		payload := models.ReminderPayload{
			ID:     m.ID,
			Target: models.ReminderMeeting,
			Title:  m.Title,
			Body:   fmt.Sprintf("Meeting with %s at %s", investor.Name, m.StartsAt.UTC().Format(time.RFC1123)),
		}
		if err := s.Reminders.Schedule(ctx, payload, fireAt); err != nil {
			s.Logger.Warn("failed to schedule meeting reminder", zap.String("meetingId", m.ID), zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultMeetingService) transition(ctx context.Context, id, status string, notes *string) (*models.Meeting, error) {
	m, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Status != models.MeetingStatusScheduled {
		return nil, fmt.Errorf("%w: meeting %s is %s", ErrInvalidTransition, id, m.Status)
	}
	m.Status = status
	if notes != nil {
		m.Notes = notes
	}
	if err := s.Repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *DefaultMeetingService) CancelMeeting(ctx context.Context, id string) (*models.Meeting, error) {
	return s.transition(ctx, id, models.MeetingStatusCancelled, nil)
}

func (s *DefaultMeetingService) CompleteMeeting(ctx context.Context, id string, notes *string) (*models.Meeting, error) {
	return s.transition(ctx, id, models.MeetingStatusCompleted, notes)
}
