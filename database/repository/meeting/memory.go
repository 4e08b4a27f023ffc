package meetingRepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"raisedesk/database"
	"raisedesk/models"

	"github.com/google/uuid"
)

type MemoryMeetingRepo struct {
	table *database.MemoryTable[models.Meeting]
}

func NewMemoryMeetingRepo() *MemoryMeetingRepo {
	return &MemoryMeetingRepo{
		table: database.NewMemoryTable(func(m models.Meeting) string { return m.ID }),
	}
}

func (r *MemoryMeetingRepo) GetByID(_ context.Context, id string) (*models.Meeting, error) {
	m, ok := r.table.Get(id)
	if !ok {
		return nil, fmt.Errorf("meeting %s: %w", id, database.ErrNotFound)
	}
	return &m, nil
}

func (r *MemoryMeetingRepo) GetAll(_ context.Context) ([]models.Meeting, error) {
	meetings := r.table.All()
	sortByStart(meetings)
	return meetings, nil
}

func (r *MemoryMeetingRepo) GetUpcoming(_ context.Context, from time.Time) ([]models.Meeting, error) {
	upcoming := []models.Meeting{}
	for _, m := range r.table.All() {
		if m.Status == models.MeetingStatusScheduled && !m.StartsAt.Before(from) {
			upcoming = append(upcoming, m)
		}
	}
	sortByStart(upcoming)
	return upcoming, nil
}

func sortByStart(meetings []models.Meeting) {
	sort.SliceStable(meetings, func(i, j int) bool {
		return meetings[i].StartsAt.Before(meetings[j].StartsAt)
	})
}

func (r *MemoryMeetingRepo) Create(_ context.Context, meeting *models.Meeting) error {
	if meeting.ID == "" {
		meeting.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	meeting.CreatedAt = now
	meeting.UpdatedAt = now
	if !r.table.Insert(*meeting) {
		return fmt.Errorf("meeting with id %s already exists", meeting.ID)
	}
	return nil
}

func (r *MemoryMeetingRepo) Update(_ context.Context, meeting *models.Meeting) error {
	meeting.UpdatedAt = time.Now().UTC()
	if !r.table.Update(*meeting) {
		return fmt.Errorf("meeting %s: %w", meeting.ID, database.ErrNotFound)
	}
	return nil
}

func (r *MemoryMeetingRepo) Delete(_ context.Context, id string) error {
	if !r.table.Delete(id) {
		return fmt.Errorf("meeting %s: %w", id, database.ErrNotFound)
	}
	return nil
}
