package meetingRepo

import (
	"context"
	"time"

	"raisedesk/models"
)

// MeetingRepository defines methods for meeting data access.
type MeetingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Meeting, error)
	GetAll(ctx context.Context) ([]models.Meeting, error)
	// GetUpcoming returns scheduled meetings starting at or after from, earliest first.
	GetUpcoming(ctx context.Context, from time.Time) ([]models.Meeting, error)
	Create(ctx context.Context, meeting *models.Meeting) error
	Update(ctx context.Context, meeting *models.Meeting) error
	Delete(ctx context.Context, id string) error
}
