package models

import "time"

const (
	MeetingStatusScheduled = "scheduled"
	MeetingStatusCompleted = "completed"
	MeetingStatusCancelled = "cancelled"
)

type Meeting struct {
	ID              string    `bson:"id" json:"id"`
	Title           string    `bson:"title" json:"title" binding:"required,notblank"`
	InvestorID      string    `bson:"investorId" json:"investorId" binding:"required"`
	ClientID        *string   `bson:"clientId,omitempty" json:"clientId,omitempty"`
	StartsAt        time.Time `bson:"startsAt" json:"startsAt" binding:"required"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes" binding:"gte=0"`
	Location        string    `bson:"location" json:"location"`
	Status          string    `bson:"status" json:"status"`
	Notes           *string   `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// EndsAt returns the scheduled end of the meeting.
func (m Meeting) EndsAt() time.Time {
	return m.StartsAt.Add(time.Duration(m.DurationMinutes) * time.Minute)
}
