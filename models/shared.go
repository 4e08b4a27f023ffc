package models

// ReminderPayload is queued for delivery ahead of a meeting or task deadline.
type ReminderPayload struct {
	ID       string `json:"id"`     // meetingId or taskId
	Target   string `json:"target"` // "meeting" or "task"
	Title    string `json:"title"`
	Body     string `json:"body"`
	FireDate string `json:"fireDate"`
}

// Reminder targets.
const (
	ReminderMeeting = "meeting"
	ReminderTask    = "task"
)
