package models

import "time"

// Board columns, in display order.
const (
	ColumnTodo       = "todo"
	ColumnInProgress = "in_progress"
	ColumnReview     = "review"
	ColumnDone       = "done"
)

// Columns lists the board columns left to right.
var Columns = []string{ColumnTodo, ColumnInProgress, ColumnReview, ColumnDone}

// IsColumn reports whether name is a known board column.
func IsColumn(name string) bool {
	for _, c := range Columns {
		if c == name {
			return true
		}
	}
	return false
}

type Task struct {
	ID          string     `bson:"id" json:"id"`
	Title       string     `bson:"title" json:"title" binding:"required,notblank"`
	Description string     `bson:"description" json:"description"`
	Column      string     `bson:"column" json:"column"`
	Position    int        `bson:"position" json:"position"`
	Priority    string     `bson:"priority" json:"priority" binding:"omitempty,oneof=low medium high"`
	Assignee    string     `bson:"assignee" json:"assignee"`
	DueAt       *time.Time `bson:"dueAt,omitempty" json:"dueAt,omitempty"`
	InvestorID  *string    `bson:"investorId,omitempty" json:"investorId,omitempty"`
	ClientID    *string    `bson:"clientId,omitempty" json:"clientId,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// BoardColumn is one column of the tasks board with its cards in position order.
type BoardColumn struct {
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// TaskMoveRequest describes a drag-and-drop of a card.
type TaskMoveRequest struct {
	Column string `json:"column" binding:"required"`
	Index  int    `json:"index"`
}
