package board

import (
	"errors"
	"sort"

	"raisedesk/models"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidColumn = errors.New("invalid board column")
)

// Build groups tasks into the fixed board columns, each sorted by position.
// Tasks carrying an unknown column are dropped.
func Build(tasks []models.Task) []models.BoardColumn {
	byColumn := make(map[string][]models.Task, len(models.Columns))
	for _, t := range tasks {
		byColumn[t.Column] = append(byColumn[t.Column], t)
	}
	board := make([]models.BoardColumn, 0, len(models.Columns))
	for _, name := range models.Columns {
		col := byColumn[name]
		sort.SliceStable(col, func(i, j int) bool { return col[i].Position < col[j].Position })
		if col == nil {
			col = []models.Task{}
		}
		board = append(board, models.BoardColumn{Name: name, Tasks: col})
	}
	return board
}

// Move drops task taskID into column toColumn at toIndex, clamped to the
// column bounds, and renumbers every column contiguously from zero.
// It returns the full task list after the move and the tasks whose column or
// position changed.
func Move(tasks []models.Task, taskID, toColumn string, toIndex int) (all []models.Task, changed []models.Task, err error) {
	if !models.IsColumn(toColumn) {
		return nil, nil, ErrInvalidColumn
	}

	var moving *models.Task
	for i := range tasks {
		if tasks[i].ID == taskID {
			t := tasks[i]
			moving = &t
			break
		}
	}
	if moving == nil {
		return nil, nil, ErrTaskNotFound
	}
	fromColumn := moving.Column

	before := make(map[string]models.Task, len(tasks))
	for _, t := range tasks {
		before[t.ID] = t
	}

	board := Build(tasks)
	columns := make(map[string][]models.Task, len(board))
	for _, col := range board {
		columns[col.Name] = col.Tasks
	}

	src := columns[fromColumn]
	for i, t := range src {
		if t.ID == taskID {
			src = append(src[:i:i], src[i+1:]...)
			break
		}
	}
	columns[fromColumn] = src

	dst := columns[toColumn]
	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex > len(dst) {
		toIndex = len(dst)
	}
	moving.Column = toColumn
	next := make([]models.Task, 0, len(dst)+1)
	next = append(next, dst[:toIndex]...)
	next = append(next, *moving)
	next = append(next, dst[toIndex:]...)
	columns[toColumn] = next

	for _, name := range models.Columns {
		col := columns[name]
		for i := range col {
			col[i].Position = i
			prev, ok := before[col[i].ID]
			if !ok || prev.Column != col[i].Column || prev.Position != col[i].Position {
				changed = append(changed, col[i])
			}
		}
		all = append(all, col...)
	}
	return all, changed, nil
}

// NextPosition returns the position a new card takes at the bottom of column.
func NextPosition(tasks []models.Task, column string) int {
	next := 0
	for _, t := range tasks {
		if t.Column == column && t.Position >= next {
			next = t.Position + 1
		}
	}
	return next
}
