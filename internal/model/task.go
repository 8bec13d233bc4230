package model

import (
	"errors"
	"fmt"
)

type TaskCreateParams struct {
	Category  string `json:"category"`
	TaskName  string `json:"task_name"`
	Frequency int    `json:"frequency"`
}

type Task struct {
	ID        int    `json:"id"`
	ProjectID int    `json:"project_id"`
	Category  string `json:"category"`
	TaskName  string `json:"task_name"`
	Frequency int    `json:"frequency"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// DueFilter selects the horizon for the due-task listing endpoint.
type DueFilter string

const (
	DueToday    DueFilter = "today"
	DueTomorrow DueFilter = "tomorrow"
	DueWeek     DueFilter = "week"
	DueMonth    DueFilter = "month"
)

var ErrInvalidDueFilter = errors.New("invalid due filter")

func ParseDueFilter(s string) (DueFilter, error) {
	switch DueFilter(s) {
	case DueToday, DueTomorrow, DueWeek, DueMonth:
		return DueFilter(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDueFilter, s)
	}
}
