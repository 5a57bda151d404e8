// Package todo defines the task record shared by the panel and its storage
// backends.
package todo

import "strings"

// Status is the progress state of a single task.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Normalize maps a status to one of the three known values. Anything
// outside the enumerated set, including empty strings, is treated as
// not-started rather than rejected.
func (s Status) Normalize() Status {
	switch Status(strings.ToLower(strings.TrimSpace(string(s)))) {
	case StatusInProgress:
		return StatusInProgress
	case StatusCompleted:
		return StatusCompleted
	default:
		return StatusNotStarted
	}
}

// Record is one task entry in a session's todo list.
type Record struct {
	Title  string `json:"title"`
	Status Status `json:"status"`
}
