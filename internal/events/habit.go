// Package events defines the event payloads published for downstream
// consumers (dashboards, notification pipelines).
package events

import "time"

// HabitAssigned is emitted when a new daily assignment is persisted.
type HabitAssigned struct {
	AssignmentID string    `json:"assignment_id"`
	UserID       string    `json:"user_id"`
	HabitID      string    `json:"habit_id"`
	Date         string    `json:"date"`
	AssignedAt   time.Time `json:"assigned_at"`
}

// HabitCompleted is emitted when an assignment transitions to completed.
type HabitCompleted struct {
	AssignmentID string    `json:"assignment_id"`
	UserID       string    `json:"user_id"`
	HabitID      string    `json:"habit_id"`
	Date         string    `json:"date"`
	CompletedAt  time.Time `json:"completed_at"`
}
