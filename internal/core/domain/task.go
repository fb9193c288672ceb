package domain

import "time"

// TaskStatus of an autopilot task. Only TaskPending is used; a task is a
// grouping key for the emails produced in one cycle.
type TaskStatus int

const TaskPending TaskStatus = 0

// AutopilotTask is one production cycle of an autopilot. It is never
// mutated after creation.
type AutopilotTask struct {
	ID          int64      `json:"id"`
	AutopilotID int64      `json:"autopilotId"`
	OwnerUser   int64      `json:"ownerUser"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}
