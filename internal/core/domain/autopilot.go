package domain

import (
	"fmt"
	"time"
)

// RefreshInterval is how far ahead the next content refresh of an autopilot
// is scheduled.
const RefreshInterval = 7 * 24 * time.Hour

// AutopilotStatus is the activation state of an autopilot.
type AutopilotStatus string

const (
	AutopilotActive AutopilotStatus = "active"
	AutopilotPaused AutopilotStatus = "paused"
)

// Autopilot binds a mailing list to a send schedule and an offer. At most one
// autopilot exists for a given AutopilotKey.
type Autopilot struct {
	ID         int64           `json:"id"`
	ListID     int64           `json:"listId"`
	ScheduleID ScheduleID      `json:"scheduleId"`
	OfferID    *int64          `json:"offerId,omitempty"` // nil means no offer selected
	OwnerAgent string          `json:"ownerAgent"`
	OwnerUser  int64           `json:"ownerUser"`
	Status     AutopilotStatus `json:"status"`
	NextUpdate time.Time       `json:"nextUpdate"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Key returns the uniqueness key of the autopilot.
func (a Autopilot) Key() AutopilotKey {
	return AutopilotKey{ListID: a.ListID, ScheduleID: a.ScheduleID, OwnerAgent: a.OwnerAgent}
}

// Active reports whether the autopilot takes part in production.
func (a Autopilot) Active() bool {
	return a.Status == AutopilotActive
}

// AutopilotKey is the (list, schedule, agent) triple that identifies a
// schedule slot.
type AutopilotKey struct {
	ListID     int64
	ScheduleID ScheduleID
	OwnerAgent string
}

func (k AutopilotKey) String() string {
	return fmt.Sprintf("%s/%d/%s", k.OwnerAgent, k.ListID, k.ScheduleID)
}

// NextUpdateFrom returns now plus RefreshInterval truncated to midnight in
// loc.
func NextUpdateFrom(now time.Time, loc *time.Location) time.Time {
	t := now.In(loc).Add(RefreshInterval)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
