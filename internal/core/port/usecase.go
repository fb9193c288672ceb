package port

import (
	"context"
	"time"

	"campaign-autopilot/internal/core/domain"
)

// AutopilotRegistry defines the registry operations exposed to the CRUD
// layer.
type AutopilotRegistry interface {
	// Create registers a new autopilot. It fails with domain.ErrConflict when
	// the (list, schedule, agent) slot is taken and writes nothing then.
	Create(ctx context.Context, req CreateAutopilotReq) (*domain.Autopilot, error)

	// ExistsConflict reports whether the slot is taken. Store errors count
	// as a conflict.
	ExistsConflict(ctx context.Context, listID int64, scheduleID domain.ScheduleID, agent string) bool

	// ValidateSelections checks a batch of lists against the registry before
	// the user submits them.
	ValidateSelections(ctx context.Context, agent string, scheduleID domain.ScheduleID, listIDs []int64) []ListAvailability

	Get(ctx context.Context, id int64) (*domain.Autopilot, error)
	ListByAgent(ctx context.Context, agent string) ([]domain.Autopilot, error)
	Update(ctx context.Context, req UpdateAutopilotReq) (*domain.Autopilot, error)

	// Delete removes the autopilot after its emails and tasks.
	Delete(ctx context.Context, id int64) error
}

// ProductionOrchestrator defines production triggering.
type ProductionOrchestrator interface {
	// StartProduction runs one independent production pipeline per
	// autopilot and reports every outcome.
	StartProduction(ctx context.Context, autopilots []domain.Autopilot) ProductionReport

	// StartProductionByIDs loads the agent's autopilots by id and starts
	// production for them. Ids that do not resolve are reported as failed.
	StartProductionByIDs(ctx context.Context, agent string, ids []int64) (ProductionReport, error)

	// RegisterAndProduce creates an autopilot and starts production for it.
	RegisterAndProduce(ctx context.Context, req CreateAutopilotReq) (*RegisterResult, error)

	// RefreshDue starts production for every active autopilot whose next
	// update has passed and advances its next update.
	RefreshDue(ctx context.Context, now time.Time) (ProductionReport, error)
}

// EmailLifecycle defines the email state transitions.
type EmailLifecycle interface {
	BulkApprove(ctx context.Context, req BatchRequest) (*BatchResult, error)
	BulkRevert(ctx context.Context, req BatchRequest) (*BatchResult, error)
	BulkDelete(ctx context.Context, req BatchRequest) (*BatchResult, error)
	ListByOwnerAndList(ctx context.Context, agent string, listID int64) ([]domain.Email, error)
	Selectable(emails []domain.Email) domain.Selection
}

// CreateAutopilotReq carries the registration arguments. OfferID is the
// external offer id; an empty or unmapped id means no offer.
type CreateAutopilotReq struct {
	ListID     int64
	ScheduleID domain.ScheduleID
	OfferID    string
	OwnerAgent string
	OwnerUser  int64
}

// UpdateAutopilotReq carries the mutable fields of an autopilot.
type UpdateAutopilotReq struct {
	ID      int64
	ListID  int64
	OfferID string
	Active  bool
}

// ListAvailability tells whether a list can still take the schedule.
type ListAvailability struct {
	ListID    int64 `json:"listId"`
	Available bool  `json:"available"`
}

// ProductionOutcome is the result of one autopilot's production pipeline.
type ProductionOutcome string

const (
	ProductionDispatched     ProductionOutcome = "dispatched"
	ProductionSkippedNoOffer ProductionOutcome = "skipped-no-offer"
	ProductionFailed         ProductionOutcome = "failed"
)

type ProductionItem struct {
	AutopilotID int64             `json:"autopilotId"`
	TaskID      int64             `json:"taskId,omitempty"`
	Outcome     ProductionOutcome `json:"outcome"`
	Reason      string            `json:"reason,omitempty"`
}

// ProductionReport lists the outcome per autopilot in input order together
// with the totals.
type ProductionReport struct {
	Items      []ProductionItem `json:"items"`
	Dispatched int              `json:"dispatched"`
	Skipped    int              `json:"skipped"`
	Failed     int              `json:"failed"`
}

// RegisterResult is returned by RegisterAndProduce.
type RegisterResult struct {
	Autopilot *domain.Autopilot `json:"autopilot"`
	Report    ProductionReport  `json:"report"`
}

// BatchRequest selects the emails a bulk transition acts on. ListID scopes
// the refresh of the authoritative email set.
type BatchRequest struct {
	Owner    domain.Owner
	ListID   int64
	EmailIDs []int64
}

// ItemOutcome is the result of one email in a bulk transition.
type ItemOutcome string

const (
	ItemSucceeded           ItemOutcome = "succeeded"
	ItemFailed              ItemOutcome = "failed"
	ItemNotFound            ItemOutcome = "not-found"
	ItemSkippedNotFuture    ItemOutcome = "skipped-not-future"
	ItemSkippedInvalidState ItemOutcome = "skipped-invalid-state"
)

type BatchItem struct {
	EmailID int64       `json:"emailId"`
	Outcome ItemOutcome `json:"outcome"`
	Reason  string      `json:"reason,omitempty"`
}

// BatchResult reports a bulk transition. Emails is the email set read back
// from the store after every item settled.
type BatchResult struct {
	Success int            `json:"success"`
	Failed  int            `json:"failed"`
	Skipped int            `json:"skipped"`
	Items   []BatchItem    `json:"items"`
	Emails  []domain.Email `json:"emails"`
}
