package port

import (
	"context"

	"campaign-autopilot/internal/core/domain"
)

// ProductionRequest asks the production service to generate the emails of
// one task.
type ProductionRequest struct {
	Agent       string            `json:"agent"`
	ListID      int64             `json:"listId"`
	OwnerUser   int64             `json:"ownerUser"`
	AutopilotID int64             `json:"autopilotId"`
	TaskID      int64             `json:"taskId"`
	OfferGoal   string            `json:"offerGoal"`
	OfferName   string            `json:"offerName"`
	ScheduleID  domain.ScheduleID `json:"scheduleId"`
}

// ProductionDispatcher hands a production request to the production
// service. A nil error is a best-effort acknowledgement; generation may
// still be pending.
type ProductionDispatcher interface {
	Dispatch(ctx context.Context, req ProductionRequest) error
}

// CallbackAction selects one of the lifecycle callback endpoints.
type CallbackAction string

const (
	CallbackApprove CallbackAction = "approve"
	CallbackRevert  CallbackAction = "revert"
	CallbackDelete  CallbackAction = "delete"
)

// CallbackRequest is the body sent to every lifecycle callback endpoint.
type CallbackRequest struct {
	Agent           string `json:"agent"`
	UserID          int64  `json:"userId"`
	EmailID         int64  `json:"emailId"`
	ExternalEmailID string `json:"externalEmailId"`
}

// EmailCallbackClient notifies the production service about a lifecycle
// transition of one email.
type EmailCallbackClient interface {
	Notify(ctx context.Context, action CallbackAction, req CallbackRequest) error
}

// OutcomeRecorder receives one event per settled batch item. The metrics
// adapter implements it.
type OutcomeRecorder interface {
	RecordProduction(outcome ProductionOutcome)
	RecordEmailTransition(action CallbackAction, outcome ItemOutcome)
}
