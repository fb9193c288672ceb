package port

import (
	"context"
	"time"

	"campaign-autopilot/internal/core/domain"
)

// AutopilotRepository persists autopilot records. It is an outbound port of
// the record store. Lookups of a single record return (nil, nil) when the
// record does not exist.
type AutopilotRepository interface {
	// Create inserts ap and fills in ID, CreatedAt and UpdatedAt. It returns
	// domain.ErrConflict when the store already holds the same key.
	Create(ctx context.Context, ap *domain.Autopilot) error
	// Get returns the autopilot with the given id.
	Get(ctx context.Context, id int64) (*domain.Autopilot, error)
	// ListByAgent returns every autopilot owned by agent.
	ListByAgent(ctx context.Context, agent string) ([]domain.Autopilot, error)
	// ListByIDs returns the autopilots with the given ids. Unknown ids are
	// omitted from the result.
	ListByIDs(ctx context.Context, ids []int64) ([]domain.Autopilot, error)
	// ListDue returns active autopilots whose next update is not after before.
	ListDue(ctx context.Context, before time.Time) ([]domain.Autopilot, error)
	// Update writes list, offer and status of ap.
	Update(ctx context.Context, ap *domain.Autopilot) error
	// SetNextUpdate moves the next refresh time of an autopilot.
	SetNextUpdate(ctx context.Context, id int64, next time.Time) error
	// Delete removes the autopilot row. It reports whether a row existed.
	Delete(ctx context.Context, id int64) (bool, error)
}

// TaskRepository persists autopilot tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.AutopilotTask) error
	ListByAutopilot(ctx context.Context, autopilotID int64) ([]domain.AutopilotTask, error)
	Delete(ctx context.Context, id int64) error
}

// EmailRepository persists generated emails. Emails are created by the
// production service, so there is no Create.
type EmailRepository interface {
	ListByOwnerAndList(ctx context.Context, agent string, listID int64) ([]domain.Email, error)
	ListByIDs(ctx context.Context, ids []int64) ([]domain.Email, error)
	SetStatus(ctx context.Context, id int64, status domain.EmailStatus) error
	Delete(ctx context.Context, id int64) error
	// DeleteByTask removes every email of a task and returns how many were
	// removed.
	DeleteByTask(ctx context.Context, taskID int64) (int64, error)
}

// OfferRepository reads offer records by their external id.
type OfferRepository interface {
	GetByExternalID(ctx context.Context, externalID string) (*domain.Offer, error)
}
