package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"campaign-autopilot/internal/core/domain"
	"campaign-autopilot/internal/core/port"
)

// AutopilotUseCase is the autopilot registry. It implements
// port.AutopilotRegistry on top of the record store repositories.
//
// Registrations for the same (list, schedule, agent) key are serialised
// through an in-process lock, and the store is expected to reject a
// duplicate key on insert as well, so the check-then-act window of a
// single instance is closed and concurrent instances still fail with
// domain.ErrConflict instead of creating a duplicate.
type AutopilotUseCase struct {
	autopilots port.AutopilotRepository
	tasks      port.TaskRepository
	emails     port.EmailRepository
	offers     *domain.OfferMapping
	logger     *slog.Logger

	now   func() time.Time
	loc   *time.Location
	locks *keyLock
}

// NewAutopilotUseCase creates the registry. Next updates snap to midnight
// in loc; a nil loc means UTC.
func NewAutopilotUseCase(
	autopilots port.AutopilotRepository,
	tasks port.TaskRepository,
	emails port.EmailRepository,
	offers *domain.OfferMapping,
	loc *time.Location,
	logger *slog.Logger,
) *AutopilotUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &AutopilotUseCase{
		autopilots: autopilots,
		tasks:      tasks,
		emails:     emails,
		offers:     offers,
		logger:     logger,
		now:        time.Now,
		loc:        loc,
		locks:      newKeyLock(),
	}
}

// Create registers an autopilot. The conflict check runs against every
// autopilot of the agent; on conflict nothing is written. The next update
// is set to seven days from now at midnight.
func (u *AutopilotUseCase) Create(ctx context.Context, req port.CreateAutopilotReq) (*domain.Autopilot, error) {
	if req.ListID <= 0 || !req.ScheduleID.Valid() || req.OwnerAgent == "" {
		return nil, fmt.Errorf("create autopilot list=%d schedule=%q agent=%q: %w",
			req.ListID, req.ScheduleID, req.OwnerAgent, domain.ErrInvalidRequest)
	}
	key := domain.AutopilotKey{ListID: req.ListID, ScheduleID: req.ScheduleID, OwnerAgent: req.OwnerAgent}

	unlock := u.locks.Lock(key)
	defer unlock()

	if u.conflicts(ctx, key, 0) {
		return nil, fmt.Errorf("create autopilot %s: %w", key, domain.ErrConflict)
	}

	ap := &domain.Autopilot{
		ListID:     req.ListID,
		ScheduleID: req.ScheduleID,
		OfferID:    u.numericOffer(req.OfferID),
		OwnerAgent: req.OwnerAgent,
		OwnerUser:  req.OwnerUser,
		Status:     domain.AutopilotActive,
		NextUpdate: domain.NextUpdateFrom(u.now(), u.loc),
	}
	if err := u.autopilots.Create(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("create autopilot %s: %w", key, err)
		}
		return nil, fmt.Errorf("create autopilot %s: %w: %w", key, domain.ErrRemoteFailure, err)
	}

	u.logger.Info("autopilot registered",
		slog.Int64("autopilot_id", ap.ID),
		slog.String("key", key.String()),
		slog.Time("next_update", ap.NextUpdate),
	)
	return ap, nil
}

// ExistsConflict reports whether an autopilot already holds the slot. A
// store error is reported as a conflict.
func (u *AutopilotUseCase) ExistsConflict(ctx context.Context, listID int64, scheduleID domain.ScheduleID, agent string) bool {
	return u.conflicts(ctx, domain.AutopilotKey{ListID: listID, ScheduleID: scheduleID, OwnerAgent: agent}, 0)
}

// conflicts checks key against the agent's autopilots, ignoring the record
// with id exclude.
func (u *AutopilotUseCase) conflicts(ctx context.Context, key domain.AutopilotKey, exclude int64) bool {
	existing, err := u.autopilots.ListByAgent(ctx, key.OwnerAgent)
	if err != nil {
		u.logger.Warn("conflict check failed, treating as conflict",
			slog.String("key", key.String()),
			slog.Any("error", err),
		)
		return true
	}
	for _, ap := range existing {
		if ap.ID != exclude && ap.Key() == key {
			return true
		}
	}
	return false
}

// ValidateSelections reports for each list whether the schedule is still
// free for the agent. If the registry cannot be read every list is
// reported unavailable.
func (u *AutopilotUseCase) ValidateSelections(ctx context.Context, agent string, scheduleID domain.ScheduleID, listIDs []int64) []port.ListAvailability {
	out := make([]port.ListAvailability, len(listIDs))
	for i, id := range listIDs {
		out[i] = port.ListAvailability{ListID: id}
	}

	existing, err := u.autopilots.ListByAgent(ctx, agent)
	if err != nil {
		u.logger.Warn("selection check failed, rejecting all lists",
			slog.String("agent", agent),
			slog.Any("error", err),
		)
		return out
	}
	taken := make(map[int64]bool, len(existing))
	for _, ap := range existing {
		if ap.ScheduleID == scheduleID {
			taken[ap.ListID] = true
		}
	}
	for i := range out {
		out[i].Available = !taken[out[i].ListID]
	}
	return out
}

// Get returns one autopilot or domain.ErrNotFound.
func (u *AutopilotUseCase) Get(ctx context.Context, id int64) (*domain.Autopilot, error) {
	ap, err := u.autopilots.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get autopilot %d: %w: %w", id, domain.ErrRemoteFailure, err)
	}
	if ap == nil {
		return nil, fmt.Errorf("autopilot %d: %w", id, domain.ErrNotFound)
	}
	return ap, nil
}

// ListByAgent returns the autopilots of an agent.
func (u *AutopilotUseCase) ListByAgent(ctx context.Context, agent string) ([]domain.Autopilot, error) {
	if agent == "" {
		return nil, fmt.Errorf("list autopilots: missing agent: %w", domain.ErrInvalidRequest)
	}
	aps, err := u.autopilots.ListByAgent(ctx, agent)
	if err != nil {
		return nil, fmt.Errorf("list autopilots of %q: %w: %w", agent, domain.ErrRemoteFailure, err)
	}
	return aps, nil
}

// Update changes the list, offer and active flag of an autopilot. Moving
// it to another list is checked against the registry like a creation.
func (u *AutopilotUseCase) Update(ctx context.Context, req port.UpdateAutopilotReq) (*domain.Autopilot, error) {
	if req.ListID <= 0 {
		return nil, fmt.Errorf("update autopilot %d: list=%d: %w", req.ID, req.ListID, domain.ErrInvalidRequest)
	}
	ap, err := u.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.ListID != ap.ListID {
		key := domain.AutopilotKey{ListID: req.ListID, ScheduleID: ap.ScheduleID, OwnerAgent: ap.OwnerAgent}
		unlock := u.locks.Lock(key)
		defer unlock()
		if u.conflicts(ctx, key, ap.ID) {
			return nil, fmt.Errorf("update autopilot %d to %s: %w", ap.ID, key, domain.ErrConflict)
		}
	}

	ap.ListID = req.ListID
	ap.OfferID = u.numericOffer(req.OfferID)
	ap.Status = domain.AutopilotPaused
	if req.Active {
		ap.Status = domain.AutopilotActive
	}
	if err = u.autopilots.Update(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("update autopilot %d: %w", ap.ID, err)
		}
		return nil, fmt.Errorf("update autopilot %d: %w: %w", ap.ID, domain.ErrRemoteFailure, err)
	}
	return ap, nil
}

// Delete removes an autopilot together with its tasks and their emails.
// For every task the emails go first, then the task; the autopilot row is
// removed last. The first failing step aborts the deletion.
func (u *AutopilotUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}

	tasks, err := u.tasks.ListByAutopilot(ctx, id)
	if err != nil {
		return fmt.Errorf("delete autopilot %d: list tasks: %w: %w", id, domain.ErrRemoteFailure, err)
	}
	for _, task := range tasks {
		n, err := u.emails.DeleteByTask(ctx, task.ID)
		if err != nil {
			return fmt.Errorf("delete autopilot %d: emails of task %d: %w: %w", id, task.ID, domain.ErrRemoteFailure, err)
		}
		if err = u.tasks.Delete(ctx, task.ID); err != nil {
			return fmt.Errorf("delete autopilot %d: task %d: %w: %w", id, task.ID, domain.ErrRemoteFailure, err)
		}
		u.logger.Debug("task removed",
			slog.Int64("autopilot_id", id),
			slog.Int64("task_id", task.ID),
			slog.Int64("emails", n),
		)
	}

	existed, err := u.autopilots.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete autopilot %d: %w: %w", id, domain.ErrRemoteFailure, err)
	}
	if !existed {
		return fmt.Errorf("autopilot %d: %w", id, domain.ErrNotFound)
	}
	u.logger.Info("autopilot deleted", slog.Int64("autopilot_id", id), slog.Int("tasks", len(tasks)))
	return nil
}

// numericOffer translates an external offer id. An empty or unmapped id
// yields nil, which is stored as "no offer selected".
func (u *AutopilotUseCase) numericOffer(externalID string) *int64 {
	if externalID == "" {
		return nil
	}
	num, err := u.offers.ToNumeric(externalID)
	if err != nil {
		u.logger.Debug("offer not mapped, storing without offer", slog.String("offer", externalID))
		return nil
	}
	return &num
}
