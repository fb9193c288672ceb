package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"campaign-autopilot/internal/core/domain"
	"campaign-autopilot/internal/core/port"
)

// EmailUseCase is the email lifecycle manager. Bulk transitions notify the
// callback endpoint once per email, concurrently, persist each successful
// transition, and read the email set back from the store exactly once
// after every item has settled.
type EmailUseCase struct {
	emails    port.EmailRepository
	callbacks port.EmailCallbackClient
	recorder  port.OutcomeRecorder
	logger    *slog.Logger

	now         func() time.Time
	concurrency int
}

// NewEmailUseCase creates the lifecycle manager. A nil recorder disables
// outcome recording; concurrency <= 0 means unbounded.
func NewEmailUseCase(
	emails port.EmailRepository,
	callbacks port.EmailCallbackClient,
	recorder port.OutcomeRecorder,
	logger *slog.Logger,
	concurrency int,
) *EmailUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &EmailUseCase{
		emails:      emails,
		callbacks:   callbacks,
		recorder:    recorder,
		logger:      logger,
		now:         time.Now,
		concurrency: concurrency,
	}
}

// transition describes one bulk operation. check returns a non-empty
// outcome when the email must be skipped without a callback.
type transition struct {
	action port.CallbackAction
	check  func(e domain.Email, now time.Time) port.ItemOutcome
	apply  func(ctx context.Context, e domain.Email) error
}

// BulkApprove moves draft emails to approved.
func (u *EmailUseCase) BulkApprove(ctx context.Context, req port.BatchRequest) (*port.BatchResult, error) {
	return u.bulk(ctx, req, transition{
		action: port.CallbackApprove,
		check: func(e domain.Email, _ time.Time) port.ItemOutcome {
			if e.Status != domain.EmailDraft {
				return port.ItemSkippedInvalidState
			}
			return ""
		},
		apply: func(ctx context.Context, e domain.Email) error {
			return u.emails.SetStatus(ctx, e.ID, domain.EmailApproved)
		},
	})
}

// BulkRevert moves approved emails back to draft. Emails whose scheduled
// time is not strictly in the future are skipped without a callback.
func (u *EmailUseCase) BulkRevert(ctx context.Context, req port.BatchRequest) (*port.BatchResult, error) {
	return u.bulk(ctx, req, transition{
		action: port.CallbackRevert,
		check: func(e domain.Email, now time.Time) port.ItemOutcome {
			if e.Status != domain.EmailApproved {
				return port.ItemSkippedInvalidState
			}
			if !e.Revertible(now) {
				return port.ItemSkippedNotFuture
			}
			return ""
		},
		apply: func(ctx context.Context, e domain.Email) error {
			return u.emails.SetStatus(ctx, e.ID, domain.EmailDraft)
		},
	})
}

// BulkDelete removes draft emails.
func (u *EmailUseCase) BulkDelete(ctx context.Context, req port.BatchRequest) (*port.BatchResult, error) {
	return u.bulk(ctx, req, transition{
		action: port.CallbackDelete,
		check: func(e domain.Email, _ time.Time) port.ItemOutcome {
			if e.Status != domain.EmailDraft {
				return port.ItemSkippedInvalidState
			}
			return ""
		},
		apply: func(ctx context.Context, e domain.Email) error {
			return u.emails.Delete(ctx, e.ID)
		},
	})
}

func (u *EmailUseCase) bulk(ctx context.Context, req port.BatchRequest, t transition) (*port.BatchResult, error) {
	if len(req.EmailIDs) == 0 {
		return nil, fmt.Errorf("%s: empty email set: %w", t.action, domain.ErrInvalidRequest)
	}
	if !req.Owner.Authenticated() {
		return nil, fmt.Errorf("%s: missing owner: %w", t.action, domain.ErrInvalidRequest)
	}

	ids := uniqueIDs(req.EmailIDs)
	found, err := u.emails.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: load emails: %w: %w", t.action, domain.ErrRemoteFailure, err)
	}
	byID := make(map[int64]domain.Email, len(found))
	for _, e := range found {
		if e.OwnerAgent == req.Owner.Agent {
			byID[e.ID] = e
		}
	}

	now := u.now()
	items := make([]port.BatchItem, len(ids))
	pending := make([]int, 0, len(ids))
	for i, id := range ids {
		items[i].EmailID = id
		e, ok := byID[id]
		if !ok {
			items[i].Outcome = port.ItemNotFound
			continue
		}
		if skip := t.check(e, now); skip != "" {
			items[i].Outcome = skip
			if skip == port.ItemSkippedNotFuture {
				items[i].Reason = domain.ErrSkippedNotFuture.Error()
			}
			continue
		}
		pending = append(pending, i)
	}

	// Items already started run to completion even if the caller goes away.
	itemCtx := context.WithoutCancel(ctx)
	settleAll(len(pending), u.concurrency, func(j int) {
		i := pending[j]
		items[i] = u.apply(itemCtx, t, req.Owner, byID[ids[i]])
	})

	result := tally(items)
	for _, it := range items {
		u.recorder.RecordEmailTransition(t.action, it.Outcome)
	}
	u.logger.Info("bulk transition settled",
		slog.String("action", string(t.action)),
		slog.String("agent", req.Owner.Agent),
		slog.Int("success", result.Success),
		slog.Int("failed", result.Failed),
		slog.Int("skipped", result.Skipped),
	)

	emails, err := u.refresh(ctx, req, ids)
	if err != nil {
		return result, fmt.Errorf("%s: refresh emails: %w: %w", t.action, domain.ErrRemoteFailure, err)
	}
	result.Emails = emails
	return result, nil
}

// apply runs the callback and, on success, persists the transition.
func (u *EmailUseCase) apply(ctx context.Context, t transition, owner domain.Owner, e domain.Email) port.BatchItem {
	item := port.BatchItem{EmailID: e.ID}
	err := u.callbacks.Notify(ctx, t.action, port.CallbackRequest{
		Agent:           owner.Agent,
		UserID:          owner.UserID,
		EmailID:         e.ID,
		ExternalEmailID: e.ExternalEmailID,
	})
	if err != nil {
		item.Outcome = port.ItemFailed
		item.Reason = err.Error()
		u.logger.Warn("email callback failed",
			slog.String("action", string(t.action)),
			slog.Int64("email_id", e.ID),
			slog.Any("error", err),
		)
		return item
	}
	if err = t.apply(ctx, e); err != nil {
		item.Outcome = port.ItemFailed
		item.Reason = "persist: " + err.Error()
		u.logger.Error("email transition not persisted",
			slog.String("action", string(t.action)),
			slog.Int64("email_id", e.ID),
			slog.Any("error", err),
		)
		return item
	}
	item.Outcome = port.ItemSucceeded
	return item
}

// refresh reads the authoritative email set: the owner's list when the
// request names one, otherwise the requested emails.
func (u *EmailUseCase) refresh(ctx context.Context, req port.BatchRequest, ids []int64) ([]domain.Email, error) {
	if req.ListID > 0 {
		return u.emails.ListByOwnerAndList(ctx, req.Owner.Agent, req.ListID)
	}
	return u.emails.ListByIDs(ctx, ids)
}

// ListByOwnerAndList returns the emails of an agent's list.
func (u *EmailUseCase) ListByOwnerAndList(ctx context.Context, agent string, listID int64) ([]domain.Email, error) {
	if agent == "" || listID <= 0 {
		return nil, fmt.Errorf("list emails agent=%q list=%d: %w", agent, listID, domain.ErrInvalidRequest)
	}
	emails, err := u.emails.ListByOwnerAndList(ctx, agent, listID)
	if err != nil {
		return nil, fmt.Errorf("list emails: %w: %w", domain.ErrRemoteFailure, err)
	}
	return emails, nil
}

// Selectable partitions emails at the current time.
func (u *EmailUseCase) Selectable(emails []domain.Email) domain.Selection {
	return domain.Partition(emails, u.now())
}

func tally(items []port.BatchItem) *port.BatchResult {
	r := &port.BatchResult{Items: items}
	for _, it := range items {
		switch it.Outcome {
		case port.ItemSucceeded:
			r.Success++
		case port.ItemSkippedNotFuture, port.ItemSkippedInvalidState:
			r.Skipped++
		default:
			r.Failed++
		}
	}
	return r
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
