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

// ProductionUseCase is the production orchestrator. Every autopilot runs
// its own pipeline (task, offer, dispatch); a failing pipeline is recorded
// against its autopilot and never stops the others.
type ProductionUseCase struct {
	registry   port.AutopilotRegistry
	autopilots port.AutopilotRepository
	tasks      port.TaskRepository
	offers     port.OfferRepository
	mapping    *domain.OfferMapping
	dispatcher port.ProductionDispatcher
	recorder   port.OutcomeRecorder
	logger     *slog.Logger
	loc        *time.Location

	// concurrency caps in-flight pipelines; <= 0 means unbounded.
	concurrency int
}

// ProductionDeps groups the collaborators of the orchestrator.
type ProductionDeps struct {
	Registry    port.AutopilotRegistry
	Autopilots  port.AutopilotRepository
	Tasks       port.TaskRepository
	Offers      port.OfferRepository
	Mapping     *domain.OfferMapping
	Dispatcher  port.ProductionDispatcher
	Recorder    port.OutcomeRecorder
	Logger      *slog.Logger
	Concurrency int
	// Location is the zone whose midnight next updates snap to. Nil means UTC.
	Location *time.Location
}

// NewProductionUseCase creates the orchestrator. A nil Recorder disables
// outcome recording.
func NewProductionUseCase(d ProductionDeps) *ProductionUseCase {
	rec := d.Recorder
	if rec == nil {
		rec = nopRecorder{}
	}
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}
	return &ProductionUseCase{
		registry:    d.Registry,
		autopilots:  d.Autopilots,
		tasks:       d.Tasks,
		offers:      d.Offers,
		mapping:     d.Mapping,
		dispatcher:  d.Dispatcher,
		recorder:    rec,
		logger:      d.Logger,
		loc:         loc,
		concurrency: d.Concurrency,
	}
}

// StartProduction runs the pipelines of all autopilots concurrently and
// returns after every one has settled. Items keep the input order. A
// pipeline is not cancelled with ctx once started; remote calls are bounded
// by the client timeouts.
func (u *ProductionUseCase) StartProduction(ctx context.Context, autopilots []domain.Autopilot) port.ProductionReport {
	itemCtx := context.WithoutCancel(ctx)
	items := make([]port.ProductionItem, len(autopilots))
	settleAll(len(autopilots), u.concurrency, func(i int) {
		items[i] = u.produce(itemCtx, autopilots[i])
		u.recorder.RecordProduction(items[i].Outcome)
	})
	return summarize(items)
}

// produce is the pipeline of one autopilot: create the task, resolve the
// offer, dispatch the request.
func (u *ProductionUseCase) produce(ctx context.Context, ap domain.Autopilot) port.ProductionItem {
	item := port.ProductionItem{AutopilotID: ap.ID}
	if !ap.Active() {
		return u.failed(item, "autopilot is paused", nil)
	}

	task := &domain.AutopilotTask{AutopilotID: ap.ID, OwnerUser: ap.OwnerUser, Status: domain.TaskPending}
	if err := u.tasks.Create(ctx, task); err != nil {
		return u.failed(item, "create task", err)
	}
	item.TaskID = task.ID

	offer, err := u.resolveOffer(ctx, ap)
	if errors.Is(err, domain.ErrNotFound) {
		item.Outcome = port.ProductionSkippedNoOffer
		item.Reason = err.Error()
		u.logger.Info("production skipped, no offer",
			slog.Int64("autopilot_id", ap.ID),
			slog.Int64("task_id", task.ID),
		)
		return item
	}
	if err != nil {
		return u.failed(item, "resolve offer", err)
	}

	req := port.ProductionRequest{
		Agent:       ap.OwnerAgent,
		ListID:      ap.ListID,
		OwnerUser:   ap.OwnerUser,
		AutopilotID: ap.ID,
		TaskID:      task.ID,
		OfferGoal:   offer.Goal,
		OfferName:   offer.Name,
		ScheduleID:  ap.ScheduleID,
	}
	if err = u.dispatcher.Dispatch(ctx, req); err != nil {
		return u.failed(item, "dispatch", err)
	}

	item.Outcome = port.ProductionDispatched
	u.logger.Info("production dispatched",
		slog.Int64("autopilot_id", ap.ID),
		slog.Int64("task_id", task.ID),
		slog.String("offer", offer.ExternalID),
	)
	return item
}

func (u *ProductionUseCase) failed(item port.ProductionItem, step string, err error) port.ProductionItem {
	item.Outcome = port.ProductionFailed
	item.Reason = step
	if err != nil {
		item.Reason = fmt.Sprintf("%s: %v", step, err)
	}
	u.logger.Warn("production failed",
		slog.Int64("autopilot_id", item.AutopilotID),
		slog.String("step", step),
		slog.Any("error", err),
	)
	return item
}

// resolveOffer goes from the numeric offer id on the autopilot to the offer
// record. Every way of not finding an offer yields domain.ErrNotFound.
func (u *ProductionUseCase) resolveOffer(ctx context.Context, ap domain.Autopilot) (*domain.Offer, error) {
	if ap.OfferID == nil {
		return nil, fmt.Errorf("no offer selected: %w", domain.ErrNotFound)
	}
	ext, err := u.mapping.ToExternal(*ap.OfferID)
	if err != nil {
		return nil, err
	}
	offer, err := u.offers.GetByExternalID(ctx, ext)
	if err != nil {
		return nil, fmt.Errorf("offer %q: %w: %w", ext, domain.ErrRemoteFailure, err)
	}
	if offer == nil {
		return nil, fmt.Errorf("offer %q: %w", ext, domain.ErrNotFound)
	}
	return offer, nil
}

// StartProductionByIDs loads the autopilots by id and starts production.
// Ids that are unknown or owned by another agent are reported as failed.
// Repeated ids are produced once.
func (u *ProductionUseCase) StartProductionByIDs(ctx context.Context, agent string, ids []int64) (port.ProductionReport, error) {
	if agent == "" || len(ids) == 0 {
		return port.ProductionReport{}, fmt.Errorf("start production: agent=%q ids=%d: %w", agent, len(ids), domain.ErrInvalidRequest)
	}
	ids = uniqueIDs(ids)
	aps, err := u.autopilots.ListByIDs(ctx, ids)
	if err != nil {
		return port.ProductionReport{}, fmt.Errorf("start production: load autopilots: %w: %w", domain.ErrRemoteFailure, err)
	}
	byID := make(map[int64]domain.Autopilot, len(aps))
	for _, ap := range aps {
		if ap.OwnerAgent == agent {
			byID[ap.ID] = ap
		}
	}

	found := make([]domain.Autopilot, 0, len(ids))
	for _, id := range ids {
		if ap, ok := byID[id]; ok {
			found = append(found, ap)
		}
	}
	produced := u.StartProduction(ctx, found)

	items := make([]port.ProductionItem, 0, len(ids))
	next := 0
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			items = append(items, port.ProductionItem{AutopilotID: id, Outcome: port.ProductionFailed, Reason: domain.ErrNotFound.Error()})
			u.recorder.RecordProduction(port.ProductionFailed)
			continue
		}
		items = append(items, produced.Items[next])
		next++
	}
	return summarize(items), nil
}

// RegisterAndProduce registers an autopilot and starts its first
// production cycle. Production is not attempted when registration fails.
func (u *ProductionUseCase) RegisterAndProduce(ctx context.Context, req port.CreateAutopilotReq) (*port.RegisterResult, error) {
	ap, err := u.registry.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	report := u.StartProduction(ctx, []domain.Autopilot{*ap})
	return &port.RegisterResult{Autopilot: ap, Report: report}, nil
}

// RefreshDue starts production for the active autopilots whose next update
// is due at now. Autopilots that were dispatched or have no offer get
// their next update moved forward; failed ones stay due for the next run.
func (u *ProductionUseCase) RefreshDue(ctx context.Context, now time.Time) (port.ProductionReport, error) {
	due, err := u.autopilots.ListDue(ctx, now)
	if err != nil {
		return port.ProductionReport{}, fmt.Errorf("refresh: list due autopilots: %w: %w", domain.ErrRemoteFailure, err)
	}
	if len(due) == 0 {
		return summarize(nil), nil
	}

	report := u.StartProduction(ctx, due)
	next := domain.NextUpdateFrom(now, u.loc)
	for _, item := range report.Items {
		if item.Outcome == port.ProductionFailed {
			continue
		}
		if err = u.autopilots.SetNextUpdate(ctx, item.AutopilotID, next); err != nil {
			u.logger.Error("advance next update failed",
				slog.Int64("autopilot_id", item.AutopilotID),
				slog.Any("error", err),
			)
		}
	}
	u.logger.Info("refresh completed",
		slog.Int("due", len(due)),
		slog.Int("dispatched", report.Dispatched),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
	)
	return report, nil
}

func summarize(items []port.ProductionItem) port.ProductionReport {
	r := port.ProductionReport{Items: items}
	if r.Items == nil {
		r.Items = []port.ProductionItem{}
	}
	for _, it := range items {
		switch it.Outcome {
		case port.ProductionDispatched:
			r.Dispatched++
		case port.ProductionSkippedNoOffer:
			r.Skipped++
		default:
			r.Failed++
		}
	}
	return r
}
