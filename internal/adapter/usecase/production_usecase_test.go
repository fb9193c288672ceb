package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"campaign-autopilot/internal/adapter/memory"
	"campaign-autopilot/internal/core/domain"
	"campaign-autopilot/internal/core/port"
	"campaign-autopilot/internal/core/port/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productionFixture struct {
	store      *memory.Store
	registry   *AutopilotUseCase
	dispatcher *mocks.MockProductionDispatcher
	svc        *ProductionUseCase
}

func newProductionFixture(t *testing.T) *productionFixture {
	s := memory.NewStore()
	s.PutOffer(domain.Offer{ExternalID: "recA", Name: "Spring sale", Goal: "sales"})
	s.PutOffer(domain.Offer{ExternalID: "recB", Name: "Webinar", Goal: "signups"})

	mapping := testMapping(t)
	reg := NewAutopilotUseCase(s.Autopilots(), s.Tasks(), s.Emails(), mapping, nil, discardLogger())
	disp := mocks.NewMockProductionDispatcher(t)
	svc := NewProductionUseCase(ProductionDeps{
		Registry:   reg,
		Autopilots: s.Autopilots(),
		Tasks:      s.Tasks(),
		Offers:     s.Offers(),
		Mapping:    mapping,
		Dispatcher: disp,
		Logger:     discardLogger(),
	})
	return &productionFixture{store: s, registry: reg, dispatcher: disp, svc: svc}
}

func (f *productionFixture) create(t *testing.T, listID int64, offer string) domain.Autopilot {
	t.Helper()
	ap, err := f.registry.Create(context.Background(), port.CreateAutopilotReq{
		ListID: listID, ScheduleID: domain.ScheduleOnceDaily, OfferID: offer, OwnerAgent: "acme", OwnerUser: 7,
	})
	require.NoError(t, err)
	return *ap
}

// TestStartProductionSkipsMissingOffer runs three autopilots where the
// middle one has no offer; the other two must still be dispatched.
func TestStartProductionSkipsMissingOffer(t *testing.T) {
	f := newProductionFixture(t)
	a := f.create(t, 1, "recA")
	b := f.create(t, 2, "")
	c := f.create(t, 3, "recB")

	var dispatched []port.ProductionRequest
	f.dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.AnythingOfType("port.ProductionRequest")).
		Run(func(_ context.Context, req port.ProductionRequest) {
			dispatched = append(dispatched, req)
		}).
		Return(nil).
		Times(2)
	// settleAll runs pipelines concurrently; serialise appends.
	f.svc.concurrency = 1

	report := f.svc.StartProduction(context.Background(), []domain.Autopilot{a, b, c})

	assert.Equal(t, 2, report.Dispatched)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 0, report.Failed)
	require.Len(t, report.Items, 3)
	assert.Equal(t, a.ID, report.Items[0].AutopilotID)
	assert.Equal(t, port.ProductionSkippedNoOffer, report.Items[1].Outcome)
	assert.Equal(t, port.ProductionDispatched, report.Items[2].Outcome)

	for _, req := range dispatched {
		assert.Equal(t, "acme", req.Agent)
		assert.EqualValues(t, 7, req.OwnerUser)
		assert.NotZero(t, req.TaskID)
		assert.NotEqual(t, b.ID, req.AutopilotID)
	}

	// the skipped autopilot still got its task
	tasks, err := f.store.Tasks().ListByAutopilot(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestStartProductionIsolatesDispatchFailure(t *testing.T) {
	f := newProductionFixture(t)
	a := f.create(t, 1, "recA")
	b := f.create(t, 2, "recB")

	f.dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(r port.ProductionRequest) bool { return r.AutopilotID == a.ID })).
		Return(errors.New("503 service unavailable"))
	f.dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(r port.ProductionRequest) bool { return r.AutopilotID == b.ID })).
		Return(nil)

	report := f.svc.StartProduction(context.Background(), []domain.Autopilot{a, b})

	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Dispatched)
	assert.Equal(t, port.ProductionFailed, report.Items[0].Outcome)
	assert.Contains(t, report.Items[0].Reason, "dispatch")
}

func TestStartProductionOfferRecordMissing(t *testing.T) {
	f := newProductionFixture(t)
	ap := f.create(t, 1, "recA")

	// mapped, but the offer record is unknown to the store
	m, err := domain.NewOfferMapping(map[string]int64{"recZ": 1})
	require.NoError(t, err)
	f.svc.mapping = m

	report := f.svc.StartProduction(context.Background(), []domain.Autopilot{ap})
	assert.Equal(t, 1, report.Skipped)
}

func TestStartProductionPausedFails(t *testing.T) {
	f := newProductionFixture(t)
	ap := f.create(t, 1, "recA")
	ap.Status = domain.AutopilotPaused

	report := f.svc.StartProduction(context.Background(), []domain.Autopilot{ap})
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, "autopilot is paused", report.Items[0].Reason)
}

func TestStartProductionByIDs(t *testing.T) {
	f := newProductionFixture(t)
	a := f.create(t, 1, "recA")
	f.dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(nil).Once()

	report, err := f.svc.StartProductionByIDs(context.Background(), "acme", []int64{404, a.ID})
	require.NoError(t, err)
	require.Len(t, report.Items, 2)
	assert.Equal(t, int64(404), report.Items[0].AutopilotID)
	assert.Equal(t, port.ProductionFailed, report.Items[0].Outcome)
	assert.Equal(t, port.ProductionDispatched, report.Items[1].Outcome)

	_, err = f.svc.StartProductionByIDs(context.Background(), "", []int64{a.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestStartProductionByIDsCollapsesDuplicates(t *testing.T) {
	f := newProductionFixture(t)
	a := f.create(t, 1, "recA")
	f.dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(nil).Once()

	report, err := f.svc.StartProductionByIDs(context.Background(), "acme", []int64{a.ID, a.ID})
	require.NoError(t, err)
	require.Len(t, report.Items, 1)
	assert.Equal(t, 1, report.Dispatched)

	tasks, err := f.store.Tasks().ListByAutopilot(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

// TestStartProductionOutlivesCaller cancels the caller's context while the
// dispatch is in flight; the dispatch must still complete.
func TestStartProductionOutlivesCaller(t *testing.T) {
	f := newProductionFixture(t)
	a := f.create(t, 1, "recA")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.Anything).
		RunAndReturn(func(callCtx context.Context, _ port.ProductionRequest) error {
			cancel()
			select {
			case <-callCtx.Done():
				return callCtx.Err()
			case <-time.After(50 * time.Millisecond):
				return nil
			}
		})

	report := f.svc.StartProduction(ctx, []domain.Autopilot{a})
	require.Len(t, report.Items, 1)
	assert.Equal(t, port.ProductionDispatched, report.Items[0].Outcome, report.Items[0].Reason)
}

func TestStartProductionByIDsForeignAgent(t *testing.T) {
	f := newProductionFixture(t)
	a := f.create(t, 1, "recA")

	report, err := f.svc.StartProductionByIDs(context.Background(), "intruder", []int64{a.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
}

func TestRegisterAndProduce(t *testing.T) {
	f := newProductionFixture(t)
	f.dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(nil).Once()

	req := port.CreateAutopilotReq{ListID: 9, ScheduleID: domain.ScheduleTwiceDaily, OfferID: "recA", OwnerAgent: "acme"}
	res, err := f.svc.RegisterAndProduce(context.Background(), req)
	require.NoError(t, err)
	assert.NotZero(t, res.Autopilot.ID)
	assert.Equal(t, 1, res.Report.Dispatched)

	// a conflicting registration never reaches the dispatcher
	_, err = f.svc.RegisterAndProduce(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRefreshDueAdvancesNextUpdate(t *testing.T) {
	ctx := context.Background()
	f := newProductionFixture(t)
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	f.registry.now = func() time.Time { return now }
	ok := f.create(t, 1, "recA")
	broken := f.create(t, 2, "recB")
	_ = f.create(t, 3, "recA")

	require.NoError(t, f.store.Autopilots().SetNextUpdate(ctx, ok.ID, now.Add(-time.Hour)))
	require.NoError(t, f.store.Autopilots().SetNextUpdate(ctx, broken.ID, now.Add(-time.Minute)))

	var calls atomic.Int32
	f.dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req port.ProductionRequest) error {
			calls.Add(1)
			if req.AutopilotID == broken.ID {
				return errors.New("boom")
			}
			return nil
		})

	report, err := f.svc.RefreshDue(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 2, calls.Load())
	assert.Equal(t, 1, report.Dispatched)
	assert.Equal(t, 1, report.Failed)

	got, err := f.store.Autopilots().Get(ctx, ok.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.NextUpdateFrom(now, time.UTC), got.NextUpdate)

	got, err = f.store.Autopilots().Get(ctx, broken.ID)
	require.NoError(t, err)
	assert.Equal(t, now.Add(-time.Minute), got.NextUpdate)
}

func TestRefreshDueStoreError(t *testing.T) {
	repo := mocks.NewMockAutopilotRepository(t)
	repo.EXPECT().ListDue(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	svc := NewProductionUseCase(ProductionDeps{Autopilots: repo, Logger: discardLogger()})
	_, err := svc.RefreshDue(context.Background(), time.Now())
	assert.ErrorIs(t, err, domain.ErrRemoteFailure)
}
