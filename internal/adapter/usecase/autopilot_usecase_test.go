package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"sync"
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

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testMapping(t *testing.T) *domain.OfferMapping {
	t.Helper()
	m, err := domain.NewOfferMapping(map[string]int64{"recA": 1, "recB": 2})
	require.NoError(t, err)
	return m
}

func newRegistry(t *testing.T, s *memory.Store) *AutopilotUseCase {
	return NewAutopilotUseCase(s.Autopilots(), s.Tasks(), s.Emails(), testMapping(t), nil, discardLogger())
}

func TestCreateRejectsSameSlot(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry(t, memory.NewStore())

	req := port.CreateAutopilotReq{ListID: 42, ScheduleID: domain.ScheduleOnceDaily, OfferID: "recA", OwnerAgent: "acme", OwnerUser: 7}
	first, err := reg.Create(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, first.OfferID)
	assert.EqualValues(t, 1, *first.OfferID)
	assert.Equal(t, domain.AutopilotActive, first.Status)

	_, err = reg.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrConflict)

	req.ScheduleID = domain.ScheduleTwiceDaily
	_, err = reg.Create(ctx, req)
	assert.NoError(t, err)

	aps, err := reg.ListByAgent(ctx, "acme")
	require.NoError(t, err)
	assert.Len(t, aps, 2)
}

func TestCreateSetsNextUpdateAtMidnight(t *testing.T) {
	reg := newRegistry(t, memory.NewStore())
	reg.now = func() time.Time { return time.Date(2026, 3, 10, 15, 42, 0, 0, time.UTC) }

	ap, err := reg.Create(context.Background(), port.CreateAutopilotReq{
		ListID: 1, ScheduleID: domain.ScheduleOnceDaily, OwnerAgent: "acme",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC), ap.NextUpdate)
	assert.Nil(t, ap.OfferID)
}

func TestCreateNextUpdateInRegistryZone(t *testing.T) {
	s := memory.NewStore()
	plus3 := time.FixedZone("UTC+3", 3*60*60)
	reg := NewAutopilotUseCase(s.Autopilots(), s.Tasks(), s.Emails(), testMapping(t), plus3, discardLogger())
	reg.now = func() time.Time { return time.Date(2026, 3, 10, 22, 30, 0, 0, time.UTC) }

	ap, err := reg.Create(context.Background(), port.CreateAutopilotReq{
		ListID: 1, ScheduleID: domain.ScheduleOnceDaily, OwnerAgent: "acme",
	})
	require.NoError(t, err)
	want := time.Date(2026, 3, 18, 0, 0, 0, 0, plus3)
	assert.True(t, ap.NextUpdate.Equal(want), "got %s, want %s", ap.NextUpdate, want)
}

func TestCreateInvalidRequest(t *testing.T) {
	reg := newRegistry(t, memory.NewStore())
	cases := map[string]port.CreateAutopilotReq{
		"no list":      {ScheduleID: domain.ScheduleOnceDaily, OwnerAgent: "acme"},
		"bad schedule": {ListID: 1, ScheduleID: "hourly", OwnerAgent: "acme"},
		"no agent":     {ListID: 1, ScheduleID: domain.ScheduleOnceDaily},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := reg.Create(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		})
	}
}

// TestConcurrentCreateSingleWinner fires identical registrations at once;
// exactly one may succeed.
func TestConcurrentCreateSingleWinner(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry(t, memory.NewStore())
	req := port.CreateAutopilotReq{ListID: 5, ScheduleID: domain.ScheduleOnceDaily, OwnerAgent: "acme"}

	const n = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok, clash int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := reg.Create(ctx, req)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, domain.ErrConflict):
				clash++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if ok != 1 || clash != n-1 {
		t.Fatalf("expected 1 success and %d conflicts, got %d and %d", n-1, ok, clash)
	}
}

// TestConflictCheckFailsClosed makes sure a failing registry read blocks
// registration instead of allowing a duplicate.
func TestConflictCheckFailsClosed(t *testing.T) {
	repo := mocks.NewMockAutopilotRepository(t)
	repo.EXPECT().
		ListByAgent(mock.Anything, "acme").
		Return(nil, errors.New("connection reset"))

	reg := NewAutopilotUseCase(repo, nil, nil, testMapping(t), nil, discardLogger())

	if !reg.ExistsConflict(context.Background(), 1, domain.ScheduleOnceDaily, "acme") {
		t.Fatalf("expected conflict on store error")
	}
	_, err := reg.Create(context.Background(), port.CreateAutopilotReq{ListID: 1, ScheduleID: domain.ScheduleOnceDaily, OwnerAgent: "acme"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestStoreConflictOnInsertSurfaces(t *testing.T) {
	repo := mocks.NewMockAutopilotRepository(t)
	repo.EXPECT().ListByAgent(mock.Anything, "acme").Return([]domain.Autopilot{}, nil)
	repo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Autopilot")).
		Return(domain.ErrConflict)

	reg := NewAutopilotUseCase(repo, nil, nil, testMapping(t), nil, discardLogger())
	_, err := reg.Create(context.Background(), port.CreateAutopilotReq{ListID: 1, ScheduleID: domain.ScheduleOnceDaily, OwnerAgent: "acme"})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NotErrorIs(t, err, domain.ErrRemoteFailure)
}

func TestValidateSelections(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry(t, memory.NewStore())
	_, err := reg.Create(ctx, port.CreateAutopilotReq{ListID: 1, ScheduleID: domain.ScheduleOnceDaily, OwnerAgent: "acme"})
	require.NoError(t, err)

	got := reg.ValidateSelections(ctx, "acme", domain.ScheduleOnceDaily, []int64{1, 2})
	assert.Equal(t, []port.ListAvailability{{ListID: 1, Available: false}, {ListID: 2, Available: true}}, got)

	got = reg.ValidateSelections(ctx, "acme", domain.ScheduleTwiceDaily, []int64{1})
	assert.True(t, got[0].Available)
}

func TestUpdateRechecksConflictOnListChange(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry(t, memory.NewStore())
	a, err := reg.Create(ctx, port.CreateAutopilotReq{ListID: 1, ScheduleID: domain.ScheduleOnceDaily, OwnerAgent: "acme"})
	require.NoError(t, err)
	_, err = reg.Create(ctx, port.CreateAutopilotReq{ListID: 2, ScheduleID: domain.ScheduleOnceDaily, OwnerAgent: "acme"})
	require.NoError(t, err)

	_, err = reg.Update(ctx, port.UpdateAutopilotReq{ID: a.ID, ListID: 2, Active: true})
	assert.ErrorIs(t, err, domain.ErrConflict)

	upd, err := reg.Update(ctx, port.UpdateAutopilotReq{ID: a.ID, ListID: 1, OfferID: "recB", Active: false})
	require.NoError(t, err)
	assert.Equal(t, domain.AutopilotPaused, upd.Status)
	require.NotNil(t, upd.OfferID)
	assert.EqualValues(t, 2, *upd.OfferID)

	_, err = reg.Update(ctx, port.UpdateAutopilotReq{ID: 999, ListID: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteCascades(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	reg := newRegistry(t, s)

	ap, err := reg.Create(ctx, port.CreateAutopilotReq{ListID: 3, ScheduleID: domain.ScheduleOnceDaily, OwnerAgent: "acme"})
	require.NoError(t, err)

	var taskIDs []int64
	for i := 0; i < 2; i++ {
		task := &domain.AutopilotTask{AutopilotID: ap.ID}
		require.NoError(t, s.Tasks().Create(ctx, task))
		taskIDs = append(taskIDs, task.ID)
		s.PutEmail(domain.Email{TaskID: task.ID, ListID: 3, OwnerAgent: "acme"})
		s.PutEmail(domain.Email{TaskID: task.ID, ListID: 3, OwnerAgent: "acme"})
	}
	unrelated := s.PutEmail(domain.Email{TaskID: 9999, ListID: 3, OwnerAgent: "acme"})

	require.NoError(t, reg.Delete(ctx, ap.ID))

	_, err = reg.Get(ctx, ap.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	tasks, err := s.Tasks().ListByAutopilot(ctx, ap.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)
	for _, id := range taskIDs {
		assert.Empty(t, s.Emails().ListByTask(id))
	}
	assert.Len(t, s.Emails().ListByTask(unrelated.TaskID), 1)

	assert.ErrorIs(t, reg.Delete(ctx, ap.ID), domain.ErrNotFound)
}

// TestDeleteOrder checks emails go before their task and the autopilot row
// goes last.
func TestDeleteOrder(t *testing.T) {
	autopilots := mocks.NewMockAutopilotRepository(t)
	tasks := mocks.NewMockTaskRepository(t)
	emails := mocks.NewMockEmailRepository(t)

	var steps []string
	autopilots.EXPECT().Get(mock.Anything, int64(1)).Return(&domain.Autopilot{ID: 1}, nil)
	tasks.EXPECT().ListByAutopilot(mock.Anything, int64(1)).
		Return([]domain.AutopilotTask{{ID: 10}, {ID: 11}}, nil)
	emails.EXPECT().DeleteByTask(mock.Anything, mock.Anything).
		Run(func(_ context.Context, id int64) { steps = append(steps, "emails", strconv.FormatInt(id, 10)) }).
		Return(1, nil)
	tasks.EXPECT().Delete(mock.Anything, mock.Anything).
		Run(func(_ context.Context, id int64) { steps = append(steps, "task", strconv.FormatInt(id, 10)) }).
		Return(nil)
	autopilots.EXPECT().Delete(mock.Anything, int64(1)).
		Run(func(context.Context, int64) { steps = append(steps, "autopilot") }).
		Return(true, nil)

	reg := NewAutopilotUseCase(autopilots, tasks, emails, testMapping(t), nil, discardLogger())
	require.NoError(t, reg.Delete(context.Background(), 1))

	assert.Equal(t, []string{"emails", "10", "task", "10", "emails", "11", "task", "11", "autopilot"}, steps)
}

func TestDeleteStopsOnEmailFailure(t *testing.T) {
	autopilots := mocks.NewMockAutopilotRepository(t)
	tasks := mocks.NewMockTaskRepository(t)
	emails := mocks.NewMockEmailRepository(t)

	autopilots.EXPECT().Get(mock.Anything, int64(1)).Return(&domain.Autopilot{ID: 1}, nil)
	tasks.EXPECT().ListByAutopilot(mock.Anything, int64(1)).Return([]domain.AutopilotTask{{ID: 10}}, nil)
	emails.EXPECT().DeleteByTask(mock.Anything, int64(10)).Return(0, errors.New("timeout"))

	reg := NewAutopilotUseCase(autopilots, tasks, emails, testMapping(t), nil, discardLogger())
	err := reg.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrRemoteFailure)
}
