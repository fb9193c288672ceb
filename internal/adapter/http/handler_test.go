package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-autopilot/internal/core/domain"
	"campaign-autopilot/internal/core/port"
	"campaign-autopilot/internal/core/port/mocks"
)

type fixture struct {
	registry   *mocks.MockAutopilotRegistry
	production *mocks.MockProductionOrchestrator
	emails     *mocks.MockEmailLifecycle
	handler    http.Handler
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		registry:   mocks.NewMockAutopilotRegistry(t),
		production: mocks.NewMockProductionOrchestrator(t),
		emails:     mocks.NewMockEmailLifecycle(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.handler = NewHandler(Services{Registry: f.registry, Production: f.production, Emails: f.emails}, logger, 0).Router()
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestCreateAutopilot(t *testing.T) {
	f := newFixture(t)
	f.registry.EXPECT().
		Create(mock.Anything, port.CreateAutopilotReq{ListID: 42, ScheduleID: domain.ScheduleOnceDaily, OfferID: "recA", OwnerAgent: "acme", OwnerUser: 7}).
		Return(&domain.Autopilot{ID: 1, ListID: 42, ScheduleID: domain.ScheduleOnceDaily, OwnerAgent: "acme"}, nil)

	rec := f.do(http.MethodPost, "/api/v1/autopilots", `{"listId":42,"scheduleId":"once-daily","offerId":"recA","agent":"acme","userId":7}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var ap domain.Autopilot
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&ap))
	assert.EqualValues(t, 1, ap.ID)
}

func TestCreateAutopilotErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"conflict", fmt.Errorf("slot: %w", domain.ErrConflict), http.StatusConflict},
		{"remote", fmt.Errorf("insert: %w: %w", domain.ErrRemoteFailure, errors.New("db")), http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.registry.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, tc.err)
			rec := f.do(http.MethodPost, "/api/v1/autopilots", `{"listId":1,"scheduleId":"twice-daily","agent":"acme"}`)
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestCreateAutopilotValidation(t *testing.T) {
	f := newFixture(t)
	for _, body := range []string{
		`not json`,
		`{"listId":1,"agent":"acme"}`,
		`{"listId":0,"scheduleId":"once-daily","agent":"acme"}`,
		`{"listId":1,"scheduleId":"hourly","agent":"acme"}`,
	} {
		rec := f.do(http.MethodPost, "/api/v1/autopilots", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestGetAutopilot(t *testing.T) {
	f := newFixture(t)
	f.registry.EXPECT().Get(mock.Anything, int64(5)).Return(nil, fmt.Errorf("autopilot 5: %w", domain.ErrNotFound))
	f.registry.EXPECT().Get(mock.Anything, int64(6)).Return(&domain.Autopilot{ID: 6, OwnerAgent: "acme"}, nil)

	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/v1/autopilots/5?agent=acme", "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/v1/autopilots/abc?agent=acme", "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/v1/autopilots/6", "").Code, "agent is required")
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/autopilots/6?agent=acme", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/v1/autopilots/6?agent=intruder", "").Code)
}

func TestUpdateAndDeleteAutopilot(t *testing.T) {
	f := newFixture(t)
	f.registry.EXPECT().Get(mock.Anything, int64(3)).Return(&domain.Autopilot{ID: 3, ListID: 1, OwnerAgent: "acme"}, nil)
	f.registry.EXPECT().
		Update(mock.Anything, port.UpdateAutopilotReq{ID: 3, ListID: 8, Active: false}).
		Return(&domain.Autopilot{ID: 3, ListID: 8, Status: domain.AutopilotPaused}, nil)
	f.registry.EXPECT().Delete(mock.Anything, int64(3)).Return(nil)

	rec := f.do(http.MethodPatch, "/api/v1/autopilots/3?agent=acme", `{"listId":8,"active":false}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPatch, "/api/v1/autopilots/3?agent=acme", `{"listId":8}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "active is required")

	rec = f.do(http.MethodDelete, "/api/v1/autopilots/3?agent=acme", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

// TestForeignAgentCannotChangeAutopilot makes sure update and delete never
// reach the registry for an autopilot of another agent.
func TestForeignAgentCannotChangeAutopilot(t *testing.T) {
	f := newFixture(t)
	f.registry.EXPECT().Get(mock.Anything, int64(3)).Return(&domain.Autopilot{ID: 3, OwnerAgent: "acme"}, nil)

	rec := f.do(http.MethodPatch, "/api/v1/autopilots/3?agent=intruder", `{"listId":8,"active":true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodDelete, "/api/v1/autopilots/3?agent=intruder", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodDelete, "/api/v1/autopilots/3", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConflicts(t *testing.T) {
	f := newFixture(t)
	f.registry.EXPECT().
		ValidateSelections(mock.Anything, "acme", domain.ScheduleOnceDaily, []int64{1, 2}).
		Return([]port.ListAvailability{{ListID: 1}, {ListID: 2, Available: true}})

	rec := f.do(http.MethodGet, "/api/v1/autopilots/conflicts?agent=acme&schedule_id=once-daily&list_id=1&list_id=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"listId":1,"available":false},{"listId":2,"available":true}]`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/v1/autopilots/conflicts?agent=acme&schedule_id=once-daily", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStartProduction(t *testing.T) {
	f := newFixture(t)
	f.production.EXPECT().
		StartProductionByIDs(mock.Anything, "acme", []int64{1, 2}).
		Return(port.ProductionReport{
			Items:      []port.ProductionItem{{AutopilotID: 1, Outcome: port.ProductionDispatched}, {AutopilotID: 2, Outcome: port.ProductionFailed, Reason: "dispatch"}},
			Dispatched: 1,
			Failed:     1,
		}, nil)

	rec := f.do(http.MethodPost, "/api/v1/production", `{"agent":"acme","autopilotIds":[1,2]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var report port.ProductionReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
	assert.Equal(t, 1, report.Failed)
}

func TestBulkApprove(t *testing.T) {
	f := newFixture(t)
	f.emails.EXPECT().
		BulkApprove(mock.Anything, port.BatchRequest{Owner: domain.Owner{Agent: "acme", UserID: 7}, ListID: 3, EmailIDs: []int64{10, 11}}).
		Return(&port.BatchResult{Success: 1, Failed: 1, Items: []port.BatchItem{}, Emails: []domain.Email{}}, nil)

	rec := f.do(http.MethodPost, "/api/v1/emails/approve", `{"agent":"acme","userId":7,"listId":3,"emailIds":[10,11]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":1`)

	rec = f.do(http.MethodPost, "/api/v1/emails/approve", `{"agent":"acme","userId":7,"emailIds":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBulkRefreshFailureKeepsResult(t *testing.T) {
	f := newFixture(t)
	f.emails.EXPECT().
		BulkRevert(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, port.BatchRequest) (*port.BatchResult, error) {
			return &port.BatchResult{Success: 2}, fmt.Errorf("refresh: %w", domain.ErrRemoteFailure)
		})

	rec := f.do(http.MethodPost, "/api/v1/emails/revert", `{"agent":"acme","userId":7,"emailIds":[1,2]}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":2`)
}

func TestListEmails(t *testing.T) {
	f := newFixture(t)
	emails := []domain.Email{{ID: 1}, {ID: 2, Status: domain.EmailApproved}}
	f.emails.EXPECT().ListByOwnerAndList(mock.Anything, "acme", int64(3)).Return(emails, nil)
	f.emails.EXPECT().Selectable(emails).Return(domain.Selection{
		DraftEmails:          emails[:1],
		ApprovedEmails:       emails[1:],
		FutureApprovedEmails: []domain.Email{},
	})

	rec := f.do(http.MethodGet, "/api/v1/emails?agent=acme&list_id=3", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp emailListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Emails, 2)
	assert.Len(t, resp.Selection.DraftEmails, 1)

	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/v1/emails?agent=acme", "").Code)
}
