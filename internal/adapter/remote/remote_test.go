package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-autopilot/internal/core/domain"
	"campaign-autopilot/internal/core/port"
)

func TestProductionClientDispatch(t *testing.T) {
	var got port.ProductionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/produce", r.URL.Path)
		assert.Equal(t, "s3cret", r.Header.Get(headerProductionSecret))
		_, err := uuid.Parse(r.Header.Get(headerRequestID))
		assert.NoError(t, err)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := NewProductionClient(srv.URL+"/", "s3cret", time.Second)
	req := port.ProductionRequest{Agent: "acme", ListID: 4, AutopilotID: 9, TaskID: 12, OfferName: "Sale", ScheduleID: domain.ScheduleOnceDaily}
	require.NoError(t, c.Dispatch(context.Background(), req))
	assert.Equal(t, req, got)
}

func TestProductionClientNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "queue full", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := NewProductionClient(srv.URL, "", time.Second).Dispatch(context.Background(), port.ProductionRequest{AutopilotID: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemoteFailure)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusServiceUnavailable, se.Code)
	assert.Equal(t, "queue full", se.Body)
}

func TestCallbackClientPaths(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "acme", body["agent"])
		assert.Equal(t, "ext-1", body["externalEmailId"])
	}))
	defer srv.Close()

	c := NewCallbackClient(srv.URL, "cb", time.Second)
	req := port.CallbackRequest{Agent: "acme", UserID: 7, EmailID: 1, ExternalEmailID: "ext-1"}
	for _, a := range []port.CallbackAction{port.CallbackApprove, port.CallbackRevert, port.CallbackDelete} {
		require.NoError(t, c.Notify(context.Background(), a, req))
	}
	assert.Equal(t, []string{"/approve", "/revert", "/delete"}, paths)

	assert.ErrorIs(t, c.Notify(context.Background(), "archive", req), domain.ErrInvalidRequest)
}

type fakeChannel struct {
	declared  string
	published []amqp.Publishing
	keys      []string
	err       error
	closed    bool
}

func (f *fakeChannel) QueueDeclare(name string, durable, _, _, _ bool, _ amqp.Table) (amqp.Queue, error) {
	if !durable {
		return amqp.Queue{}, errors.New("queue must be durable")
	}
	f.declared = name
	return amqp.Queue{Name: name}, nil
}

func (f *fakeChannel) Publish(_, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestAMQPPublisherDispatch(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newAMQPPublisher(ch, "autopilot.production")
	require.NoError(t, err)
	assert.Equal(t, "autopilot.production", ch.declared)

	req := port.ProductionRequest{Agent: "acme", AutopilotID: 3, TaskID: 5}
	require.NoError(t, p.Dispatch(context.Background(), req))

	require.Len(t, ch.published, 1)
	msg := ch.published[0]
	assert.Equal(t, "autopilot.production", ch.keys[0])
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.NotEmpty(t, msg.MessageId)

	var decoded port.ProductionRequest
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, req, decoded)

	ch.err = errors.New("channel closed")
	assert.ErrorIs(t, p.Dispatch(context.Background(), req), domain.ErrRemoteFailure)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestAMQPPublisherCancelledContext(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newAMQPPublisher(ch, "q")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Dispatch(ctx, port.ProductionRequest{}), context.Canceled)
	assert.Empty(t, ch.published)
}
