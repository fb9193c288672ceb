package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"campaign-autopilot/internal/core/port"
)

func TestRecorderCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.RecordProduction(port.ProductionDispatched)
	r.RecordProduction(port.ProductionDispatched)
	r.RecordProduction(port.ProductionSkippedNoOffer)
	r.RecordEmailTransition(port.CallbackRevert, port.ItemSkippedNotFuture)

	got := counters(t, reg)
	assert.Equal(t, 2.0, got["autopilot_production_total/dispatched"])
	assert.Equal(t, 1.0, got["autopilot_production_total/skipped-no-offer"])
	assert.Equal(t, 1.0, got["autopilot_email_transitions_total/revert/skipped-not-future"])
}

// counters flattens gathered counters into name/label.../value pairs.
func counters(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	out := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				key += "/" + lp.GetValue()
			}
			out[key] = m.GetCounter().GetValue()
		}
	}
	return out
}

func TestServerEndpoints(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewRecorder(reg).RecordProduction(port.ProductionFailed)

	healthy := true
	srv := NewServer(":0", reg, func(context.Context) error {
		if !healthy {
			return errors.New("db down")
		}
		return nil
	})

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `autopilot_production_total{outcome="failed"} 1`))

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	healthy = false
	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
