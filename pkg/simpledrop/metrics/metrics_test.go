package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func withTestRegistry(t *testing.T) *prometheus.Registry {
	t.Helper()
	origReg := prometheus.DefaultRegisterer
	origGather := prometheus.DefaultGatherer
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	t.Cleanup(func() {
		prometheus.DefaultRegisterer = origReg
		prometheus.DefaultGatherer = origGather
	})
	return reg
}

func TestNoopMetrics(t *testing.T) {
	var m Noop
	m.IncStored()
	m.IncFetched()
	m.IncRemoved()
	m.AddSwept(3)
	m.IncSweepErrors()
}

func TestPromMetrics(t *testing.T) {
	withTestRegistry(t)

	m := NewProm("simpledrop")
	m.IncStored()
	m.IncStored()
	m.IncFetched()
	m.IncRemoved()
	m.AddSwept(4)
	m.IncSweepErrors()

	if got := testutil.ToFloat64(m.stored); got != 2 {
		t.Fatalf("stored = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.fetched); got != 1 {
		t.Fatalf("fetched = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.removed); got != 1 {
		t.Fatalf("removed = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.swept); got != 4 {
		t.Fatalf("swept = %v, want 4", got)
	}
	if got := testutil.ToFloat64(m.sweepErrors); got != 1 {
		t.Fatalf("sweepErrors = %v, want 1", got)
	}
}

func TestHandler(t *testing.T) {
	withTestRegistry(t)
	NewProm("simpledrop").IncStored()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
