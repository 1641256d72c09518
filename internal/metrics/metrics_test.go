package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/tiptop/internal/calculator"
)

func TestObserveCalculation(t *testing.T) {
	m := New()

	m.ObserveCalculation(SourceRPC, calculator.ZeroResult)
	m.ObserveCalculation(SourceRPC, calculator.Result{PreTip: "1.00", Tip: "0.10", Total: "1.10"})
	m.ObserveCalculation(SourceRPC, calculator.Result{PreTip: "2.00", Tip: "0.20", Total: "2.20"})

	if got := testutil.ToFloat64(m.calculations.WithLabelValues(SourceRPC, "zero")); got != 1 {
		t.Errorf("zero outcomes = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.calculations.WithLabelValues(SourceRPC, "ok")); got != 2 {
		t.Errorf("ok outcomes = %v, want 2", got)
	}
}

func TestGaugesAndCounters(t *testing.T) {
	m := New()

	m.SetOpenSessions(3)
	m.AddSwept(2)
	m.ObserveRPC("/tiptop.v1.TipService/Calculate", "ok", 3*time.Millisecond)

	if got := testutil.ToFloat64(m.openSessions); got != 3 {
		t.Errorf("open sessions = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.sweptTotal); got != 2 {
		t.Errorf("swept = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.rpcRequests.WithLabelValues("/tiptop.v1.TipService/Calculate", "ok")); got != 1 {
		t.Errorf("rpc requests = %v, want 1", got)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	// None of these may panic
	m.ObserveRPC("p", "ok", time.Second)
	m.ObserveCalculation(SourceWeb, calculator.ZeroResult)
	m.SetOpenSessions(1)
	m.AddSwept(1)
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveCalculation(SourceWeb, calculator.ZeroResult)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `tiptop_calculations_total{outcome="zero",source="web"} 1`) {
		t.Errorf("metrics output missing calculation counter:\n%s", body)
	}
}
