package chatapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCountersStartAtZero(t *testing.T) {
	m := NewMetrics()
	if got := testutil.ToFloat64(m.sessionsStarted); got != 0 {
		t.Fatalf("expected sessionsStarted to start at 0, got %v", got)
	}
}

func TestMetricsCountersIncrement(t *testing.T) {
	m := NewMetrics()
	m.sessionsStarted.Inc()
	m.sessionsCompleted.Inc()
	m.editsApplied.WithLabelValues("delete_element").Inc()
	m.editsApplied.WithLabelValues("delete_element").Inc()

	if got := testutil.ToFloat64(m.sessionsStarted); got != 1 {
		t.Fatalf("expected sessionsStarted=1, got %v", got)
	}
	if got := testutil.ToFloat64(m.sessionsCompleted); got != 1 {
		t.Fatalf("expected sessionsCompleted=1, got %v", got)
	}
	if got := testutil.ToFloat64(m.editsApplied.WithLabelValues("delete_element")); got != 2 {
		t.Fatalf("expected editsApplied{delete_element}=2, got %v", got)
	}
}

func TestMetricsHandlerServesPrometheusFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics()
	m.sessionsStarted.Inc()

	router := gin.New()
	router.GET("/metrics", m.Handler())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "bpmn_sessions_started_total") {
		t.Fatalf("expected exposition to contain the counter name, got %q", rec.Body.String())
	}
}
