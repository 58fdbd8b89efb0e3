package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordFallback(t *testing.T) {
	m := New()

	m.RecordFallback("QualityAssessor")
	m.RecordFallback("QualityAssessor")
	m.RecordFallback("ConversationAnalyzer")

	if got := testutil.ToFloat64(m.StageFallbacksTotal.WithLabelValues("QualityAssessor")); got != 2 {
		t.Errorf("assessor fallbacks = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.StageFallbacksTotal.WithLabelValues("ConversationAnalyzer")); got != 1 {
		t.Errorf("analyzer fallbacks = %v, want 1", got)
	}
}

func TestRecordPipeline(t *testing.T) {
	m := New()

	m.RecordPipeline(StatusCompleted, time.Second)
	m.RecordPipeline(StatusRejected, 0)

	if got := testutil.ToFloat64(m.PipelineRunsTotal.WithLabelValues(StatusCompleted)); got != 1 {
		t.Errorf("completed runs = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.PipelineDuration); got != 1 {
		t.Errorf("duration series = %d, want 1", got)
	}
}

func TestRecordTokensSkipsZero(t *testing.T) {
	m := New()

	m.RecordTokens("ResponseGenerator", 0, 12)

	if got := testutil.CollectAndCount(m.CompletionTokensTotal); got != 1 {
		t.Errorf("token series = %d, want 1", got)
	}
	if got := testutil.ToFloat64(m.CompletionTokensTotal.WithLabelValues("ResponseGenerator", "output")); got != 12 {
		t.Errorf("output tokens = %v, want 12", got)
	}
}

func TestHandler(t *testing.T) {
	m := New()
	m.SetHistorySize(4)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "objection_history_size 4") {
		t.Errorf("expected history gauge in output")
	}
}

func TestNewIsolated(t *testing.T) {
	// Two instances must not collide on registration.
	a, b := New(), New()
	a.RecordRateLimited()
	if got := testutil.ToFloat64(b.RateLimitedTotal); got != 0 {
		t.Errorf("second registry saw %v rate-limited requests", got)
	}
}
