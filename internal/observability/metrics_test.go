package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMetricsExposesInstruments(t *testing.T) {
	m := NewMetrics("testsvc")

	m.RecordRequest("/tickets", "POST", 201, 12*time.Millisecond)
	m.RecordError("/tickets", "POST", "VALIDATION_ERROR")
	m.TicketCreated()
	m.StatusChanged("open", "resolved")
	m.CommentAdded("public")

	body := scrape(t, m)

	assert.Contains(t, body, `testsvc_http_requests_total{method="POST",path="/tickets",status="201"} 1`)
	assert.Contains(t, body, `testsvc_http_errors_total{code="VALIDATION_ERROR",method="POST",path="/tickets"} 1`)
	assert.Contains(t, body, `testsvc_http_request_duration_seconds_count{method="POST",path="/tickets"} 1`)
	assert.Contains(t, body, "testsvc_tickets_created_total 1")
	assert.Contains(t, body, `testsvc_ticket_status_changes_total{from="open",to="resolved"} 1`)
	assert.Contains(t, body, `testsvc_ticket_comments_total{visibility="public"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestMetricsCountsAccumulate(t *testing.T) {
	m := NewMetrics("testsvc")

	for i := 0; i < 3; i++ {
		m.TicketCreated()
	}
	m.CommentAdded("internal")
	m.CommentAdded("internal")
	m.CommentAdded("public")

	body := scrape(t, m)

	assert.Contains(t, body, "testsvc_tickets_created_total 3")
	assert.Contains(t, body, `testsvc_ticket_comments_total{visibility="internal"} 2`)
	assert.Contains(t, body, `testsvc_ticket_comments_total{visibility="public"} 1`)
}

func TestNilMetricsRecordsNothing(t *testing.T) {
	var m *Metrics

	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "INTERNAL_ERROR")
	m.TicketCreated()
	m.StatusChanged("open", "closed")
	m.CommentAdded("internal")
}
