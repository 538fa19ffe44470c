package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/supporthub/ticket-service/internal/events"
	"github.com/supporthub/ticket-service/internal/observability"
	"github.com/supporthub/ticket-service/internal/repository"
)

func TestAuditRecorderCountsDomainEvents(t *testing.T) {
	repo := repository.NewMemoryTicketRepository()
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics("audit_test")

	NewAuditService(dispatcher, zap.NewNop(), metrics).RegisterHandlers()

	svc := newTicketService(repo, dispatcher)
	ctx := context.Background()

	ticket, err := svc.CreateTicket(ctx, "user-1", "subject", "description")
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, ticket.ID, "closed")
	require.NoError(t, err)
	_, err = svc.AddComment(ctx, ticket.ID, "agent-1", "wrap up", "internal")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()

	assert.Contains(t, body, "audit_test_tickets_created_total 1")
	assert.Contains(t, body, `audit_test_ticket_status_changes_total{from="open",to="closed"} 1`)
	assert.Contains(t, body, `audit_test_ticket_comments_total{visibility="internal"} 1`)
}

func TestAuditRecorderWithoutMetrics(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	NewAuditService(dispatcher, zap.NewNop(), nil).RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:     events.EventTicketCreated,
		TicketID: "t-1",
		Payload:  events.TicketCreatedPayload{UserID: "user-1", Subject: "subject"},
	})
	require.NoError(t, err)
}
