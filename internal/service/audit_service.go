package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/supporthub/ticket-service/internal/events"
	"github.com/supporthub/ticket-service/internal/observability"
)

// AuditService records domain events in the service log and the domain
// metrics.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventTicketCreated, a.handleTicketCreated)
	a.dispatcher.Subscribe(events.EventTicketStatusChanged, a.handleTicketStatusChanged)
	a.dispatcher.Subscribe(events.EventTicketCommentAdded, a.handleTicketCommentAdded)
}

func (a *AuditService) handleTicketCreated(ctx context.Context, event events.Event) error {
	a.logger.Info("TicketCreated",
		zap.String("ticket_id", event.TicketID),
		zap.Any("payload", event.Payload))
	a.metrics.TicketCreated()
	return nil
}

func (a *AuditService) handleTicketStatusChanged(ctx context.Context, event events.Event) error {
	a.logger.Info("TicketStatusChanged",
		zap.String("ticket_id", event.TicketID),
		zap.Any("payload", event.Payload))
	if payload, ok := event.Payload.(events.TicketStatusChangedPayload); ok {
		a.metrics.StatusChanged(string(payload.OldStatus), string(payload.NewStatus))
	}
	return nil
}

func (a *AuditService) handleTicketCommentAdded(ctx context.Context, event events.Event) error {
	a.logger.Info("TicketCommentAdded",
		zap.String("ticket_id", event.TicketID),
		zap.Any("payload", event.Payload))
	if payload, ok := event.Payload.(events.TicketCommentAddedPayload); ok {
		a.metrics.CommentAdded(string(payload.Visibility))
	}
	return nil
}
