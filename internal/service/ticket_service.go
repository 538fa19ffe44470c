package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/supporthub/ticket-service/internal/domain"
	"github.com/supporthub/ticket-service/internal/events"
	"github.com/supporthub/ticket-service/internal/repository"
	apperrors "github.com/supporthub/ticket-service/pkg/util"
)

// TicketService coordinates ticket workflows over the store, the status
// transition rule and the comment visibility rule.
type TicketService struct {
	tickets         repository.TicketRepository
	dispatcher      events.Dispatcher
	defaultAssignee string
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Dispatcher events.Dispatcher
	// DefaultAssigneeID is placed on every new ticket. Empty leaves new
	// tickets unassigned.
	DefaultAssigneeID string
}

// TicketFilter describes listing filters. Nil fields are ignored; set
// fields combine conjunctively.
type TicketFilter struct {
	Status     *string
	UserID     *string
	AssigneeID *string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:         deps.TicketRepo,
		dispatcher:      deps.Dispatcher,
		defaultAssignee: deps.DefaultAssigneeID,
	}
}

// CreateTicket opens a ticket on behalf of userID. New tickets start OPEN
// with an empty comment thread and the configured default assignee.
func (s *TicketService) CreateTicket(ctx context.Context, userID, subject, description string) (domain.Ticket, error) {
	now := time.Now()
	ticket := domain.Ticket{
		ID:          uuid.NewString(),
		Subject:     strings.TrimSpace(subject),
		Description: strings.TrimSpace(description),
		Status:      domain.TicketStatusOpen,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
		Comments:    []domain.Comment{},
	}
	if s.defaultAssignee != "" {
		assignee := s.defaultAssignee
		ticket.AssigneeID = &assignee
	}

	stored, err := s.tickets.Save(ctx, ticket)
	if err != nil {
		return domain.Ticket{}, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: stored.ID,
		Payload: events.TicketCreatedPayload{
			UserID:     stored.UserID,
			Subject:    stored.Subject,
			AssigneeID: stored.AssigneeID,
		},
	})
	return stored, nil
}

// ListTickets returns tickets matching every set filter. A listing scoped
// to a user sees only public comments; any other lens sees full threads.
func (s *TicketService) ListTickets(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	tickets, err := s.tickets.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Ticket, 0, len(tickets))
	for _, ticket := range tickets {
		if !matchesFilter(ticket, filter) {
			continue
		}
		matched = append(matched, commentsForViewer(ticket, filter.UserID))
	}
	return matched, nil
}

// UpdateStatus moves a ticket to the requested status. Status text is
// matched case-insensitively; closed tickets reject every update.
func (s *TicketService) UpdateStatus(ctx context.Context, ticketID, status string) (domain.Ticket, error) {
	ticket, ok, err := s.tickets.FindByID(ctx, ticketID)
	if err != nil {
		return domain.Ticket{}, err
	}
	if !ok {
		return domain.Ticket{}, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
	}

	next, valid := domain.ParseTicketStatus(status)
	if !valid {
		return domain.Ticket{}, apperrors.NewInvalidStatus(status, domain.TicketStatusNames())
	}
	if !isValidTransition(ticket.Status, next) {
		return domain.Ticket{}, apperrors.NewBusinessRuleViolation("Cannot update closed ticket", map[string]any{
			"ticket_id":        ticketID,
			"current_status":   ticket.Status,
			"requested_status": next,
		})
	}

	oldStatus := ticket.Status
	ticket.Status = next
	ticket.UpdatedAt = time.Now()

	updated, err := s.tickets.Save(ctx, ticket)
	if err != nil {
		return domain.Ticket{}, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: updated.ID,
		Payload: events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: updated.Status,
		},
	})
	return updated, nil
}

// AddComment appends a comment to the ticket thread and bumps the ticket's
// updated timestamp. Visibility text is matched case-insensitively.
func (s *TicketService) AddComment(ctx context.Context, ticketID, authorID, content, visibility string) (domain.Ticket, error) {
	ticket, ok, err := s.tickets.FindByID(ctx, ticketID)
	if err != nil {
		return domain.Ticket{}, err
	}
	if !ok {
		return domain.Ticket{}, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
	}

	vis, valid := domain.ParseCommentVisibility(visibility)
	if !valid {
		return domain.Ticket{}, apperrors.NewInvalidVisibility(visibility, domain.CommentVisibilityNames())
	}

	now := time.Now()
	comment := domain.Comment{
		ID:         uuid.NewString(),
		TicketID:   ticket.ID,
		AuthorID:   authorID,
		Content:    strings.TrimSpace(content),
		Visibility: vis,
		CreatedAt:  now,
	}
	ticket.Comments = append(ticket.Comments, comment)
	ticket.UpdatedAt = now

	updated, err := s.tickets.Save(ctx, ticket)
	if err != nil {
		return domain.Ticket{}, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCommentAdded,
		TicketID: updated.ID,
		Payload: events.TicketCommentAddedPayload{
			CommentID:      comment.ID,
			AuthorID:       comment.AuthorID,
			Visibility:     comment.Visibility,
			ContentPreview: stringPreview(comment.Content, 120),
		},
	})
	return updated, nil
}

func matchesFilter(ticket domain.Ticket, filter TicketFilter) bool {
	if filter.Status != nil && !strings.EqualFold(*filter.Status, string(ticket.Status)) {
		return false
	}
	if filter.UserID != nil && ticket.UserID != *filter.UserID {
		return false
	}
	if filter.AssigneeID != nil {
		if ticket.AssigneeID == nil || *ticket.AssigneeID != *filter.AssigneeID {
			return false
		}
	}
	return true
}

// commentsForViewer applies the visibility rule for the listing lens: a
// user-scoped listing sees only public comments. The returned ticket is a
// detached value; stored records are never touched.
func commentsForViewer(ticket domain.Ticket, userID *string) domain.Ticket {
	if userID == nil {
		return ticket
	}
	visible := make([]domain.Comment, 0, len(ticket.Comments))
	for _, comment := range ticket.Comments {
		if comment.Visibility == domain.CommentVisibilityPublic {
			visible = append(visible, comment)
		}
	}
	ticket.Comments = visible
	return ticket
}

// The documented lifecycle runs OPEN -> IN_PROGRESS -> RESOLVED -> CLOSED.
// The enforced rule is weaker: a live ticket may move to any status,
// including backwards and straight to CLOSED. CLOSED is terminal.
var allowedTransitions = map[domain.TicketStatus][]domain.TicketStatus{
	domain.TicketStatusOpen:       {domain.TicketStatusOpen, domain.TicketStatusInProgress, domain.TicketStatusResolved, domain.TicketStatusClosed},
	domain.TicketStatusInProgress: {domain.TicketStatusOpen, domain.TicketStatusInProgress, domain.TicketStatusResolved, domain.TicketStatusClosed},
	domain.TicketStatusResolved:   {domain.TicketStatusOpen, domain.TicketStatusInProgress, domain.TicketStatusResolved, domain.TicketStatusClosed},
	domain.TicketStatusClosed:     {},
}

func isValidTransition(current, next domain.TicketStatus) bool {
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func stringPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}
