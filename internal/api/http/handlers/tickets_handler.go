package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/supporthub/ticket-service/internal/api/dto"
	"github.com/supporthub/ticket-service/internal/domain"
	"github.com/supporthub/ticket-service/internal/service"
	apperrors "github.com/supporthub/ticket-service/pkg/util"
)

// TicketsHandler manages ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}
	ticket, err := h.service.CreateTicket(c.UserContext(), req.UserID, req.Subject, req.Description)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(ticketResponse(ticket))
}

// ListTickets GET /tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	filter := service.TicketFilter{
		Status:     queryPtr(c, "status"),
		UserID:     queryPtr(c, "userId"),
		AssigneeID: queryPtr(c, "assigneeId"),
	}
	tickets, err := h.service.ListTickets(c.UserContext(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketResponse(tickets[i]))
	}
	return c.JSON(items)
}

// UpdateStatus PATCH /tickets/:ticketId/status.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}
	ticket, err := h.service.UpdateStatus(c.UserContext(), c.Params("ticketId"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(ticketResponse(ticket))
}

// AddComment POST /tickets/:ticketId/comments. Responds with the full
// updated ticket.
func (h *TicketsHandler) AddComment(c *fiber.Ctx) error {
	var req dto.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}
	ticket, err := h.service.AddComment(c.UserContext(), c.Params("ticketId"), req.AuthorID, req.Content, req.Visibility)
	if err != nil {
		return err
	}
	return c.JSON(ticketResponse(ticket))
}

// queryPtr returns nil when the query parameter is absent or empty.
func queryPtr(c *fiber.Ctx, key string) *string {
	val := c.Query(key)
	if val == "" {
		return nil
	}
	return &val
}

func ticketResponse(ticket domain.Ticket) dto.TicketResponse {
	comments := make([]dto.CommentResponse, 0, len(ticket.Comments))
	for _, comment := range ticket.Comments {
		comments = append(comments, commentResponse(comment))
	}
	return dto.TicketResponse{
		TicketID:    ticket.ID,
		Subject:     ticket.Subject,
		Description: ticket.Description,
		Status:      ticket.Status,
		UserID:      ticket.UserID,
		AssigneeID:  ticket.AssigneeID,
		CreatedAt:   ticket.CreatedAt,
		UpdatedAt:   ticket.UpdatedAt,
		Comments:    comments,
	}
}

func commentResponse(comment domain.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		CommentID:  comment.ID,
		TicketID:   comment.TicketID,
		AuthorID:   comment.AuthorID,
		Content:    comment.Content,
		Visibility: comment.Visibility,
		CreatedAt:  comment.CreatedAt,
	}
}
