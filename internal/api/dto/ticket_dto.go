package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/supporthub/ticket-service/internal/domain"
	apperrors "github.com/supporthub/ticket-service/pkg/util"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	UserID      string `json:"userId"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

// Validate checks required fields, reporting every missing one.
func (r CreateTicketRequest) Validate() error {
	var problems []string
	if strings.TrimSpace(r.UserID) == "" {
		problems = append(problems, "userId: User ID is required and cannot be empty")
	}
	if strings.TrimSpace(r.Subject) == "" {
		problems = append(problems, "subject: Subject is required and cannot be empty")
	}
	if strings.TrimSpace(r.Description) == "" {
		problems = append(problems, "description: Description is required and cannot be empty")
	}
	return validationResult(problems)
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks the status text is present. Whether it names a valid
// status is decided by the core.
func (r UpdateStatusRequest) Validate() error {
	if strings.TrimSpace(r.Status) == "" {
		return apperrors.NewValidationError(fmt.Sprintf(
			"status: Status is required and cannot be empty. Valid values are: %s",
			strings.Join(domain.TicketStatusNames(), ", ")), nil)
	}
	return nil
}

// AddCommentRequest payload.
type AddCommentRequest struct {
	AuthorID   string `json:"authorId"`
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
}

// Validate checks required fields, reporting every missing one.
func (r AddCommentRequest) Validate() error {
	var problems []string
	if strings.TrimSpace(r.AuthorID) == "" {
		problems = append(problems, "authorId: Author ID is required and cannot be empty")
	}
	if strings.TrimSpace(r.Content) == "" {
		problems = append(problems, "content: Content is required and cannot be empty")
	}
	if strings.TrimSpace(r.Visibility) == "" {
		problems = append(problems, fmt.Sprintf(
			"visibility: Visibility is required and cannot be empty. Valid values are: %s",
			strings.Join(domain.CommentVisibilityNames(), ", ")))
	}
	return validationResult(problems)
}

func validationResult(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return apperrors.NewValidationError(strings.Join(problems, ", "), nil)
}

// TicketResponse is the wire shape for a ticket.
type TicketResponse struct {
	TicketID    string              `json:"ticketId"`
	Subject     string              `json:"subject"`
	Description string              `json:"description"`
	Status      domain.TicketStatus `json:"status"`
	UserID      string              `json:"userId"`
	AssigneeID  *string             `json:"assigneeId"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	Comments    []CommentResponse   `json:"comments"`
}

// CommentResponse is the wire shape for one thread entry.
type CommentResponse struct {
	CommentID  string                   `json:"commentId"`
	TicketID   string                   `json:"ticketId"`
	AuthorID   string                   `json:"authorId"`
	Content    string                   `json:"content"`
	Visibility domain.CommentVisibility `json:"visibility"`
	CreatedAt  time.Time                `json:"createdAt"`
}

// ErrorResponse is the wire shape for failed requests.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
