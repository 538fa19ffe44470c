package domain

import (
	"strings"
	"time"
)

// TicketStatus enumerates lifecycle states for tickets. The constants hold
// the canonical lowercase wire form; inbound text is matched case
// insensitively via ParseTicketStatus.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// TicketStatusNames lists the accepted status values in lifecycle order.
func TicketStatusNames() []string {
	return []string{
		string(TicketStatusOpen),
		string(TicketStatusInProgress),
		string(TicketStatusResolved),
		string(TicketStatusClosed),
	}
}

// ParseTicketStatus matches text against the status catalog ignoring case.
// The second return reports whether the text named a valid status.
func ParseTicketStatus(text string) (TicketStatus, bool) {
	switch TicketStatus(strings.ToLower(text)) {
	case TicketStatusOpen:
		return TicketStatusOpen, true
	case TicketStatusInProgress:
		return TicketStatusInProgress, true
	case TicketStatusResolved:
		return TicketStatusResolved, true
	case TicketStatusClosed:
		return TicketStatusClosed, true
	default:
		return "", false
	}
}

// Ticket is the aggregate for support requests. Comments are ordered oldest
// first and are append-only.
type Ticket struct {
	ID          string
	Subject     string
	Description string
	Status      TicketStatus
	UserID      string
	AssigneeID  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Comments    []Comment
}

// Clone returns a detached copy of the ticket. The comment list and the
// assignee pointer share no memory with the receiver, so callers may mutate
// the copy freely.
func (t Ticket) Clone() Ticket {
	out := t
	if t.AssigneeID != nil {
		assignee := *t.AssigneeID
		out.AssigneeID = &assignee
	}
	if t.Comments != nil {
		out.Comments = make([]Comment, len(t.Comments))
		copy(out.Comments, t.Comments)
	}
	return out
}
