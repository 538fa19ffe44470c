package repository

import (
	"context"
	"sync"

	"github.com/supporthub/ticket-service/internal/domain"
)

// TicketRepository is the authoritative store for tickets. Implementations
// must be safe for concurrent use and must hand out detached copies only,
// so callers can never alias a stored record.
type TicketRepository interface {
	// Save inserts or replaces the record under the ticket's identifier
	// and returns the stored ticket.
	Save(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
	// FindByID reports false when no ticket exists under the identifier.
	FindByID(ctx context.Context, id string) (domain.Ticket, bool, error)
	// FindAll returns a snapshot of every stored ticket. Iteration order
	// is not guaranteed.
	FindAll(ctx context.Context) ([]domain.Ticket, error)
}

type memoryTicketRepository struct {
	mu      sync.RWMutex
	tickets map[string]domain.Ticket
}

// NewMemoryTicketRepository instantiates an empty in-memory store.
func NewMemoryTicketRepository() TicketRepository {
	return &memoryTicketRepository{tickets: make(map[string]domain.Ticket)}
}

func (r *memoryTicketRepository) Save(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	r.mu.Lock()
	r.tickets[ticket.ID] = ticket.Clone()
	r.mu.Unlock()
	return ticket, nil
}

func (r *memoryTicketRepository) FindByID(ctx context.Context, id string) (domain.Ticket, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return domain.Ticket{}, false, nil
	}
	return ticket.Clone(), true, nil
}

func (r *memoryTicketRepository) FindAll(ctx context.Context) ([]domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Ticket, 0, len(r.tickets))
	for _, ticket := range r.tickets {
		out = append(out, ticket.Clone())
	}
	return out, nil
}
