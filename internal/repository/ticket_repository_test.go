package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supporthub/ticket-service/internal/domain"
)

func ticketFixture(id, userID string) domain.Ticket {
	now := time.Now().UTC()
	return domain.Ticket{
		ID:          id,
		Subject:     "subject",
		Description: "description",
		Status:      domain.TicketStatusOpen,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
		Comments:    []domain.Comment{},
	}
}

func TestSaveAndFindByID(t *testing.T) {
	repo := NewMemoryTicketRepository()
	ctx := context.Background()

	stored, err := repo.Save(ctx, ticketFixture("t-1", "user-1"))
	require.NoError(t, err)
	assert.Equal(t, "t-1", stored.ID)

	found, ok, err := repo.FindByID(ctx, "t-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "t-1", found.ID)
	assert.Equal(t, "user-1", found.UserID)

	_, ok, err = repo.FindByID(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveOverwritesByID(t *testing.T) {
	repo := NewMemoryTicketRepository()
	ctx := context.Background()

	ticket := ticketFixture("t-1", "user-1")
	_, err := repo.Save(ctx, ticket)
	require.NoError(t, err)

	ticket.Status = domain.TicketStatusResolved
	_, err = repo.Save(ctx, ticket)
	require.NoError(t, err)

	found, ok, err := repo.FindByID(ctx, "t-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.TicketStatusResolved, found.Status)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestFindAllReturnsEveryTicket(t *testing.T) {
	repo := NewMemoryTicketRepository()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Save(ctx, ticketFixture(fmt.Sprintf("t-%d", i), "user-1"))
		require.NoError(t, err)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	empty, err := NewMemoryTicketRepository().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestReturnedTicketsAreDetached(t *testing.T) {
	repo := NewMemoryTicketRepository()
	ctx := context.Background()

	ticket := ticketFixture("t-1", "user-1")
	ticket.Comments = []domain.Comment{{
		ID:         "c-1",
		TicketID:   "t-1",
		AuthorID:   "agent-1",
		Content:    "first",
		Visibility: domain.CommentVisibilityInternal,
	}}
	_, err := repo.Save(ctx, ticket)
	require.NoError(t, err)

	// mutating the caller's copy after save must not leak into the store
	ticket.Comments[0].Content = "mutated-after-save"

	found, ok, err := repo.FindByID(ctx, "t-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, found.Comments, 1)
	assert.Equal(t, "first", found.Comments[0].Content)

	// mutating a fetched copy must not leak either
	found.Comments[0].Content = "mutated-after-read"
	found.Comments = append(found.Comments, domain.Comment{ID: "c-2"})

	again, ok, err := repo.FindByID(ctx, "t-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, again.Comments, 1)
	assert.Equal(t, "first", again.Comments[0].Content)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	all[0].Comments[0].Content = "mutated-from-list"

	final, ok, err := repo.FindByID(ctx, "t-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "first", final.Comments[0].Content)
}

func TestConcurrentSavesAndReads(t *testing.T) {
	repo := NewMemoryTicketRepository()
	ctx := context.Background()

	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := fmt.Sprintf("t-%d-%d", w, i)
				if _, err := repo.Save(ctx, ticketFixture(id, "user-1")); err != nil {
					t.Error(err)
					return
				}
				if _, _, err := repo.FindByID(ctx, id); err != nil {
					t.Error(err)
					return
				}
				if _, err := repo.FindAll(ctx); err != nil {
					t.Error(err)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, workers*perWorker)
}
