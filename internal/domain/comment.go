package domain

import (
	"strings"
	"time"
)

// CommentVisibility separates customer-facing comments from internal agent
// notes. The constants hold the canonical lowercase wire form.
type CommentVisibility string

const (
	CommentVisibilityPublic   CommentVisibility = "public"
	CommentVisibilityInternal CommentVisibility = "internal"
)

// CommentVisibilityNames lists the accepted visibility values.
func CommentVisibilityNames() []string {
	return []string{
		string(CommentVisibilityPublic),
		string(CommentVisibilityInternal),
	}
}

// ParseCommentVisibility matches text against the visibility catalog
// ignoring case. The second return reports whether the text was valid.
func ParseCommentVisibility(text string) (CommentVisibility, bool) {
	switch CommentVisibility(strings.ToLower(text)) {
	case CommentVisibilityPublic:
		return CommentVisibilityPublic, true
	case CommentVisibilityInternal:
		return CommentVisibilityInternal, true
	default:
		return "", false
	}
}

// Comment is a single entry in a ticket conversation thread.
type Comment struct {
	ID         string
	TicketID   string
	AuthorID   string
	Content    string
	Visibility CommentVisibility
	CreatedAt  time.Time
}
