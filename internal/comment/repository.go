package comment

import (
	"context"

	"github.com/google/uuid"
)

// CommentRepository defines the interface for comment row persistence
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error

	// GetByID returns (nil, nil) when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Comment, error)

	// ListByVideo returns every comment for a video, roots and replies
	// alike, ordered by created_at descending. Presentation ordering is
	// the tree builder's concern.
	ListByVideo(ctx context.Context, videoID uuid.UUID) ([]Comment, error)

	CountByVideo(ctx context.Context, videoID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteReplies removes the direct replies of a comment (cascade policy).
	DeleteReplies(ctx context.Context, parentID uuid.UUID) error

	// ReassignReplies re-points the direct replies of a comment at a new
	// parent; a nil newParentID promotes them to roots (reattach policy).
	ReassignReplies(ctx context.Context, parentID uuid.UUID, newParentID *uuid.UUID) error
}

// ReactionRepository defines the interface for reaction persistence. The
// comment counters and the reaction rows move together through Apply, so
// callers can never observe a counter without its matching row.
type ReactionRepository interface {
	// GetByViewer returns (nil, nil) when the viewer has no reaction.
	GetByViewer(ctx context.Context, commentID, userID uuid.UUID) (*Reaction, error)

	// ListByViewer returns the viewer's reactions over a set of comments
	// with a single IN query.
	ListByViewer(ctx context.Context, commentIDs []uuid.UUID, userID uuid.UUID) ([]Reaction, error)

	// Apply atomically applies a reaction change: row removal and/or
	// insertion plus the implied counter deltas, in one transaction.
	Apply(ctx context.Context, commentID, userID uuid.UUID, change Change) error
}
