package comment

import (
	"time"

	"github.com/google/uuid"
)

// Comment represents a comment on a video. Likes and Dislikes are
// denormalized aggregates of the reactions table, kept in step by the
// engagement coordinator.
type Comment struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	VideoID   uuid.UUID  `gorm:"type:uuid;index" json:"video_id"`
	UserID    uuid.UUID  `gorm:"type:uuid" json:"user_id"`
	ParentID  *uuid.UUID `gorm:"type:uuid" json:"parent_id,omitempty"`
	Content   string     `gorm:"not null" json:"content"`
	Likes     int        `json:"likes"`
	Dislikes  int        `json:"dislikes"`
	CreatedAt time.Time  `json:"created_at"`
}

// Reaction represents a viewer's reaction to a comment. The composite
// unique index guarantees at most one row per (comment, viewer) pair even
// under concurrent double-submits.
type Reaction struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CommentID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reactions_comment_user" json:"comment_id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reactions_comment_user" json:"user_id"`
	Type      Type      `gorm:"type:varchar(16)" json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// Type represents the possible reaction kinds. TypeNone is only ever a
// requested target (clear my reaction); it is never stored.
type Type string

const (
	// TypeLike represents a positive reaction
	TypeLike Type = "LIKE"

	// TypeDislike represents a negative reaction
	TypeDislike Type = "DISLIKE"

	// TypeNone clears the viewer's reaction
	TypeNone Type = "NONE"
)

// SortMode selects the presentation order of root comments. Replies are
// always oldest-first regardless of the mode.
type SortMode string

const (
	// SortTop orders roots by like count, most liked first
	SortTop SortMode = "top"

	// SortNewest orders roots by creation time, newest first
	SortNewest SortMode = "newest"
)

// DeletePolicy selects what happens to replies when their parent comment
// is deleted.
type DeletePolicy string

const (
	// DeleteOrphan leaves reply rows in place; the tree builder hides them
	DeleteOrphan DeletePolicy = "orphan"

	// DeleteCascade deletes the direct replies together with the parent
	DeleteCascade DeletePolicy = "cascade"

	// DeleteReattach re-points replies at the deleted comment's own parent
	DeleteReattach DeletePolicy = "reattach"
)

// View is a hydrated comment as returned to facade consumers: the raw row
// plus author display data, the viewer's own reaction flags, and nested
// replies.
type View struct {
	ID             uuid.UUID  `json:"id"`
	VideoID        uuid.UUID  `json:"video_id"`
	UserID         uuid.UUID  `json:"user_id"`
	ParentID       *uuid.UUID `json:"parent_id,omitempty"`
	Content        string     `json:"content"`
	Likes          int        `json:"likes"`
	Dislikes       int        `json:"dislikes"`
	CreatedAt      time.Time  `json:"created_at"`
	ProfileName    string     `json:"profile_name,omitempty"`
	ProfileAvatar  string     `json:"profile_avatar,omitempty"`
	ViewerLiked    bool       `json:"viewer_liked"`
	ViewerDisliked bool       `json:"viewer_disliked"`
	Replies        []*View    `json:"replies"`
}

// NewComment creates a new comment with a fresh id and timestamp
func NewComment(videoID, userID uuid.UUID, content string, parentID *uuid.UUID) *Comment {
	return &Comment{
		ID:        uuid.New(),
		VideoID:   videoID,
		UserID:    userID,
		Content:   content,
		ParentID:  parentID,
		Likes:     0,
		Dislikes:  0,
		CreatedAt: time.Now().UTC(),
	}
}

// NewReaction creates a new reaction row for a viewer
func NewReaction(commentID, userID uuid.UUID, reactionType Type) *Reaction {
	return &Reaction{
		ID:        uuid.New(),
		CommentID: commentID,
		UserID:    userID,
		Type:      reactionType,
		CreatedAt: time.Now().UTC(),
	}
}

// ParseSortMode maps a request parameter to a SortMode, defaulting to newest.
func ParseSortMode(s string) SortMode {
	if SortMode(s) == SortTop {
		return SortTop
	}
	return SortNewest
}
