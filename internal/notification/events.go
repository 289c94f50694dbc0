package notification

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of engagement event
type EventType string

const (
	CommentCreated  EventType = "COMMENT_CREATED"
	CommentReplied  EventType = "COMMENT_REPLIED"
	CommentReaction EventType = "COMMENT_REACTION"
)

// CommentEvent is the payload written to the engagement event stream.
// Stream entries are flat field/value maps, so ToMap flattens the event
// for XADD.
type CommentEvent struct {
	ID        uuid.UUID `json:"id"`
	Type      EventType `json:"type"`
	CommentID uuid.UUID `json:"commentId"`
	VideoID   uuid.UUID `json:"videoId"`
	UserID    uuid.UUID `json:"userId"`
	ParentID  uuid.UUID `json:"parentId,omitempty"`
	Reaction  string    `json:"reaction,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewCommentEvent creates an event with a fresh ID and timestamp.
func NewCommentEvent(eventType EventType) CommentEvent {
	return CommentEvent{
		ID:        uuid.New(),
		Type:      eventType,
		CreatedAt: time.Now().UTC(),
	}
}

// ToMap flattens the event into stream entry fields.
func (e CommentEvent) ToMap() map[string]interface{} {
	values := map[string]interface{}{
		"id":         e.ID.String(),
		"type":       string(e.Type),
		"comment_id": e.CommentID.String(),
		"user_id":    e.UserID.String(),
		"created_at": e.CreatedAt.Format(time.RFC3339Nano),
	}
	if e.VideoID != uuid.Nil {
		values["video_id"] = e.VideoID.String()
	}
	if e.ParentID != uuid.Nil {
		values["parent_id"] = e.ParentID.String()
	}
	if e.Reaction != "" {
		values["reaction"] = e.Reaction
	}
	return values
}
