package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/clipstack/clipstack-backend/internal/comment"
	"github.com/clipstack/clipstack-backend/internal/config"
	"github.com/clipstack/clipstack-backend/internal/logger"
)

// CommentProducer publishes engagement events onto a Redis stream. It
// implements comment.EventPublisher so the comment service can emit events
// without knowing about the transport.
type CommentProducer struct {
	client *redis.Client
	stream string
	logger logger.Logger
}

// NewCommentProducer creates a producer writing to the configured stream.
func NewCommentProducer(client *redis.Client, cfg *config.NotificationConfig, logger logger.Logger) *CommentProducer {
	return &CommentProducer{
		client: client,
		stream: cfg.CommentEventsStream,
		logger: logger,
	}
}

// publish adds an event to the stream using XADD with an auto-generated
// message ID.
func (p *CommentProducer) publish(ctx context.Context, event CommentEvent) error {
	messageID, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: event.ToMap(),
	}).Result()
	if err != nil {
		return fmt.Errorf("xadd to stream %s: %w", p.stream, err)
	}

	p.logger.LogInfo("Published engagement event", map[string]interface{}{
		"stream":    p.stream,
		"eventType": string(event.Type),
		"messageId": messageID,
		"commentId": event.CommentID.String(),
	})
	return nil
}

// PublishCommentCreated emits COMMENT_CREATED for top-level comments and
// COMMENT_REPLIED for replies.
func (p *CommentProducer) PublishCommentCreated(ctx context.Context, c *comment.Comment) error {
	eventType := CommentCreated
	if c.ParentID != nil {
		eventType = CommentReplied
	}

	event := NewCommentEvent(eventType)
	event.CommentID = c.ID
	event.VideoID = c.VideoID
	event.UserID = c.UserID
	if c.ParentID != nil {
		event.ParentID = *c.ParentID
	}

	return p.publish(ctx, event)
}

// PublishCommentReaction emits COMMENT_REACTION with the resulting reaction
// state, including "NONE" for a cleared reaction.
func (p *CommentProducer) PublishCommentReaction(ctx context.Context, commentID, viewerID uuid.UUID, target comment.Type) error {
	event := NewCommentEvent(CommentReaction)
	event.CommentID = commentID
	event.UserID = viewerID
	event.Reaction = string(target)

	return p.publish(ctx, event)
}
