package comment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/clipstack/clipstack-backend/internal/logger"
	"github.com/clipstack/clipstack-backend/internal/profile"
)

// Common errors
var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("requester does not own the comment")
	ErrInvalidReaction = errors.New("invalid reaction type")
)

// EventPublisher receives engagement events for the notification pipeline.
// Publishing is best-effort: failures are logged by the service and never
// fail the comment operation itself.
type EventPublisher interface {
	PublishCommentCreated(ctx context.Context, c *Comment) error
	PublishCommentReaction(ctx context.Context, commentID, viewerID uuid.UUID, target Type) error
}

// Service is the comment facade: list, add, delete, react, count. Reads
// degrade rather than fail; a storage problem on the list path yields an
// empty result so the rest of the page can still render.
type Service struct {
	comments   CommentRepository
	reactions  ReactionRepository
	profiles   profile.Lookup
	engagement *EngagementCoordinator
	events     EventPublisher
	deletion   DeletePolicy
	logger     logger.Logger
}

// NewService creates a new comment service
func NewService(
	comments CommentRepository,
	reactions ReactionRepository,
	profiles profile.Lookup,
	deletion DeletePolicy,
	logger logger.Logger,
) *Service {
	return &Service{
		comments:   comments,
		reactions:  reactions,
		profiles:   profiles,
		engagement: NewEngagementCoordinator(reactions, logger),
		deletion:   deletion,
		logger:     logger,
	}
}

// SetEventPublisher attaches an engagement event publisher. Optional; the
// service runs without one.
func (s *Service) SetEventPublisher(events EventPublisher) {
	s.events = events
}

// ListComments returns the hydrated comment tree for a video. viewerID may
// be uuid.Nil for anonymous viewers, in which case the viewer reaction
// flags stay false. Read failures anywhere in the chain degrade the result
// (empty list, or missing annotations) instead of surfacing an error.
func (s *Service) ListComments(ctx context.Context, videoID, viewerID uuid.UUID, mode SortMode) []*View {
	comments, err := s.comments.ListByVideo(ctx, videoID)
	if err != nil {
		s.logger.LogError(err, "Failed to list comments, degrading to empty result")
		return []*View{}
	}
	if len(comments) == 0 {
		return []*View{}
	}

	profiles, err := s.profiles.ResolveProfiles(ctx, distinctAuthorIDs(comments))
	if err != nil {
		s.logger.LogWarn("Failed to resolve author profiles", map[string]interface{}{
			"videoId": videoID.String(),
			"error":   err.Error(),
		})
		profiles = nil
	}

	viewerReactions := make(map[uuid.UUID]Type)
	if viewerID != uuid.Nil {
		rows, err := s.reactions.ListByViewer(ctx, commentIDs(comments), viewerID)
		if err != nil {
			s.logger.LogWarn("Failed to load viewer reactions", map[string]interface{}{
				"videoId":  videoID.String(),
				"viewerId": viewerID.String(),
				"error":    err.Error(),
			})
		} else {
			for _, r := range rows {
				viewerReactions[r.CommentID] = r.Type
			}
		}
	}

	return BuildTree(hydrate(comments, profiles, viewerReactions), mode)
}

// AddComment creates a comment or reply with zeroed counters. Content
// validation (non-empty after trimming) is the transport layer's concern;
// the store accepts what it is given.
func (s *Service) AddComment(ctx context.Context, videoID, authorID uuid.UUID, content string, parentID *uuid.UUID) (*Comment, error) {
	c := NewComment(videoID, authorID, content, parentID)

	if err := s.comments.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.LogInfo("Comment created", map[string]interface{}{
		"commentId": c.ID.String(),
		"videoId":   videoID.String(),
		"isReply":   parentID != nil,
	})

	if s.events != nil {
		if err := s.events.PublishCommentCreated(ctx, c); err != nil {
			s.logger.LogWarn("Failed to publish comment event", map[string]interface{}{
				"commentId": c.ID.String(),
				"error":     err.Error(),
			})
		}
	}

	return c, nil
}

// DeleteComment removes a comment after verifying ownership. Replies are
// handled per the configured deletion policy; under the default orphan
// policy their rows remain and the tree builder hides them.
func (s *Service) DeleteComment(ctx context.Context, commentID, requesterID uuid.UUID) error {
	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("failed to load comment: %w", err)
	}
	if c == nil {
		return ErrCommentNotFound
	}
	if c.UserID != requesterID {
		return ErrNotCommentOwner
	}

	switch s.deletion {
	case DeleteCascade:
		if err := s.comments.DeleteReplies(ctx, commentID); err != nil {
			return fmt.Errorf("failed to cascade delete replies: %w", err)
		}
	case DeleteReattach:
		if err := s.comments.ReassignReplies(ctx, commentID, c.ParentID); err != nil {
			return fmt.Errorf("failed to reattach replies: %w", err)
		}
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	s.logger.LogInfo("Comment deleted", map[string]interface{}{
		"commentId": commentID.String(),
		"policy":    string(s.deletion),
	})
	return nil
}

// SetReaction moves the viewer's reaction on a comment to the target kind
// through the engagement coordinator.
func (s *Service) SetReaction(ctx context.Context, commentID, viewerID uuid.UUID, target Type) error {
	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("failed to load comment: %w", err)
	}
	if c == nil {
		return ErrCommentNotFound
	}

	if err := s.engagement.SetReaction(ctx, commentID, viewerID, target); err != nil {
		return err
	}

	if s.events != nil {
		if err := s.events.PublishCommentReaction(ctx, commentID, viewerID, target); err != nil {
			s.logger.LogWarn("Failed to publish reaction event", map[string]interface{}{
				"commentId": commentID.String(),
				"error":     err.Error(),
			})
		}
	}

	return nil
}

// GetCommentCount returns the total number of comments for a video,
// replies included. Defaults to 0 on storage failure.
func (s *Service) GetCommentCount(ctx context.Context, videoID uuid.UUID) int {
	count, err := s.comments.CountByVideo(ctx, videoID)
	if err != nil {
		s.logger.LogError(err, "Failed to count comments, defaulting to zero")
		return 0
	}
	return int(count)
}
