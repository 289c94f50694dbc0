package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clipstack/clipstack-backend/internal/comment"
	"github.com/clipstack/clipstack-backend/internal/logger"
)

// CommentRepository implements comment.CommentRepository using gorm over
// the platform's relational store.
type CommentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewCommentRepository creates a new postgres repository for comments
func NewCommentRepository(db *gorm.DB, logger logger.Logger) *CommentRepository {
	return &CommentRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new comment row
func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		r.logger.LogError(err, "Error creating comment")
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

// GetByID retrieves a comment by its ID; (nil, nil) when missing
func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	var c comment.Comment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.LogError(err, "Error getting comment by ID")
		return nil, fmt.Errorf("failed to load comment: %w", err)
	}
	return &c, nil
}

// ListByVideo retrieves all comments for a video, newest first
func (r *CommentRepository) ListByVideo(ctx context.Context, videoID uuid.UUID) ([]comment.Comment, error) {
	var comments []comment.Comment
	err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		r.logger.LogError(err, "Error listing comments by video")
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// CountByVideo counts all comment rows for a video, replies included
func (r *CommentRepository) CountByVideo(ctx context.Context, videoID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&comment.Comment{}).
		Where("video_id = ?", videoID).
		Count(&count).Error
	if err != nil {
		r.logger.LogError(err, "Error counting comments")
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}

// Delete removes a comment row by id
func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&comment.Comment{}).Error; err != nil {
		r.logger.LogError(err, "Error deleting comment")
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

// DeleteReplies removes the direct replies of a comment
func (r *CommentRepository) DeleteReplies(ctx context.Context, parentID uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("parent_id = ?", parentID).Delete(&comment.Comment{}).Error; err != nil {
		r.logger.LogError(err, "Error deleting replies")
		return fmt.Errorf("failed to delete replies: %w", err)
	}
	return nil
}

// ReassignReplies re-points the direct replies of a comment at a new parent
func (r *CommentRepository) ReassignReplies(ctx context.Context, parentID uuid.UUID, newParentID *uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Model(&comment.Comment{}).
		Where("parent_id = ?", parentID).
		Update("parent_id", newParentID).Error
	if err != nil {
		r.logger.LogError(err, "Error reassigning replies")
		return fmt.Errorf("failed to reassign replies: %w", err)
	}
	return nil
}
