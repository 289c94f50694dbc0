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

// ReactionRepository implements comment.ReactionRepository using gorm.
// Apply runs the row mutation and the counter deltas in one transaction,
// so the denormalized counters can never drift from the reaction rows on
// a partial write.
type ReactionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewReactionRepository creates a new postgres repository for reactions
func NewReactionRepository(db *gorm.DB, logger logger.Logger) *ReactionRepository {
	return &ReactionRepository{
		db:     db,
		logger: logger,
	}
}

// GetByViewer retrieves a viewer's reaction to a comment; (nil, nil) when
// the viewer has none
func (r *ReactionRepository) GetByViewer(ctx context.Context, commentID, userID uuid.UUID) (*comment.Reaction, error) {
	var reaction comment.Reaction
	err := r.db.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		First(&reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.LogError(err, "Error getting reaction by viewer")
		return nil, fmt.Errorf("failed to load reaction: %w", err)
	}
	return &reaction, nil
}

// ListByViewer retrieves the viewer's reactions over a set of comments
// with a single IN query
func (r *ReactionRepository) ListByViewer(ctx context.Context, commentIDs []uuid.UUID, userID uuid.UUID) ([]comment.Reaction, error) {
	if len(commentIDs) == 0 {
		return nil, nil
	}

	var reactions []comment.Reaction
	err := r.db.WithContext(ctx).
		Where("comment_id IN ? AND user_id = ?", commentIDs, userID).
		Find(&reactions).Error
	if err != nil {
		r.logger.LogError(err, "Error listing reactions by viewer")
		return nil, fmt.Errorf("failed to list reactions: %w", err)
	}
	return reactions, nil
}

// Apply atomically applies a reaction change for a viewer on a comment
func (r *ReactionRepository) Apply(ctx context.Context, commentID, userID uuid.UUID, change comment.Change) error {
	if change.IsZero() {
		return nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if change.Remove {
			if err := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).
				Delete(&comment.Reaction{}).Error; err != nil {
				return fmt.Errorf("failed to delete reaction row: %w", err)
			}
		}

		if change.Put != nil {
			row := comment.NewReaction(commentID, userID, *change.Put)
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("failed to insert reaction row: %w", err)
			}
		}

		if change.LikesDelta != 0 {
			if err := tx.Model(&comment.Comment{}).
				Where("id = ?", commentID).
				UpdateColumn("likes", gorm.Expr("likes + ?", change.LikesDelta)).Error; err != nil {
				return fmt.Errorf("failed to update likes counter: %w", err)
			}
		}

		if change.DislikesDelta != 0 {
			if err := tx.Model(&comment.Comment{}).
				Where("id = ?", commentID).
				UpdateColumn("dislikes", gorm.Expr("dislikes + ?", change.DislikesDelta)).Error; err != nil {
				return fmt.Errorf("failed to update dislikes counter: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		r.logger.LogError(err, "Error applying reaction change")
		return err
	}

	return nil
}
