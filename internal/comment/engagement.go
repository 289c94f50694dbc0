package comment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/clipstack/clipstack-backend/internal/logger"
)

// Change describes the effect of a reaction transition: which row mutation
// to perform and the counter deltas it implies. A zero Change is a no-op.
type Change struct {
	// Remove deletes the viewer's existing reaction row
	Remove bool

	// Put inserts a fresh reaction row of this kind (after Remove, when
	// the viewer is switching)
	Put *Type

	LikesDelta    int
	DislikesDelta int
}

// IsZero reports whether the change has no effect
func (c Change) IsZero() bool {
	return !c.Remove && c.Put == nil && c.LikesDelta == 0 && c.DislikesDelta == 0
}

// Transition computes the reaction change for a viewer moving from their
// current persisted reaction (nil = none) to the requested target kind.
//
//	current  target   row effect          counters
//	none     LIKE     insert LIKE         likes +1
//	none     DISLIKE  insert DISLIKE      dislikes +1
//	none     NONE     nothing             none
//	LIKE     LIKE     delete              likes -1   (toggle off)
//	LIKE     DISLIKE  delete, insert      likes -1, dislikes +1
//	LIKE     NONE     delete              likes -1
//	DISLIKE  DISLIKE  delete              dislikes -1 (toggle off)
//	DISLIKE  LIKE     delete, insert      dislikes -1, likes +1
//	DISLIKE  NONE     delete              dislikes -1
func Transition(current *Type, target Type) Change {
	var change Change

	if current == nil {
		if target == TypeLike {
			change.Put = &target
			change.LikesDelta = 1
		} else if target == TypeDislike {
			change.Put = &target
			change.DislikesDelta = 1
		}
		return change
	}

	// Toggling the same kind off and an explicit NONE both clear the row.
	if *current == target || target == TypeNone {
		change.Remove = true
		if *current == TypeLike {
			change.LikesDelta = -1
		} else {
			change.DislikesDelta = -1
		}
		return change
	}

	// Switching like <-> dislike replaces the row.
	change.Remove = true
	change.Put = &target
	if *current == TypeLike {
		change.LikesDelta = -1
		change.DislikesDelta = 1
	} else {
		change.DislikesDelta = -1
		change.LikesDelta = 1
	}
	return change
}

// EngagementCoordinator applies reaction changes consistently across the
// reaction rows and the comment counters. The current state is always read
// from the store immediately before mutating, never taken from the client.
type EngagementCoordinator struct {
	reactions ReactionRepository
	logger    logger.Logger
}

// NewEngagementCoordinator creates a new coordinator over a reaction store
func NewEngagementCoordinator(reactions ReactionRepository, logger logger.Logger) *EngagementCoordinator {
	return &EngagementCoordinator{
		reactions: reactions,
		logger:    logger,
	}
}

// SetReaction moves the viewer's reaction on a comment to the target kind.
// Clearing an already-clear reaction is a no-op.
func (ec *EngagementCoordinator) SetReaction(ctx context.Context, commentID, viewerID uuid.UUID, target Type) error {
	if target != TypeLike && target != TypeDislike && target != TypeNone {
		return ErrInvalidReaction
	}

	existing, err := ec.reactions.GetByViewer(ctx, commentID, viewerID)
	if err != nil {
		return fmt.Errorf("failed to read current reaction: %w", err)
	}

	var current *Type
	if existing != nil {
		current = &existing.Type
	}

	change := Transition(current, target)
	if change.IsZero() {
		ec.logger.LogDebug("Reaction already in requested state", map[string]interface{}{
			"commentId": commentID.String(),
			"viewerId":  viewerID.String(),
			"target":    string(target),
		})
		return nil
	}

	if err := ec.reactions.Apply(ctx, commentID, viewerID, change); err != nil {
		return fmt.Errorf("failed to apply reaction change: %w", err)
	}

	return nil
}
