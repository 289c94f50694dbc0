package comment

import (
	"github.com/google/uuid"

	"github.com/clipstack/clipstack-backend/internal/profile"
)

// distinctAuthorIDs collects the unique set of author ids across a list of
// comments, so profile resolution is one batched lookup rather than one
// query per comment.
func distinctAuthorIDs(comments []Comment) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(comments))
	ids := make([]uuid.UUID, 0, len(comments))
	for _, c := range comments {
		if _, ok := seen[c.UserID]; ok {
			continue
		}
		seen[c.UserID] = struct{}{}
		ids = append(ids, c.UserID)
	}
	return ids
}

// commentIDs extracts the id of every comment in the list.
func commentIDs(comments []Comment) []uuid.UUID {
	ids := make([]uuid.UUID, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}
	return ids
}

// hydrate merges author profiles and the viewer's own reactions onto raw
// comment rows. A comment whose author cannot be resolved keeps blank
// profile fields; it is never dropped.
func hydrate(comments []Comment, profiles map[uuid.UUID]profile.Profile, viewerReactions map[uuid.UUID]Type) []*View {
	views := make([]*View, len(comments))
	for i, c := range comments {
		v := &View{
			ID:        c.ID,
			VideoID:   c.VideoID,
			UserID:    c.UserID,
			ParentID:  c.ParentID,
			Content:   c.Content,
			Likes:     c.Likes,
			Dislikes:  c.Dislikes,
			CreatedAt: c.CreatedAt,
			Replies:   []*View{},
		}
		if p, ok := profiles[c.UserID]; ok {
			v.ProfileName = p.DisplayName
			v.ProfileAvatar = p.Avatar
		}
		switch viewerReactions[c.ID] {
		case TypeLike:
			v.ViewerLiked = true
		case TypeDislike:
			v.ViewerDisliked = true
		}
		views[i] = v
	}
	return views
}
