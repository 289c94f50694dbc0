package comment

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/clipstack/clipstack-backend/internal/profile"
)

// fakeCommentStore is an in-memory CommentRepository for service tests.
type fakeCommentStore struct {
	mu       sync.Mutex
	comments map[uuid.UUID]*Comment

	listErr  error
	getErr   error
	countErr error

	deleteRepliesCalls []uuid.UUID
	reassignCalls      []reassignCall
}

type reassignCall struct {
	parentID    uuid.UUID
	newParentID *uuid.UUID
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: make(map[uuid.UUID]*Comment)}
}

func (f *fakeCommentStore) Create(ctx context.Context, c *Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.comments[c.ID] = c
	return nil
}

func (f *fakeCommentStore) GetByID(ctx context.Context, id uuid.UUID) (*Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.comments[id], nil
}

func (f *fakeCommentStore) ListByVideo(ctx context.Context, videoID uuid.UUID) ([]Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []Comment
	for _, c := range f.comments {
		if c.VideoID == videoID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCommentStore) CountByVideo(ctx context.Context, videoID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countErr != nil {
		return 0, f.countErr
	}
	var n int64
	for _, c := range f.comments {
		if c.VideoID == videoID {
			n++
		}
	}
	return n, nil
}

func (f *fakeCommentStore) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.comments, id)
	return nil
}

func (f *fakeCommentStore) DeleteReplies(ctx context.Context, parentID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteRepliesCalls = append(f.deleteRepliesCalls, parentID)
	for id, c := range f.comments {
		if c.ParentID != nil && *c.ParentID == parentID {
			delete(f.comments, id)
		}
	}
	return nil
}

func (f *fakeCommentStore) ReassignReplies(ctx context.Context, parentID uuid.UUID, newParentID *uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reassignCalls = append(f.reassignCalls, reassignCall{parentID: parentID, newParentID: newParentID})
	for _, c := range f.comments {
		if c.ParentID != nil && *c.ParentID == parentID {
			c.ParentID = newParentID
		}
	}
	return nil
}

// fakeReactionStore is an in-memory ReactionRepository. Apply mutates the
// reaction rows and the counters of the comments in the attached comment
// store, mirroring the transactional repository.
type fakeReactionStore struct {
	mu        sync.Mutex
	reactions map[uuid.UUID]map[uuid.UUID]*Reaction // commentID -> userID -> row
	comments  *fakeCommentStore

	getErr   error
	listErr  error
	applyErr error

	applied []Change
}

func newFakeReactionStore(comments *fakeCommentStore) *fakeReactionStore {
	return &fakeReactionStore{
		reactions: make(map[uuid.UUID]map[uuid.UUID]*Reaction),
		comments:  comments,
	}
}

func (f *fakeReactionStore) GetByViewer(ctx context.Context, commentID, userID uuid.UUID) (*Reaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.reactions[commentID][userID], nil
}

func (f *fakeReactionStore) ListByViewer(ctx context.Context, commentIDs []uuid.UUID, userID uuid.UUID) ([]Reaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []Reaction
	for _, id := range commentIDs {
		if r, ok := f.reactions[id][userID]; ok {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReactionStore) Apply(ctx context.Context, commentID, userID uuid.UUID, change Change) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.applyErr != nil {
		return f.applyErr
	}
	f.applied = append(f.applied, change)

	if change.Remove {
		delete(f.reactions[commentID], userID)
	}
	if change.Put != nil {
		if f.reactions[commentID] == nil {
			f.reactions[commentID] = make(map[uuid.UUID]*Reaction)
		}
		f.reactions[commentID][userID] = NewReaction(commentID, userID, *change.Put)
	}
	if f.comments != nil {
		if c, ok := f.comments.comments[commentID]; ok {
			c.Likes += change.LikesDelta
			c.Dislikes += change.DislikesDelta
		}
	}
	return nil
}

// fakeProfileLookup records calls so tests can assert batching.
type fakeProfileLookup struct {
	profiles map[uuid.UUID]profile.Profile
	err      error

	calls   int
	lastIDs []uuid.UUID
}

func (f *fakeProfileLookup) ResolveProfiles(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]profile.Profile, error) {
	f.calls++
	f.lastIDs = ids
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles, nil
}

// fakePublisher records published events.
type fakePublisher struct {
	created   []*Comment
	reactions []Type
	err       error
}

func (f *fakePublisher) PublishCommentCreated(ctx context.Context, c *Comment) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, c)
	return nil
}

func (f *fakePublisher) PublishCommentReaction(ctx context.Context, commentID, viewerID uuid.UUID, target Type) error {
	if f.err != nil {
		return f.err
	}
	f.reactions = append(f.reactions, target)
	return nil
}
