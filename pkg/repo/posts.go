package repo

import (
	"chirpd/pkg/logger"
	"chirpd/pkg/models"
	"chirpd/pkg/utils"
)

// CreatePostInput is the typed command the transport builds after shape
// validation. Optional fields are pointers; nil means absent.
type CreatePostInput struct {
	Msg        string
	UserID     *int64
	UserKey    *string
	ReplyingTo *int64
}

// CreatePost stores a new post and returns its receipt. When the post is a
// reply, the parent's reply list is updated inside the same critical
// section as the insert, so no reader can observe the reply without its id
// being present on the parent.
func (r *Repo) CreatePost(in CreatePostInput) (models.PostReceipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var username string
	if in.UserID != nil {
		u, ok := r.users[*in.UserID]
		if !ok {
			return models.PostReceipt{}, notFound("user not found")
		}
		username = u.Username
	}
	if in.ReplyingTo != nil {
		if _, ok := r.posts[*in.ReplyingTo]; !ok {
			return models.PostReceipt{}, notFound("reply to non-existent post")
		}
	}

	id := r.nextPostID
	r.nextPostID++

	p := &models.Post{
		ID:         id,
		Key:        utils.GenKey(),
		Timestamp:  models.NowInstant(),
		Msg:        in.Msg,
		UserID:     in.UserID,
		Username:   username,
		UserKey:    in.UserKey,
		ReplyingTo: in.ReplyingTo,
	}
	r.posts[id] = p
	if in.ReplyingTo != nil {
		parent := r.posts[*in.ReplyingTo]
		parent.Replies = append(parent.Replies, id)
	}

	logger.Debug("post_created", "id", id, "anonymous", in.UserID == nil, "reply", in.ReplyingTo != nil)
	return models.PostReceipt{ID: id, Key: p.Key, Timestamp: p.Timestamp}, nil
}

// GetPost returns the public view of a post.
func (r *Repo) GetPost(id int64) (models.PostView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[id]
	if !ok {
		return models.PostView{}, notFound("post not found")
	}
	return r.viewLocked(p), nil
}

// DeletePost removes a post permanently. The presented key must equal the
// post's own key, or the current key of the post's author. Reply lists on
// other posts are left untouched; a parent keeps the deleted id.
func (r *Repo) DeletePost(id int64, key string) (models.PostReceipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[id]
	if !ok {
		return models.PostReceipt{}, notFound("post not found")
	}

	authorized := key == p.Key
	if !authorized && p.UserID != nil {
		if u, ok := r.users[*p.UserID]; ok && key == u.Key {
			authorized = true
		}
	}
	if !authorized {
		return models.PostReceipt{}, forbidden("forbidden")
	}

	delete(r.posts, id)
	logger.Debug("post_deleted", "id", id)
	// the receipt echoes the key that authorized the delete, which may be
	// the author's key rather than the post's own
	return models.PostReceipt{ID: p.ID, Key: key, Timestamp: p.Timestamp}, nil
}

// PostsInRange returns every post whose timestamp lies in [start, end].
// Bounds are canonical instants (see models.ParseInstant); an empty bound
// is open. Canonical timestamps are fixed width, so plain string comparison
// is a correct time ordering. Result order follows map iteration and is
// not sorted.
func (r *Repo) PostsInRange(start, end string) []models.PostView {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.PostView, 0)
	for _, p := range r.posts {
		if start != "" && p.Timestamp < start {
			continue
		}
		if end != "" && p.Timestamp > end {
			continue
		}
		out = append(out, r.viewLocked(p))
	}
	return out
}

// PostsByUser returns every post authored by userID.
func (r *Repo) PostsByUser(userID int64) ([]models.PostView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userID]; !ok {
		return nil, notFound("user not found")
	}
	out := make([]models.PostView, 0)
	for _, p := range r.posts {
		if p.UserID != nil && *p.UserID == userID {
			out = append(out, r.viewLocked(p))
		}
	}
	return out, nil
}
