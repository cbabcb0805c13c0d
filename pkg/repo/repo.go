package repo

import (
	"sync"

	"chirpd/pkg/models"
)

// Repo is the in-memory authority for all User and Post records. A single
// mutex guards both collections: every operation runs as one critical
// section, so compound sequences like "check uniqueness, assign id, insert"
// cannot interleave with other writers.
type Repo struct {
	mu sync.Mutex

	users map[int64]*models.User
	posts map[int64]*models.Post

	// Ids are assigned from monotonic counters, never from map size:
	// posts can be deleted, and a size-derived id would be reused.
	nextUserID int64
	nextPostID int64
}

// New returns an empty repository. Ids start at 1.
func New() *Repo {
	return &Repo{
		users:      make(map[int64]*models.User),
		posts:      make(map[int64]*models.Post),
		nextUserID: 1,
		nextPostID: 1,
	}
}

// Stats reports current collection sizes for telemetry and the digest job.
func (r *Repo) Stats() (users, posts int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users), len(r.posts)
}

// viewLocked builds the public view of p. The author username is resolved
// live against the current user table, not the stored snapshot; it comes
// back nil when the post is anonymous. Callers must hold mu.
func (r *Repo) viewLocked(p *models.Post) models.PostView {
	v := models.PostView{
		ID:         p.ID,
		Timestamp:  p.Timestamp,
		Msg:        p.Msg,
		UserID:     p.UserID,
		ReplyingTo: p.ReplyingTo,
		Replies:    append([]int64{}, p.Replies...),
	}
	if p.UserID != nil {
		if u, ok := r.users[*p.UserID]; ok {
			name := u.Username
			v.Username = &name
		}
	}
	return v
}
