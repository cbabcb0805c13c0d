package models

// Post is the stored record for a single message.
type Post struct {
	ID        int64  `json:"id"`
	Key       string `json:"-"`
	Timestamp string `json:"timestamp"`
	Msg       string `json:"msg"`
	// UserID is nil for anonymous posts.
	UserID *int64 `json:"user_id,omitempty"`
	// Username is a snapshot of the author's username taken at creation.
	// Read paths resolve the author live instead of using this.
	Username string `json:"-"`
	// UserKey is stored verbatim as supplied by the caller. It is not
	// checked against the author's real key here; delete authorization
	// does its own check against current keys.
	UserKey *string `json:"-"`
	// ReplyingTo references the parent post, nil for top-level posts.
	ReplyingTo *int64 `json:"replying_to_id,omitempty"`
	// Replies accumulates ids of posts that replied to this one, in
	// creation order. Append-only: deleting a reply leaves its id here.
	Replies []int64 `json:"ids_of_replies,omitempty"`
}

// PostView is the public read shape for a post. Username carries the
// author's current username at read time and is null when the post is
// anonymous or the author cannot be resolved.
type PostView struct {
	ID         int64   `json:"id"`
	Timestamp  string  `json:"timestamp"`
	Msg        string  `json:"msg"`
	UserID     *int64  `json:"user_id"`
	Username   *string `json:"username"`
	ReplyingTo *int64  `json:"replying_to_id"`
	Replies    []int64 `json:"ids_of_replies"`
}

// PostReceipt is returned from post creation and deletion. Key is the
// post's own secret key, the proof of deletion rights.
type PostReceipt struct {
	ID        int64  `json:"id"`
	Key       string `json:"key"`
	Timestamp string `json:"timestamp"`
}
