package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"chirpd/pkg/models"
	"chirpd/pkg/repo"
	"chirpd/pkg/utils"
	"chirpd/pkg/validation"
)

// createPostRequest keeps msg as raw JSON so a present-but-non-string
// value can be told apart from an absent one.
type createPostRequest struct {
	Msg        json.RawMessage `json:"msg"`
	UserID     *int64          `json:"user_id"`
	UserKey    *string         `json:"user_key"`
	ReplyingTo *int64          `json:"replying_to_id"`
}

// createPost handles POST /post. Anonymous posts are allowed; user_key is
// stored with the post verbatim and is not verified here.
func (s *server) createPost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if len(req.Msg) == 0 {
		utils.JSONError(w, http.StatusBadRequest, "missing 'msg' field")
		return
	}
	// json.Unmarshal treats a literal null as a no-op on a string target,
	// so it has to be rejected before the type check.
	var msg string
	if string(req.Msg) == "null" || json.Unmarshal(req.Msg, &msg) != nil {
		utils.JSONError(w, http.StatusBadRequest, "'msg' must be a string")
		return
	}
	if err := validation.ValidateMsg(msg); err != nil {
		utils.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	receipt, err := s.repo.CreatePost(repo.CreatePostInput{
		Msg:        msg,
		UserID:     req.UserID,
		UserKey:    req.UserKey,
		ReplyingTo: req.ReplyingTo,
	})
	if err != nil {
		writeRepoError(w, err)
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, receipt)
}

// getPost handles GET /post/{id}.
func (s *server) getPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid post id")
		return
	}
	view, err := s.repo.GetPost(id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, view)
}

// deletePost handles DELETE /post/{id}/delete/{key}. The key may be the
// post's own key or the author's current key.
func (s *server) deletePost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid post id")
		return
	}
	receipt, err := s.repo.DeletePost(id, vars["key"])
	if err != nil {
		writeRepoError(w, err)
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, receipt)
}

// listPostsByRange handles GET /posts/range?start=&end=. Bounds are
// inclusive ISO-8601 instants; either may be omitted. Result order is not
// sorted.
func (s *server) listPostsByRange(w http.ResponseWriter, r *http.Request) {
	var start, end string
	if q := r.URL.Query().Get("start"); q != "" {
		var err error
		if start, err = models.ParseInstant(q); err != nil {
			utils.JSONError(w, http.StatusBadRequest, "invalid 'start' instant")
			return
		}
	}
	if q := r.URL.Query().Get("end"); q != "" {
		var err error
		if end, err = models.ParseInstant(q); err != nil {
			utils.JSONError(w, http.StatusBadRequest, "invalid 'end' instant")
			return
		}
	}

	posts := s.repo.PostsInRange(start, end)
	_ = utils.JSONWrite(w, http.StatusOK, struct {
		Posts []models.PostView `json:"posts"`
	}{Posts: posts})
}

// listPostsByUser handles GET /posts/user/{id}.
func (s *server) listPostsByUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	posts, err := s.repo.PostsByUser(id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, struct {
		Posts []models.PostView `json:"posts"`
	}{Posts: posts})
}
