package repo

import (
	"strconv"

	"chirpd/pkg/logger"
	"chirpd/pkg/models"
	"chirpd/pkg/utils"
)

// CreateUser registers a new user. Usernames are unique with case-sensitive
// equality and immutable afterwards.
func (r *Repo) CreateUser(username, realName string) (models.UserReceipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			return models.UserReceipt{}, badRequest("username already exists")
		}
	}

	id := r.nextUserID
	r.nextUserID++

	u := &models.User{
		ID:       id,
		Key:      utils.GenKey(),
		Username: username,
		RealName: realName,
	}
	r.users[id] = u

	logger.Debug("user_created", "user_id", id, "username", username)
	return models.UserReceipt{ID: id, Key: u.Key}, nil
}

// GetUser resolves a polymorphic identifier: an all-digits identifier is
// looked up as an id (with no fallback to username), anything else as an
// exact username.
func (r *Repo) GetUser(identifier string) (models.UserView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var u *models.User
	if isDigits(identifier) {
		id, err := strconv.ParseInt(identifier, 10, 64)
		if err != nil {
			return models.UserView{}, notFound("user not found")
		}
		u = r.users[id]
	} else {
		for _, cand := range r.users {
			if cand.Username == identifier {
				u = cand
				break
			}
		}
	}
	if u == nil {
		return models.UserView{}, notFound("user not found")
	}
	return models.UserView{ID: u.ID, Username: u.Username, RealName: u.RealName}, nil
}

// UpdateUser replaces real_name, last write wins, including replacement
// with the empty string. Unknown user and wrong key are reported with the
// same error so callers cannot probe which part failed.
func (r *Repo) UpdateUser(id int64, key, realName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok || u.Key != key {
		return forbidden("invalid user or key")
	}
	u.RealName = realName

	logger.Debug("user_updated", "user_id", id)
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
