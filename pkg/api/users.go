package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"chirpd/pkg/utils"
	"chirpd/pkg/validation"
)

type createUserRequest struct {
	Username *string `json:"username"`
	RealName string  `json:"real_name"`
}

type updateUserRequest struct {
	Key      string `json:"key"`
	RealName string `json:"real_name"`
}

// createUser handles POST /user.
func (s *server) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Username == nil {
		utils.JSONError(w, http.StatusBadRequest, "missing 'username' field")
		return
	}
	if err := validation.ValidateUsername(*req.Username); err != nil {
		utils.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	receipt, err := s.repo.CreateUser(*req.Username, req.RealName)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, receipt)
}

// getUser handles GET /user/{identifier}. The identifier is polymorphic:
// all-digits means a user id, anything else an exact username.
func (s *server) getUser(w http.ResponseWriter, r *http.Request) {
	view, err := s.repo.GetUser(mux.Vars(r)["identifier"])
	if err != nil {
		writeRepoError(w, err)
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, view)
}

// updateUser handles PUT /user/{id}. real_name is replaced with whatever
// the body carries, including the empty string; there is no partial
// update.
func (s *server) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := s.repo.UpdateUser(id, req.Key, req.RealName); err != nil {
		writeRepoError(w, err)
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, map[string]string{"msg": "user metadata updated"})
}
