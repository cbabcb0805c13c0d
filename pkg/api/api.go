package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"chirpd/pkg/repo"
	"chirpd/pkg/utils"
)

type server struct {
	repo *repo.Repo
}

// Handler returns the HTTP surface over the repository. The handlers own
// JSON decoding, path and query parsing, and the mapping from repository
// outcomes to status codes; the repository only ever sees typed commands.
func Handler(r *repo.Repo) http.Handler {
	s := &server{repo: r}
	m := mux.NewRouter()

	// Post routes. Numeric path vars are constrained here so a
	// non-numeric id is a routing 404, never a parse failure downstream.
	m.HandleFunc("/post", s.createPost).Methods(http.MethodPost)
	m.HandleFunc("/post/{id:[0-9]+}", s.getPost).Methods(http.MethodGet)
	m.HandleFunc("/post/{id:[0-9]+}/delete/{key}", s.deletePost).Methods(http.MethodDelete)
	m.HandleFunc("/posts/range", s.listPostsByRange).Methods(http.MethodGet)
	m.HandleFunc("/posts/user/{id:[0-9]+}", s.listPostsByUser).Methods(http.MethodGet)

	// User routes.
	m.HandleFunc("/user", s.createUser).Methods(http.MethodPost)
	m.HandleFunc("/user/{identifier}", s.getUser).Methods(http.MethodGet)
	m.HandleFunc("/user/{id:[0-9]+}", s.updateUser).Methods(http.MethodPut)

	return m
}

// writeRepoError maps a repository outcome onto an HTTP status. Anything
// without a code would be an internal invariant violation; the repository
// contract is that it never produces one under valid input.
func writeRepoError(w http.ResponseWriter, err error) {
	switch repo.CodeOf(err) {
	case repo.CodeBadRequest:
		utils.JSONError(w, http.StatusBadRequest, err.Error())
	case repo.CodeNotFound:
		utils.JSONError(w, http.StatusNotFound, err.Error())
	case repo.CodeForbidden:
		utils.JSONError(w, http.StatusForbidden, err.Error())
	default:
		utils.JSONError(w, http.StatusInternalServerError, "internal error")
	}
}
