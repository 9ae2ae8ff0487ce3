package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/db"
)

func registerForumRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/forum/posts", handleListForumPosts)
	mux.HandleFunc("POST /api/forum/post", handleCreateForumPost)
	mux.HandleFunc("POST /api/forum/post/{id}/vote", handleVoteOnPost)
	mux.HandleFunc("DELETE /api/forum/post/{id}", handleDeleteForumPost)
	mux.HandleFunc("GET /api/user/{uid}/posts", handleUserPosts)
}

func handleListForumPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := db.ListForumPosts(r.URL.Query().Get("sort_by"))
	if err != nil {
		log.Printf("error listing forum posts: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func handleCreateForumPost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UID     string `json:"uid"`
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.UID == "" || req.Title == "" {
		writeError(w, http.StatusBadRequest, "uid and title are required")
		return
	}

	p, err := db.CreateForumPost(req.UID, req.Title, req.Content)
	if err != nil {
		log.Printf("error creating forum post: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func handleVoteOnPost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UID      string `json:"uid"`
		VoteType string `json:"vote_type"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	vote := 0
	switch req.VoteType {
	case "up":
		vote = 1
	case "down":
		vote = -1
	default:
		writeError(w, http.StatusBadRequest, "vote_type must be up or down")
		return
	}

	if err := db.VoteOnPost(r.PathValue("id"), req.UID, vote); err != nil {
		log.Printf("error voting: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "voted"})
}

func handleDeleteForumPost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UID string `json:"uid"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	err := db.DeleteForumPost(r.PathValue("id"), req.UID)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "post not found or not yours")
		return
	}
	if err != nil {
		log.Printf("error deleting post: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func handleUserPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := db.PostsByUser(r.PathValue("uid"))
	if err != nil {
		log.Printf("error listing user posts: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, posts)
}
