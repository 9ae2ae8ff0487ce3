package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/db"
)

func registerCommunityRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/communities", handleListCommunities)
	mux.HandleFunc("POST /api/communities", handleCreateCommunity)
	mux.HandleFunc("GET /api/user/{uid}/communities", handleUserCommunities)
	mux.HandleFunc("GET /api/community/{id}", handleGetCommunity)
	mux.HandleFunc("POST /api/community/{id}/join", handleJoinCommunity)
	mux.HandleFunc("POST /api/community/{id}/leave", handleLeaveCommunity)
	mux.HandleFunc("GET /api/community/{id}/members", handleCommunityMembers)
	mux.HandleFunc("GET /api/community/{id}/{channel}/posts", handleChannelPosts)
	mux.HandleFunc("POST /api/community/{id}/{channel}/posts", handleCreateChannelPost)
}

func handleListCommunities(w http.ResponseWriter, r *http.Request) {
	communities, err := db.ListCommunities()
	if err != nil {
		log.Printf("error listing communities: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, communities)
}

func handleCreateCommunity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UID         string `json:"uid"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.UID == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "uid and name are required")
		return
	}

	c, err := db.CreateCommunity(req.UID, req.Name, req.Description)
	if err != nil {
		log.Printf("error creating community: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func handleUserCommunities(w http.ResponseWriter, r *http.Request) {
	communities, err := db.CommunitiesForUser(r.PathValue("uid"))
	if err != nil {
		log.Printf("error listing user communities: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, communities)
}

func handleGetCommunity(w http.ResponseWriter, r *http.Request) {
	c, err := db.GetCommunity(r.PathValue("id"))
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "community not found")
		return
	}
	if err != nil {
		log.Printf("error loading community: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func handleJoinCommunity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UID string `json:"uid"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := db.JoinCommunity(req.UID, r.PathValue("id")); err != nil {
		log.Printf("error joining community: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "joined"})
}

func handleLeaveCommunity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UID string `json:"uid"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := db.LeaveCommunity(req.UID, r.PathValue("id")); err != nil {
		log.Printf("error leaving community: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "left"})
}

func handleCommunityMembers(w http.ResponseWriter, r *http.Request) {
	members, err := db.CommunityMembers(r.PathValue("id"))
	if err != nil {
		log.Printf("error listing members: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func handleChannelPosts(w http.ResponseWriter, r *http.Request) {
	msgs, err := db.ChannelPosts(r.PathValue("id"), r.PathValue("channel"))
	if err != nil {
		log.Printf("error listing channel posts: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func handleCreateChannelPost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UID     string `json:"uid"`
		Content string `json:"content"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.UID == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "uid and content are required")
		return
	}

	m, err := db.CreateChannelPost(r.PathValue("channel"), req.UID, req.Content)
	if err != nil {
		log.Printf("error posting to channel: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, m)
}
