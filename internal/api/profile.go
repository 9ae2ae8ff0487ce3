package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/db"
)

func registerProfileRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/profile/{role}/{uid}", handleGetProfile)
	mux.HandleFunc("PUT /api/profile/{role}/{uid}", handleUpdateProfile)
	mux.HandleFunc("GET /api/users/search", handleSearchUsers)
	mux.HandleFunc("GET /api/artisans/search", handleSearchArtisans)
	mux.HandleFunc("GET /api/mentors/search", handleSearchMentors)
	mux.HandleFunc("GET /api/artisan/{uid}/schemes", handleSchemes)
}

func handleGetProfile(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")
	u, err := db.GetUserByUID(uid)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	if err != nil {
		log.Printf("error loading profile: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if role := r.PathValue("role"); u.Role != role {
		writeError(w, http.StatusNotFound, "no "+role+" profile for that user")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")

	var req struct {
		Name      string `json:"name"`
		Bio       string `json:"bio"`
		Location  string `json:"location"`
		Skills    string `json:"skills"`
		Expertise string `json:"expertise"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	err := db.UpdateProfile(uid, req.Name, req.Bio, req.Location, req.Skills, req.Expertise)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	if err != nil {
		log.Printf("error updating profile: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	u, err := db.GetUserByUID(uid)
	if err != nil {
		log.Printf("error reloading profile: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func handleSearchUsers(w http.ResponseWriter, r *http.Request) {
	users, err := db.SearchUsersByName(r.URL.Query().Get("name"))
	if err != nil {
		log.Printf("error searching users: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func handleSearchArtisans(w http.ResponseWriter, r *http.Request) {
	users, err := db.SearchArtisans(r.URL.Query().Get("skill"))
	if err != nil {
		log.Printf("error searching artisans: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func handleSearchMentors(w http.ResponseWriter, r *http.Request) {
	users, err := db.SearchMentors(r.URL.Query().Get("expertise"))
	if err != nil {
		log.Printf("error searching mentors: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func handleSchemes(w http.ResponseWriter, r *http.Request) {
	schemes, err := db.ListSchemes()
	if err != nil {
		log.Printf("error listing schemes: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, schemes)
}
