package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/auth"
	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/db"
	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/session"
)

func registerAuthRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/signup/{role}", handleSignup)
	mux.HandleFunc("POST /api/signin", handleSignin)
}

func validRole(role string) bool {
	switch role {
	case session.RoleArtisan, session.RoleMentor, session.RoleInvestor:
		return true
	}
	return false
}

// identity is the signin/signup response the client builds its session
// record from.
type identity struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func handleSignup(w http.ResponseWriter, r *http.Request) {
	role := r.PathValue("role")
	if !validRole(role) {
		writeError(w, http.StatusBadRequest, "unknown role "+role)
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	if _, err := db.GetUserByEmail(email); err == nil {
		writeError(w, http.StatusConflict, "an account with that email already exists")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("error hashing password: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	u, err := db.CreateUser(email, hash, req.Name, role)
	if err != nil {
		log.Printf("error creating user: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, identity{UID: u.UID, Name: u.Name, Email: u.Email, Role: u.Role})
}

func handleSignin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	u, err := db.GetUserByEmail(email)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err != nil {
		log.Printf("error loading user: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	writeJSON(w, http.StatusOK, identity{UID: u.UID, Name: u.Name, Email: u.Email, Role: u.Role})
}
