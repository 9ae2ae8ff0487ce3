package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/db"
)

func registerMentorshipRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/mentor/review", handleBusinessesForReview)
	mux.HandleFunc("POST /api/mentor/{uid}/verify/{businessID}", handleVerifyBusiness)
	mux.HandleFunc("POST /api/mentor/request", handleCreateMentorshipRequest)
	mux.HandleFunc("GET /api/mentor/{uid}/requests", handleMentorRequests)
	mux.HandleFunc("PUT /api/mentor/request/{id}", handleUpdateMentorshipRequest)
	mux.HandleFunc("GET /api/mentor/{uid}/artisans", handleMentorArtisans)
	mux.HandleFunc("GET /api/artisan/{uid}/mentors", handleArtisanMentors)
}

func handleBusinessesForReview(w http.ResponseWriter, r *http.Request) {
	businesses, err := db.UnverifiedBusinesses()
	if err != nil {
		log.Printf("error listing businesses for review: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, businesses)
}

func handleVerifyBusiness(w http.ResponseWriter, r *http.Request) {
	err := db.VerifyBusiness(r.PathValue("businessID"), r.PathValue("uid"))
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "business not found or already verified")
		return
	}
	if err != nil {
		log.Printf("error verifying business: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "verified"})
}

func handleCreateMentorshipRequest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ArtisanUID string `json:"artisan_uid"`
		MentorUID  string `json:"mentor_uid"`
		Message    string `json:"message"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.ArtisanUID == "" || req.MentorUID == "" {
		writeError(w, http.StatusBadRequest, "artisan_uid and mentor_uid are required")
		return
	}

	mr, err := db.CreateMentorshipRequest(req.ArtisanUID, req.MentorUID, req.Message)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "mentor not found")
		return
	}
	if err != nil {
		log.Printf("error creating mentorship request: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, mr)
}

func handleMentorRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := db.RequestsForMentor(r.PathValue("uid"))
	if err != nil {
		log.Printf("error listing mentorship requests: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func handleUpdateMentorshipRequest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MentorUID string `json:"mentor_uid"`
		Status    string `json:"status"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Status != "accepted" && req.Status != "declined" {
		writeError(w, http.StatusBadRequest, "status must be accepted or declined")
		return
	}

	err := db.UpdateMentorshipRequest(r.PathValue("id"), req.MentorUID, req.Status)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "request not found or already resolved")
		return
	}
	if err != nil {
		log.Printf("error updating mentorship request: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

func handleMentorArtisans(w http.ResponseWriter, r *http.Request) {
	artisans, err := db.ArtisansForMentor(r.PathValue("uid"))
	if err != nil {
		log.Printf("error listing artisans: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, artisans)
}

func handleArtisanMentors(w http.ResponseWriter, r *http.Request) {
	mentors, err := db.MentorsForArtisan(r.PathValue("uid"))
	if err != nil {
		log.Printf("error listing mentors: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, mentors)
}
