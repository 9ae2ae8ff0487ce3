package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/db"
)

func registerBusinessRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/artisan/{uid}/business", handleListBusinesses)
	mux.HandleFunc("POST /api/artisan/{uid}/business", handleCreateBusiness)
	mux.HandleFunc("PUT /api/business/{id}/deactivate", handleDeactivateBusiness)
}

func handleListBusinesses(w http.ResponseWriter, r *http.Request) {
	businesses, err := db.GetBusinessesByOwner(r.PathValue("uid"))
	if err != nil {
		log.Printf("error listing businesses: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, businesses)
}

func handleCreateBusiness(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")

	var req struct {
		BusinessName string `json:"business_name"`
		Description  string `json:"description"`
		Category     string `json:"category"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.BusinessName == "" {
		writeError(w, http.StatusBadRequest, "business name is required")
		return
	}

	b, err := db.CreateBusiness(uid, req.BusinessName, req.Description, req.Category)
	if err != nil {
		log.Printf("error creating business: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func handleDeactivateBusiness(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UID string `json:"uid"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	err := db.DeactivateBusiness(r.PathValue("id"), req.UID)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "business not found")
		return
	}
	if err != nil {
		log.Printf("error deactivating business: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}
