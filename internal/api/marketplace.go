package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/db"
)

func registerMarketplaceRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/marketplace/pitches", handleListPitches)
	mux.HandleFunc("GET /api/marketplace/pitch/{id}", handleGetPitch)
	mux.HandleFunc("POST /api/marketplace/pitch", handleCreatePitch)
	mux.HandleFunc("POST /api/marketplace/pitch/{id}/interest", handlePitchInterest)
	mux.HandleFunc("POST /api/marketplace/pitch/{id}/fund", handleFundPitch)
	mux.HandleFunc("GET /api/investor/{uid}/portfolio", handlePortfolio)
}

func handleListPitches(w http.ResponseWriter, r *http.Request) {
	pitches, err := db.ListPitches()
	if err != nil {
		log.Printf("error listing pitches: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, pitches)
}

func handleGetPitch(w http.ResponseWriter, r *http.Request) {
	p, err := db.GetPitch(r.PathValue("id"))
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "pitch not found")
		return
	}
	if err != nil {
		log.Printf("error loading pitch: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func handleCreatePitch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UID           string  `json:"uid"`
		BusinessID    string  `json:"business_id"`
		PitchTitle    string  `json:"pitch_title"`
		Summary       string  `json:"summary"`
		PitchDetails  string  `json:"pitch_details"`
		FundingGoal   float64 `json:"funding_goal"`
		EquityOffered float64 `json:"equity_offered"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.PitchTitle == "" || req.BusinessID == "" {
		writeError(w, http.StatusBadRequest, "pitch title and business are required")
		return
	}

	b, err := db.GetBusinessByID(req.BusinessID)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "business not found")
		return
	}
	if err != nil {
		log.Printf("error loading business: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if b.OwnerUID != req.UID {
		writeError(w, http.StatusForbidden, "only the business owner can pitch it")
		return
	}
	// A pitch goes to market only after a mentor has verified the business.
	if !b.Verified {
		writeError(w, http.StatusBadRequest, "business must be verified by a mentor before pitching")
		return
	}

	p, err := db.CreatePitch(req.BusinessID, req.UID, req.PitchTitle, req.Summary,
		req.PitchDetails, req.FundingGoal, req.EquityOffered)
	if err != nil {
		log.Printf("error creating pitch: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	p.BusinessName = b.BusinessName
	writeJSON(w, http.StatusCreated, p)
}

func handlePitchInterest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UID string `json:"uid"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := db.AddPitchInterest(r.PathValue("id"), req.UID); err != nil {
		log.Printf("error adding interest: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "interested"})
}

func handleFundPitch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UID    string  `json:"uid"`
		Amount float64 `json:"amount"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	p, err := db.FundPitch(r.PathValue("id"), req.UID, req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func handlePortfolio(w http.ResponseWriter, r *http.Request) {
	investments, err := db.PortfolioFor(r.PathValue("uid"))
	if err != nil {
		log.Printf("error loading portfolio: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, investments)
}
