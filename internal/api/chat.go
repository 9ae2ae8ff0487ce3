package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/db"
)

func registerChatRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/chat/{uid}/send", handleSendMessage)
	mux.HandleFunc("GET /api/chat/{uid}/get/{chatID}", handleChatMessages)
	mux.HandleFunc("GET /api/chat/{uid}/conversations", handleConversations)
}

func handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RecipientUID string `json:"recipient_uid"`
		Content      string `json:"content"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.RecipientUID == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "recipient_uid and content are required")
		return
	}

	chatID, err := db.SendChatMessage(r.PathValue("uid"), req.RecipientUID, req.Content)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "recipient not found")
		return
	}
	if err != nil {
		log.Printf("error sending message: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"chat_id": chatID})
}

func handleChatMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := db.ChatMessages(r.PathValue("uid"), r.PathValue("chatID"))
	if err != nil {
		log.Printf("error loading chat: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func handleConversations(w http.ResponseWriter, r *http.Request) {
	convos, err := db.Conversations(r.PathValue("uid"))
	if err != nil {
		log.Printf("error listing conversations: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, convos)
}
