package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/majiinB/Deck-AI-API-Service/internal/moderation"
)

type moderationRequest struct {
	DeckID string `json:"deckId"`
}

type moderationResponse struct {
	Verdict          moderation.Verdict `json:"verdict"`
	PublishRequestID string             `json:"publishRequestId,omitempty"`
}

func (s *Server) handleModeration(w http.ResponseWriter, r *http.Request) {
	ownerID := strings.TrimSpace(r.Header.Get("X-User-ID"))

	var body moderationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, ownerID, http.StatusBadRequest, messageInvalidRequest, nil)
		return
	}

	result, err := s.moderator.Moderate(r.Context(), body.DeckID)
	if err != nil {
		writeError(w, ownerID, err)
		return
	}
	writeJSON(w, ownerID, http.StatusOK, messageSuccess, moderationResponse{
		Verdict:          result.Verdict,
		PublishRequestID: result.PublishRequestID,
	})
}
