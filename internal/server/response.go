package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/majiinB/Deck-AI-API-Service/internal/deck"
	"github.com/majiinB/Deck-AI-API-Service/internal/moderation"
	"github.com/majiinB/Deck-AI-API-Service/internal/quiz"
)

// Stable message codes surfaced to callers. Full error detail stays in logs.
const (
	messageSuccess             = "SUCCESS"
	messageInvalidRequest      = "INVALID_REQUEST"
	messageInvalidDeckID       = "INVALID_DECK_ID"
	messageInvalidUserID       = "INVALID_USER_ID"
	messageDeckNotFound        = "DECK_NOT_FOUND"
	messageQuizNotFound        = "QUIZ_NOT_FOUND"
	messageNoValidFlashcards   = "NO_VALID_FLASHCARDS"
	messageExceedsAvailable    = "EXCEEDS_AVAILABLE_CARDS"
	messageAIGenerationFailed  = "AI_GENERATION_FAILED"
	messageInternalServerError = "INTERNAL_SERVER_ERROR"
)

// envelope is the single response shape shared by every endpoint.
type envelope struct {
	Status         int    `json:"status"`
	RequestOwnerID string `json:"request_owner_id"`
	Message        string `json:"message"`
	Data           any    `json:"data"`
}

func writeJSON(w http.ResponseWriter, ownerID string, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{
		Status:         status,
		RequestOwnerID: ownerID,
		Message:        message,
		Data:           data,
	}); err != nil {
		slog.Default().Error("failed to encode response", "error", err)
	}
}

// writeError maps a domain error to the response envelope. Unclassified
// errors are logged with full detail and reported generically.
func writeError(w http.ResponseWriter, ownerID string, err error) {
	switch {
	case errors.Is(err, deck.ErrInvalidID):
		writeJSON(w, ownerID, http.StatusBadRequest, messageInvalidDeckID, nil)
	case errors.Is(err, quiz.ErrInvalidUserID):
		writeJSON(w, ownerID, http.StatusBadRequest, messageInvalidUserID, nil)
	case errors.Is(err, quiz.ErrExceedsAvailableCards):
		writeJSON(w, ownerID, http.StatusBadRequest, messageExceedsAvailable, nil)
	case errors.Is(err, deck.ErrNotFound):
		writeJSON(w, ownerID, http.StatusNotFound, messageDeckNotFound, nil)
	case errors.Is(err, quiz.ErrNotFound):
		writeJSON(w, ownerID, http.StatusNotFound, messageQuizNotFound, nil)
	case errors.Is(err, moderation.ErrNoValidFlashcards):
		writeJSON(w, ownerID, http.StatusNotFound, messageNoValidFlashcards, nil)
	case errors.Is(err, quiz.ErrAIGenerationFailed):
		writeJSON(w, ownerID, http.StatusBadGateway, messageAIGenerationFailed, nil)
	default:
		slog.Default().Error("unclassified error", "error", err)
		writeJSON(w, ownerID, http.StatusInternalServerError, messageInternalServerError, nil)
	}
}
