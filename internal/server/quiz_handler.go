package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/majiinB/Deck-AI-API-Service/internal/quiz"
)

const (
	minRequestedQuestions = 5
	maxRequestedQuestions = 50
)

type quizRequest struct {
	DeckID    string `json:"deckId"`
	NumOfQuiz *int   `json:"numOfQuiz"`
}

func (s *Server) handleQuiz(w http.ResponseWriter, r *http.Request) {
	ownerID := strings.TrimSpace(r.Header.Get("X-User-ID"))

	var body quizRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, ownerID, http.StatusBadRequest, messageInvalidRequest, nil)
		return
	}
	if body.NumOfQuiz != nil && (*body.NumOfQuiz < minRequestedQuestions || *body.NumOfQuiz > maxRequestedQuestions) {
		writeJSON(w, ownerID, http.StatusBadRequest, messageInvalidRequest, nil)
		return
	}

	result, err := s.reconciler.Reconcile(r.Context(), quiz.ReconcileRequest{
		DeckID:      body.DeckID,
		RequesterID: ownerID,
		NumOfQuiz:   body.NumOfQuiz,
	})
	if err != nil {
		writeError(w, ownerID, err)
		return
	}
	writeJSON(w, ownerID, http.StatusOK, messageSuccess, result.QuizContent)
}
