// Package testutil provides shared test helpers for creating config files and deck fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/majiinB/Deck-AI-API-Service/internal/deck"
	"github.com/majiinB/Deck-AI-API-Service/internal/inference"
)

// SetupTestConfig creates a minimal config file for testing.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	configContent := fmt.Sprintf(`server:
  address: ":0"
  request_timeout_seconds: 5
database:
  host: 127.0.0.1
  port: 3306
  username: deck_ai
  database: deck_ai_test
openai:
  model: gpt-4o-mini
moderation:
  staging_directory: %s
`, tmpDir)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// DeckOption configures optional fields when creating a deck fixture.
type DeckOption func(*deck.Deck)

// WithOwner sets the deck's owner id.
func WithOwner(ownerID string) DeckOption {
	return func(d *deck.Deck) {
		d.OwnerID = ownerID
	}
}

// WithWatermark sets the deck's made_to_quiz_at timestamp.
func WithWatermark(at time.Time) DeckOption {
	return func(d *deck.Deck) {
		d.MadeToQuizAt = &at
	}
}

// WithFlashcardCount populates the deck with n flashcards created one minute
// apart, starting from the deck's creation time.
func WithFlashcardCount(n int) DeckOption {
	return func(d *deck.Deck) {
		d.Flashcards = NewFlashcards(d.ID, n, d.CreatedAt)
	}
}

// NewDeck creates a deck fixture with a stable id and creation time.
func NewDeck(id string, opts ...DeckOption) *deck.Deck {
	d := &deck.Deck{
		ID:        id,
		OwnerID:   "user-1",
		Title:     "Deck " + id,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewFlashcards creates n flashcards for the deck, created one minute apart
// starting from the given time.
func NewFlashcards(deckID string, n int, from time.Time) []deck.Flashcard {
	cards := make([]deck.Flashcard, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, deck.Flashcard{
			ID:         fmt.Sprintf("%s-card-%d", deckID, i+1),
			DeckID:     deckID,
			Term:       fmt.Sprintf("term %d", i+1),
			Definition: fmt.Sprintf("definition %d", i+1),
			CreatedAt:  from.Add(time.Duration(i+1) * time.Minute),
		})
	}
	return cards
}

// NewGeneratedQuestions builds one well-formed question per flashcard, with
// four choices and exactly one correct answer.
func NewGeneratedQuestions(cards []deck.Flashcard) []inference.GeneratedQuestion {
	questions := make([]inference.GeneratedQuestion, 0, len(cards))
	for _, card := range cards {
		questions = append(questions, inference.GeneratedQuestion{
			FlashcardID: card.ID,
			Question:    fmt.Sprintf("What does %q mean?", card.Term),
			Choices: []inference.GeneratedChoice{
				{Text: card.Definition, IsCorrect: true},
				{Text: "wrong answer a"},
				{Text: "wrong answer b"},
				{Text: "wrong answer c"},
			},
		})
	}
	return questions
}
