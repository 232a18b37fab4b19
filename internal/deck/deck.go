// Package deck provides deck and flashcard domain models and repository interfaces.
package deck

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -source=deck.go -destination=../mocks/deck/mock_repository.go -package=mock_deck

var (
	// ErrInvalidID is returned before any I/O when a caller supplies an empty deck id.
	ErrInvalidID = errors.New("invalid deck id")
	// ErrNotFound is returned when no deck exists for the given id.
	ErrNotFound = errors.New("deck not found")
)

// Flashcard is a term/definition pair owned by a deck. Flashcards are
// append-only; nothing in this service mutates one after creation.
type Flashcard struct {
	ID         string    `db:"id" json:"id"`
	DeckID     string    `db:"deck_id" json:"deckId"`
	Term       string    `db:"term" json:"term"`
	Definition string    `db:"definition" json:"definition"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

// Deck is a user-owned collection of flashcards. MadeToQuizAt is the
// watermark marking the last flashcard state incorporated into a quiz;
// nil means the deck has never been quizzed.
type Deck struct {
	ID           string     `db:"id" json:"id"`
	OwnerID      string     `db:"owner_id" json:"ownerId"`
	Title        string     `db:"title" json:"title"`
	MadeToQuizAt *time.Time `db:"made_to_quiz_at" json:"madeToQuizAt,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`

	Flashcards []Flashcard `db:"-" json:"flashcards"`
}

// Repository defines read and watermark operations over decks and their flashcards.
type Repository interface {
	// FindByID returns the deck with its flashcards loaded in creation order,
	// or ErrNotFound.
	FindByID(ctx context.Context, id string) (*Deck, error)
	// GetWatermark returns the deck's made_to_quiz_at value, nil when the deck
	// has never been quizzed, or ErrNotFound when the deck does not exist.
	GetWatermark(ctx context.Context, id string) (*time.Time, error)
	// UpdateMadeToQuizAt stamps the watermark. Returns ErrNotFound when the
	// deck does not exist.
	UpdateMadeToQuizAt(ctx context.Context, id string, at time.Time) error
	// FindFlashcardsNewerThan returns the deck's flashcards created strictly
	// after the given timestamp, in creation order.
	FindFlashcardsNewerThan(ctx context.Context, deckID string, after time.Time) ([]Flashcard, error)
}
