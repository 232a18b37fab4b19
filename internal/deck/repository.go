package deck

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindByID returns the deck with its flashcards loaded, or ErrNotFound.
func (r *DBRepository) FindByID(ctx context.Context, id string) (*Deck, error) {
	var d Deck
	err := r.db.GetContext(ctx, &d,
		"SELECT id, owner_id, title, made_to_quiz_at, created_at FROM decks WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(deck) > %w", err)
	}

	if err := r.db.SelectContext(ctx, &d.Flashcards,
		"SELECT * FROM flashcards WHERE deck_id = ? ORDER BY created_at, id", id); err != nil {
		return nil, fmt.Errorf("db.SelectContext(flashcards) > %w", err)
	}
	return &d, nil
}

// GetWatermark returns the deck's made_to_quiz_at, nil when it was never set.
func (r *DBRepository) GetWatermark(ctx context.Context, id string) (*time.Time, error) {
	var watermark sql.NullTime
	err := r.db.GetContext(ctx, &watermark,
		"SELECT made_to_quiz_at FROM decks WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(made_to_quiz_at) > %w", err)
	}
	if !watermark.Valid {
		return nil, nil
	}
	return &watermark.Time, nil
}

// UpdateMadeToQuizAt stamps the watermark on the deck.
func (r *DBRepository) UpdateMadeToQuizAt(ctx context.Context, id string, at time.Time) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE decks SET made_to_quiz_at = ? WHERE id = ?", at, id)
	if err != nil {
		return fmt.Errorf("db.ExecContext(update made_to_quiz_at) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// FindFlashcardsNewerThan returns flashcards created strictly after the timestamp.
func (r *DBRepository) FindFlashcardsNewerThan(ctx context.Context, deckID string, after time.Time) ([]Flashcard, error) {
	var cards []Flashcard
	if err := r.db.SelectContext(ctx, &cards,
		"SELECT * FROM flashcards WHERE deck_id = ? AND created_at > ? ORDER BY created_at, id",
		deckID, after); err != nil {
		return nil, fmt.Errorf("db.SelectContext(new flashcards) > %w", err)
	}
	return cards, nil
}
