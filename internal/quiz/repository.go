package quiz

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db, now: time.Now}
}

// FindByDeckAndType returns the deck's quiz without questions, or nil when absent.
func (r *DBRepository) FindByDeckAndType(ctx context.Context, deckID, quizType string) (*Quiz, error) {
	var q Quiz
	err := r.db.GetContext(ctx, &q,
		"SELECT id, deck_id, quiz_type, created_at, updated_at FROM quizzes WHERE deck_id = ? AND quiz_type = ?",
		deckID, quizType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(quiz by deck) > %w", err)
	}
	return &q, nil
}

// CreateIfAbsent inserts a quiz unless one exists for (deck_id, quiz_type).
// The unique key on that pair makes the insert conditional at the database, so
// concurrent callers converge on a single record.
func (r *DBRepository) CreateIfAbsent(ctx context.Context, deckID, quizType string) (*Quiz, bool, error) {
	id := uuid.NewString()
	now := r.now().UTC()
	result, err := r.db.ExecContext(ctx,
		"INSERT IGNORE INTO quizzes (id, deck_id, quiz_type, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		id, deckID, quizType, now, now)
	if err != nil {
		return nil, false, fmt.Errorf("db.ExecContext(insert quiz) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 1 {
		return &Quiz{ID: id, DeckID: deckID, QuizType: quizType, CreatedAt: now, UpdatedAt: now}, true, nil
	}

	existing, err := r.FindByDeckAndType(ctx, deckID, quizType)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, fmt.Errorf("quiz insert ignored but no existing quiz for deck %s", deckID)
	}
	return existing, false, nil
}

// AppendQuestions appends questions with their choices in one transaction and
// bumps the quiz's updated_at.
func (r *DBRepository) AppendQuestions(ctx context.Context, quizID string, questions []Question) error {
	if len(questions) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, question := range questions {
		result, err := tx.ExecContext(ctx,
			"INSERT INTO questions (quiz_id, flashcard_id, question) VALUES (?, ?, ?)",
			quizID, question.FlashcardID, question.Question)
		if err != nil {
			return fmt.Errorf("tx.ExecContext(insert question) > %w", err)
		}
		questionID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("result.LastInsertId() > %w", err)
		}
		for _, choice := range question.Choices {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO choices (question_id, text, is_correct) VALUES (?, ?, ?)",
				questionID, choice.Text, choice.IsCorrect); err != nil {
				return fmt.Errorf("tx.ExecContext(insert choice) > %w", err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE quizzes SET updated_at = ? WHERE id = ?", r.now().UTC(), quizID); err != nil {
		return fmt.Errorf("tx.ExecContext(update quiz updated_at) > %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

// FindByID returns the quiz with its full question list and choices.
func (r *DBRepository) FindByID(ctx context.Context, quizID, quizType string) (*Quiz, error) {
	var q Quiz
	err := r.db.GetContext(ctx, &q,
		"SELECT id, deck_id, quiz_type, created_at, updated_at FROM quizzes WHERE id = ? AND quiz_type = ?",
		quizID, quizType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, quizID)
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(quiz) > %w", err)
	}

	var questions []Question
	if err := r.db.SelectContext(ctx, &questions,
		"SELECT id, quiz_id, flashcard_id, question, created_at FROM questions WHERE quiz_id = ? ORDER BY id",
		quizID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(questions) > %w", err)
	}

	var choices []Choice
	if err := r.db.SelectContext(ctx, &choices,
		`SELECT c.id, c.question_id, c.text, c.is_correct
		FROM choices c JOIN questions q ON c.question_id = q.id
		WHERE q.quiz_id = ? ORDER BY c.question_id, c.id`,
		quizID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(choices) > %w", err)
	}

	choicesByQuestion := make(map[int64][]Choice, len(questions))
	for _, choice := range choices {
		choicesByQuestion[choice.QuestionID] = append(choicesByQuestion[choice.QuestionID], choice)
	}
	for i := range questions {
		questions[i].Choices = choicesByQuestion[questions[i].ID]
	}

	q.Questions = questions
	return &q, nil
}
