// Package quiz provides quiz domain models, the shuffle selector, and the
// reconciler that keeps a deck's quiz in sync with its flashcards.
package quiz

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -source=quiz.go -destination=../mocks/quiz/mock_repository.go -package=mock_quiz

// TypeMultipleChoice is the only quiz type this service produces. At most one
// quiz of this type exists per deck.
const TypeMultipleChoice = "multiple-choice"

var (
	// ErrInvalidUserID is returned before any I/O when the requester id is empty.
	ErrInvalidUserID = errors.New("invalid user id")
	// ErrNotFound is returned when a quiz expected to exist is absent.
	ErrNotFound = errors.New("quiz not found")
	// ErrAIGenerationFailed is returned when the generation capability fails or
	// returns a malformed payload. Never retried here; retries belong to the
	// inference client.
	ErrAIGenerationFailed = errors.New("ai generation failed")
	// ErrExceedsAvailableCards is returned when the requested question count is
	// larger than what the quiz holds. Raised only in the selection tail, after
	// any creation or extension has already been committed.
	ErrExceedsAvailableCards = errors.New("requested count exceeds available cards")
)

// Choice is one of exactly four answers for a question.
type Choice struct {
	ID         int64  `db:"id" json:"-"`
	QuestionID int64  `db:"question_id" json:"-"`
	Text       string `db:"text" json:"text"`
	IsCorrect  bool   `db:"is_correct" json:"isCorrect"`
}

// Question references the flashcard it was generated from. The reference is a
// back-pointer, not ownership; deleting a question never touches the card.
type Question struct {
	ID          int64     `db:"id" json:"-"`
	QuizID      string    `db:"quiz_id" json:"-"`
	FlashcardID string    `db:"flashcard_id" json:"relatedFlashcardId"`
	Question    string    `db:"question" json:"question"`
	CreatedAt   time.Time `db:"created_at" json:"-"`

	Choices []Choice `db:"-" json:"choices"`
}

// Quiz is created once per deck and only ever grows: new questions are
// appended, existing ones are never replaced or truncated.
type Quiz struct {
	ID        string    `db:"id" json:"id"`
	DeckID    string    `db:"deck_id" json:"associatedDeckId"`
	QuizType  string    `db:"quiz_type" json:"quizType"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`

	Questions []Question `db:"-" json:"questions"`
}

// Repository defines persistence operations over quizzes and their questions.
type Repository interface {
	// FindByDeckAndType returns the deck's quiz without questions loaded, or
	// nil when no quiz of that type exists.
	FindByDeckAndType(ctx context.Context, deckID, quizType string) (*Quiz, error)
	// CreateIfAbsent inserts a quiz record unless one already exists for the
	// deck and type. The insert is conditional at the persistence layer, so two
	// concurrent callers cannot both create one. The boolean reports whether
	// this call created the record.
	CreateIfAbsent(ctx context.Context, deckID, quizType string) (*Quiz, bool, error)
	// AppendQuestions appends questions and their choices to the quiz and bumps
	// the quiz's updated_at.
	AppendQuestions(ctx context.Context, quizID string, questions []Question) error
	// FindByID returns the quiz with its full question list and choices loaded,
	// or ErrNotFound.
	FindByID(ctx context.Context, quizID, quizType string) (*Quiz, error)
}
