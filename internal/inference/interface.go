package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the methods for AI inference operations
type Client interface {
	GenerateQuestions(ctx context.Context, params GenerateQuestionsRequest) (GenerateQuestionsResponse, error)
	ModerateFlashcards(ctx context.Context, params ModerateFlashcardsRequest) (ModerateFlashcardsResponse, error)
}

// SourceCard is a flashcard serialized into the shape the model consumes.
type SourceCard struct {
	ID         string `json:"id"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// GenerateQuestionsRequest asks for exactly one multiple-choice question per card.
type GenerateQuestionsRequest struct {
	Cards []SourceCard `json:"cards"`
}

type GenerateQuestionsResponse struct {
	Questions []GeneratedQuestion
}

// GeneratedQuestion is the typed decode target for one generated question.
// Callers validate the struct tags and the single-correct-choice rule before
// persisting anything, and treat a violation as an upstream failure.
type GeneratedQuestion struct {
	FlashcardID string            `json:"flashcard_id" validate:"required"`
	Question    string            `json:"question" validate:"required"`
	Choices     []GeneratedChoice `json:"choices" validate:"len=4,dive"`
}

type GeneratedChoice struct {
	Text      string `json:"text" validate:"required"`
	IsCorrect bool   `json:"is_correct"`
}

// ModerateFlashcardsRequest carries one batch of cards for a moderation pass.
type ModerateFlashcardsRequest struct {
	Cards []SourceCard `json:"cards"`
}

type ModerateFlashcardsResponse struct {
	Verdict BatchVerdict
}

// BatchVerdict is the model's verdict for a single batch of cards.
type BatchVerdict struct {
	IsAppropriate      bool          `json:"is_appropriate"`
	ModerationDecision string        `json:"moderation_decision"`
	FlaggedCards       []FlaggedCard `json:"flagged_cards"`
}

// FlaggedCard identifies one card the model considered inappropriate.
type FlaggedCard struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Reason     string `json:"reason"`
}

const (
	DefaultMaxRetryAttempts = 3
)
