package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/majiinB/Deck-AI-API-Service/internal/deck"
	"github.com/majiinB/Deck-AI-API-Service/internal/inference"
)

// ErrNoValidFlashcards is returned when a deck has nothing to moderate.
var ErrNoValidFlashcards = errors.New("deck has no valid flashcards")

// ModerateResult holds the aggregated verdict and the id of the recorded
// publish request. The id is empty when recording failed; the verdict is still
// returned in that case.
type ModerateResult struct {
	Verdict          Verdict
	PublishRequestID string
}

// Orchestrator drives a single moderation pass over a deck's flashcards and
// records the resulting publish request.
type Orchestrator struct {
	decks      deck.Repository
	aiClient   inference.Client
	publishes  PublishRequestRepository
	stagingDir string
}

// NewOrchestrator creates a new Orchestrator. stagingDir is where payload
// staging files are created; empty means the OS temp directory.
func NewOrchestrator(decks deck.Repository, aiClient inference.Client, publishes PublishRequestRepository, stagingDir string) *Orchestrator {
	return &Orchestrator{
		decks:      decks,
		aiClient:   aiClient,
		publishes:  publishes,
		stagingDir: stagingDir,
	}
}

// Moderate fetches the deck, runs one whole-deck moderation batch through the
// generation capability, aggregates the verdict, and records a publish request
// in FOR_APPROVAL/PENDING state. Recording is fire-and-forget with respect to
// the response: a persistence failure is logged and the verdict is returned
// anyway. Repeated calls for the same deck create duplicate publish requests.
func (o *Orchestrator) Moderate(ctx context.Context, deckID string) (*ModerateResult, error) {
	if strings.TrimSpace(deckID) == "" {
		return nil, deck.ErrInvalidID
	}

	d, err := o.decks.FindByID(ctx, deckID)
	if err != nil {
		return nil, fmt.Errorf("decks.FindByID(%s) > %w", deckID, err)
	}
	if len(d.Flashcards) == 0 {
		return nil, fmt.Errorf("%w: deck %s", ErrNoValidFlashcards, deckID)
	}

	cards := make([]inference.SourceCard, 0, len(d.Flashcards))
	for _, card := range d.Flashcards {
		cards = append(cards, inference.SourceCard{
			ID:         card.ID,
			Term:       card.Term,
			Definition: card.Definition,
		})
	}

	stagePath, cleanup, err := stageCards(o.stagingDir, deckID, cards)
	if err != nil {
		return nil, fmt.Errorf("stageCards(%s) > %w", deckID, err)
	}
	defer cleanup()

	response, err := o.aiClient.ModerateFlashcards(ctx, inference.ModerateFlashcardsRequest{Cards: cards})
	if err != nil {
		return nil, fmt.Errorf("aiClient.ModerateFlashcards(%s) > %w", deckID, err)
	}

	verdict := Aggregate([]inference.BatchVerdict{response.Verdict})

	result := &ModerateResult{Verdict: verdict}
	publishRequestID, err := o.publishes.Create(ctx, d.OwnerID, deckID, verdict)
	if err != nil {
		slog.Default().Error("failed to record publish request",
			"deckID", deckID,
			"stagedPayload", stagePath,
			"error", err)
	} else {
		result.PublishRequestID = publishRequestID
	}
	return result, nil
}
