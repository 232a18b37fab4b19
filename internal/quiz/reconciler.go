package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/majiinB/Deck-AI-API-Service/internal/deck"
	"github.com/majiinB/Deck-AI-API-Service/internal/inference"
)

// ReconcileRequest carries one quiz request for a single deck.
type ReconcileRequest struct {
	DeckID      string
	RequesterID string
	// NumOfQuiz is the requested size of the returned subset. Nil means half
	// of the available questions, rounded up.
	NumOfQuiz *int
}

// ReconcileResult holds the response payload: the quiz with its questions
// replaced by the selected subset. The persisted quiz is never truncated.
type ReconcileResult struct {
	QuizContent *Quiz
}

// Reconciler decides, per deck, whether a request needs a brand-new quiz, an
// incremental top-up for newly added flashcards, or just a fresh random subset
// of the existing questions. All capabilities are injected; the reconciler
// keeps no shared state between requests.
type Reconciler struct {
	decks    deck.Repository
	quizzes  Repository
	aiClient inference.Client
	validate *validator.Validate
	rng      *rand.Rand
	now      func() time.Time
}

// ReconcilerOption configures optional reconciler behavior, mainly for tests.
type ReconcilerOption func(*Reconciler)

// WithRandSource replaces the shuffle source. A seeded source makes the
// selected subset reproducible.
func WithRandSource(r *rand.Rand) ReconcilerOption {
	return func(rec *Reconciler) {
		rec.rng = r
	}
}

// WithClock replaces the watermark clock.
func WithClock(now func() time.Time) ReconcilerOption {
	return func(rec *Reconciler) {
		rec.now = now
	}
}

// NewReconciler creates a new Reconciler.
func NewReconciler(decks deck.Repository, quizzes Repository, aiClient inference.Client, opts ...ReconcilerOption) *Reconciler {
	r := &Reconciler{
		decks:    decks,
		quizzes:  quizzes,
		aiClient: aiClient,
		validate: validator.New(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile runs the state machine for one deck and returns the selected
// subset. Path selection is keyed by (watermark present, quiz present):
//
//	watermark absent,  quiz absent  -> create from all current flashcards
//	any watermark,     quiz present -> extend with flashcards newer than the quiz
//	watermark present, quiz absent  -> inconsistent; rebuilt as an extension
//	                                   over an empty quiz from all flashcards
//
// Once a mutation has committed, a later failure (including an oversized
// requested count in the selection tail) never rolls it back.
func (r *Reconciler) Reconcile(ctx context.Context, req ReconcileRequest) (*ReconcileResult, error) {
	if strings.TrimSpace(req.DeckID) == "" {
		return nil, deck.ErrInvalidID
	}
	if strings.TrimSpace(req.RequesterID) == "" {
		return nil, ErrInvalidUserID
	}

	watermark, err := r.decks.GetWatermark(ctx, req.DeckID)
	if err != nil {
		return nil, fmt.Errorf("decks.GetWatermark(%s) > %w", req.DeckID, err)
	}

	existing, err := r.quizzes.FindByDeckAndType(ctx, req.DeckID, TypeMultipleChoice)
	if err != nil {
		return nil, fmt.Errorf("quizzes.FindByDeckAndType(%s) > %w", req.DeckID, err)
	}

	switch {
	case existing != nil:
		return r.extend(ctx, req, existing, existing.UpdatedAt)
	case watermark != nil:
		// A stamped deck without a quiz record should not happen; rebuild by
		// extending an empty quiz with every flashcard.
		slog.Default().Warn("deck has a quiz watermark but no quiz record, rebuilding",
			"deckID", req.DeckID)
		return r.extend(ctx, req, nil, time.Time{})
	default:
		return r.create(ctx, req)
	}
}

// create builds a quiz from scratch using all current flashcards.
func (r *Reconciler) create(ctx context.Context, req ReconcileRequest) (*ReconcileResult, error) {
	d, err := r.decks.FindByID(ctx, req.DeckID)
	if err != nil {
		return nil, fmt.Errorf("decks.FindByID(%s) > %w", req.DeckID, err)
	}
	if len(d.Flashcards) == 0 {
		// Nothing to generate from. Short-circuit without touching the
		// generation capability or persisting anything.
		return r.selectInto(&Quiz{DeckID: req.DeckID, QuizType: TypeMultipleChoice, Questions: []Question{}}, req.NumOfQuiz)
	}

	questions, err := r.generate(ctx, d.Flashcards)
	if err != nil {
		return nil, err
	}

	q, created, err := r.quizzes.CreateIfAbsent(ctx, req.DeckID, TypeMultipleChoice)
	if err != nil {
		return nil, fmt.Errorf("quizzes.CreateIfAbsent(%s) > %w", req.DeckID, err)
	}
	if created {
		if err := r.commit(ctx, req.DeckID, q.ID, questions); err != nil {
			return nil, err
		}
	} else {
		// Lost the creation race; the winner owns the initial build and the
		// generated batch is discarded rather than appended twice.
		slog.Default().Warn("quiz already created concurrently, discarding generated questions",
			"deckID", req.DeckID, "quizID", q.ID)
	}

	return r.fetchAndSelect(ctx, q.ID, req.NumOfQuiz)
}

// extend tops up an existing quiz (or a freshly materialized empty one when
// the persisted state was inconsistent) with questions for flashcards created
// after the given timestamp.
func (r *Reconciler) extend(ctx context.Context, req ReconcileRequest, existing *Quiz, since time.Time) (*ReconcileResult, error) {
	newCards, err := r.decks.FindFlashcardsNewerThan(ctx, req.DeckID, since)
	if err != nil {
		return nil, fmt.Errorf("decks.FindFlashcardsNewerThan(%s) > %w", req.DeckID, err)
	}

	if len(newCards) == 0 {
		if existing == nil {
			// Inconsistent state and an empty deck: nothing to rebuild from.
			return r.selectInto(&Quiz{DeckID: req.DeckID, QuizType: TypeMultipleChoice, Questions: []Question{}}, req.NumOfQuiz)
		}
		// Pure read path: no generation, no writes.
		return r.fetchAndSelect(ctx, existing.ID, req.NumOfQuiz)
	}

	questions, err := r.generate(ctx, newCards)
	if err != nil {
		return nil, err
	}

	quizID := ""
	appendQuestions := true
	if existing != nil {
		quizID = existing.ID
	} else {
		q, created, err := r.quizzes.CreateIfAbsent(ctx, req.DeckID, TypeMultipleChoice)
		if err != nil {
			return nil, fmt.Errorf("quizzes.CreateIfAbsent(%s) > %w", req.DeckID, err)
		}
		quizID = q.ID
		appendQuestions = created
	}

	if appendQuestions {
		if err := r.commit(ctx, req.DeckID, quizID, questions); err != nil {
			return nil, err
		}
	}

	return r.fetchAndSelect(ctx, quizID, req.NumOfQuiz)
}

// generate invokes the generation capability for the given cards and validates
// the response shape, failing closed with ErrAIGenerationFailed.
func (r *Reconciler) generate(ctx context.Context, cards []deck.Flashcard) ([]Question, error) {
	response, err := r.aiClient.GenerateQuestions(ctx, inference.GenerateQuestionsRequest{
		Cards: toSourceCards(cards),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: aiClient.GenerateQuestions > %v", ErrAIGenerationFailed, err)
	}
	if len(response.Questions) == 0 {
		return nil, fmt.Errorf("%w: response contains no questions", ErrAIGenerationFailed)
	}

	questions := make([]Question, 0, len(response.Questions))
	for i, generated := range response.Questions {
		if err := r.validate.Struct(generated); err != nil {
			return nil, fmt.Errorf("%w: question %d is malformed: %v", ErrAIGenerationFailed, i, err)
		}
		correct := 0
		for _, choice := range generated.Choices {
			if choice.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return nil, fmt.Errorf("%w: question %d has %d correct choices", ErrAIGenerationFailed, i, correct)
		}

		question := Question{
			FlashcardID: generated.FlashcardID,
			Question:    generated.Question,
			Choices:     make([]Choice, 0, len(generated.Choices)),
		}
		for _, choice := range generated.Choices {
			question.Choices = append(question.Choices, Choice{
				Text:      choice.Text,
				IsCorrect: choice.IsCorrect,
			})
		}
		questions = append(questions, question)
	}
	return questions, nil
}

// commit appends the generated questions and stamps the deck watermark.
func (r *Reconciler) commit(ctx context.Context, deckID, quizID string, questions []Question) error {
	if err := r.quizzes.AppendQuestions(ctx, quizID, questions); err != nil {
		return fmt.Errorf("quizzes.AppendQuestions(%s) > %w", quizID, err)
	}
	if err := r.decks.UpdateMadeToQuizAt(ctx, deckID, r.now()); err != nil {
		return fmt.Errorf("decks.UpdateMadeToQuizAt(%s) > %w", deckID, err)
	}
	return nil
}

// fetchAndSelect reads the full persisted question list and applies the
// shuffle-then-truncate selection.
func (r *Reconciler) fetchAndSelect(ctx context.Context, quizID string, numOfQuiz *int) (*ReconcileResult, error) {
	full, err := r.quizzes.FindByID(ctx, quizID, TypeMultipleChoice)
	if err != nil {
		return nil, fmt.Errorf("quizzes.FindByID(%s) > %w", quizID, err)
	}
	return r.selectInto(full, numOfQuiz)
}

func (r *Reconciler) selectInto(full *Quiz, numOfQuiz *int) (*ReconcileResult, error) {
	selected, err := Select(Shuffle(r.rng, full.Questions), numOfQuiz)
	if err != nil {
		return nil, err
	}

	content := *full
	content.Questions = selected
	return &ReconcileResult{QuizContent: &content}, nil
}

func toSourceCards(cards []deck.Flashcard) []inference.SourceCard {
	sourceCards := make([]inference.SourceCard, 0, len(cards))
	for _, card := range cards {
		sourceCards = append(sourceCards, inference.SourceCard{
			ID:         card.ID,
			Term:       card.Term,
			Definition: card.Definition,
		})
	}
	return sourceCards
}
