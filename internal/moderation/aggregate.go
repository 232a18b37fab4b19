// Package moderation drives moderation passes over deck flashcards and records
// the resulting publish requests.
package moderation

import (
	"github.com/majiinB/Deck-AI-API-Service/internal/inference"
)

// DecisionAppropriate is the overall decision when no batch flags anything.
const DecisionAppropriate = "Content is appropriate"

// Verdict is the aggregated moderation outcome for a whole deck.
// FlaggedCards is always a list, never nil, so the JSON shape is stable.
type Verdict struct {
	IsAppropriate      bool                    `json:"is_appropriate"`
	ModerationDecision string                  `json:"moderation_decision"`
	FlaggedCards       []inference.FlaggedCard `json:"flagged_cards"`
}

// Aggregate folds per-batch verdicts into one overall verdict. Any
// inappropriate batch makes the whole deck inappropriate; the decision text of
// the LAST inappropriate batch wins. Flagged cards are concatenated in batch
// order; a batch with an empty flagged list contributes nothing. Zero batches
// yield the appropriate default.
func Aggregate(batches []inference.BatchVerdict) Verdict {
	verdict := Verdict{
		IsAppropriate:      true,
		ModerationDecision: DecisionAppropriate,
		FlaggedCards:       []inference.FlaggedCard{},
	}
	for _, batch := range batches {
		if batch.IsAppropriate {
			continue
		}
		verdict.IsAppropriate = false
		verdict.ModerationDecision = batch.ModerationDecision
		if len(batch.FlaggedCards) == 0 {
			continue
		}
		verdict.FlaggedCards = append(verdict.FlaggedCards, batch.FlaggedCards...)
	}
	return verdict
}
