package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/majiinB/Deck-AI-API-Service/internal/inference"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name    string
		batches []inference.BatchVerdict
		want    Verdict
	}{
		{
			name:    "zero batches yield the appropriate default",
			batches: nil,
			want: Verdict{
				IsAppropriate:      true,
				ModerationDecision: DecisionAppropriate,
				FlaggedCards:       []inference.FlaggedCard{},
			},
		},
		{
			name: "all appropriate batches",
			batches: []inference.BatchVerdict{
				{IsAppropriate: true, ModerationDecision: "fine"},
				{IsAppropriate: true, ModerationDecision: "also fine"},
			},
			want: Verdict{
				IsAppropriate:      true,
				ModerationDecision: DecisionAppropriate,
				FlaggedCards:       []inference.FlaggedCard{},
			},
		},
		{
			name: "one inappropriate batch flips the verdict",
			batches: []inference.BatchVerdict{
				{IsAppropriate: true},
				{
					IsAppropriate:      false,
					ModerationDecision: "Contains offensive language",
					FlaggedCards: []inference.FlaggedCard{
						{Term: "bad term", Definition: "bad definition", Reason: "offensive"},
					},
				},
			},
			want: Verdict{
				IsAppropriate:      false,
				ModerationDecision: "Contains offensive language",
				FlaggedCards: []inference.FlaggedCard{
					{Term: "bad term", Definition: "bad definition", Reason: "offensive"},
				},
			},
		},
		{
			name: "last inappropriate decision wins and flagged cards concatenate",
			batches: []inference.BatchVerdict{
				{
					IsAppropriate:      false,
					ModerationDecision: "first decision",
					FlaggedCards: []inference.FlaggedCard{
						{Term: "a", Reason: "reason a"},
					},
				},
				{IsAppropriate: true, ModerationDecision: "ignored"},
				{
					IsAppropriate:      false,
					ModerationDecision: "second decision",
					FlaggedCards: []inference.FlaggedCard{
						{Term: "b", Reason: "reason b"},
					},
				},
			},
			want: Verdict{
				IsAppropriate:      false,
				ModerationDecision: "second decision",
				FlaggedCards: []inference.FlaggedCard{
					{Term: "a", Reason: "reason a"},
					{Term: "b", Reason: "reason b"},
				},
			},
		},
		{
			name: "inappropriate batch with no flagged cards still flips the verdict",
			batches: []inference.BatchVerdict{
				{IsAppropriate: false, ModerationDecision: "flagged without details"},
			},
			want: Verdict{
				IsAppropriate:      false,
				ModerationDecision: "flagged without details",
				FlaggedCards:       []inference.FlaggedCard{},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(tt.batches))
		})
	}
}
