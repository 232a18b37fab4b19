package quiz

import (
	"fmt"
	"math/rand"
)

// Shuffle returns a Fisher-Yates permutation of questions drawn from r. The
// input is never modified. With a seeded source the permutation is exactly
// reproducible.
func Shuffle(r *rand.Rand, questions []Question) []Question {
	shuffled := make([]Question, len(questions))
	copy(shuffled, questions)
	for i := len(shuffled) - 1; i >= 1; i-- {
		j := r.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Select returns the first requested questions of an already shuffled slice.
// A nil requested count defaults to half the available questions, rounded up.
// Requesting more than what is available fails with ErrExceedsAvailableCards.
func Select(shuffled []Question, requested *int) ([]Question, error) {
	count := (len(shuffled) + 1) / 2
	if requested != nil {
		count = *requested
	}
	if count > len(shuffled) {
		return nil, fmt.Errorf("%w: requested %d, have %d", ErrExceedsAvailableCards, count, len(shuffled))
	}
	return shuffled[:count], nil
}
