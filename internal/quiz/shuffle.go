package quiz

import "math/rand"

// Shuffle returns a copy of questions in random order (Fisher-Yates).
// The input slice is not modified.
func Shuffle(questions []Question) []Question {
	shuffled := make([]Question, len(questions))
	copy(shuffled, questions)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}

// ShuffleWithLimit shuffles the questions and returns at most limit of them.
// A non-positive or out-of-range limit returns the full set.
func ShuffleWithLimit(questions []Question, limit int) []Question {
	shuffled := Shuffle(questions)

	if limit <= 0 || limit > len(shuffled) {
		limit = len(shuffled)
	}

	return shuffled[:limit]
}
