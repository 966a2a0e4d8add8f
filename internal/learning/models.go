// Package learning holds flashcard and quiz content and loads it from disk.
package learning

import (
	"math/rand/v2"
	"slices"
)

// Card is a front/back flashcard.
type Card struct {
	Front       string   `json:"front"`
	Back        string   `json:"back"`
	Tags        []string `json:"tags,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

// QuizQuestion is a question with one correct answer and optional
// multiple-choice alternatives.
type QuizQuestion struct {
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correct_answer"`
	Alternatives  []string `json:"alternatives,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

// IsMultipleChoice reports whether the question offers alternatives.
func (q QuizQuestion) IsMultipleChoice() bool {
	return len(q.Alternatives) > 0
}

// Set is a named collection of cards and questions.
type Set struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Cards       []Card         `json:"cards,omitempty"`
	Questions   []QuizQuestion `json:"questions,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
}

// TotalItems returns the number of cards plus questions.
func (s *Set) TotalItems() int {
	return len(s.Cards) + len(s.Questions)
}

// IsEmpty reports whether the set has nothing to review.
func (s *Set) IsEmpty() bool {
	return s.TotalItems() == 0
}

// Item is one reviewable entry of a set, flattened from a card or a question.
type Item struct {
	// ID is the zero-based position of the item: cards first, then questions.
	ID          int
	Prompt      string
	Answer      string
	Explanation string
	// Options holds the multiple-choice options of a question in their
	// original order, correct answer last. Empty for cards and free-text
	// questions.
	Options []string
}

// Items flattens the set into reviewable items with stable ids.
func (s *Set) Items() []Item {
	items := make([]Item, 0, s.TotalItems())
	for _, c := range s.Cards {
		items = append(items, Item{
			ID:          len(items),
			Prompt:      c.Front,
			Answer:      c.Back,
			Explanation: c.Explanation,
		})
	}
	for _, q := range s.Questions {
		it := Item{
			ID:          len(items),
			Prompt:      q.Question,
			Answer:      q.CorrectAnswer,
			Explanation: q.Explanation,
		}
		if q.IsMultipleChoice() {
			it.Options = append(slices.Clone(q.Alternatives), q.CorrectAnswer)
		}
		items = append(items, it)
	}
	return items
}

// ShuffledOptions returns the multiple-choice options in random order,
// leaving Options untouched. It returns nil for items without options. The
// caller owns r.
func (it Item) ShuffledOptions(r *rand.Rand) []string {
	if len(it.Options) == 0 {
		return nil
	}
	opts := slices.Clone(it.Options)
	r.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	return opts
}
