package quiz

import (
	"fmt"
	"math/rand"

	"ConflictBot/model"
)

// Bank is the ordered, read-only question sequence. Every question must
// carry exactly one option per category.
type Bank struct {
	questions []model.Question
}

// NewBank validates and wraps a question list. It rejects questions that
// miss a category or repeat one.
func NewBank(questions []model.Question) (*Bank, error) {
	for i, q := range questions {
		if q.ID != i {
			return nil, fmt.Errorf("question %d: ID %d does not match position", i, q.ID)
		}
		if len(q.Options) != len(model.Categories) {
			return nil, fmt.Errorf("question %d: got %d options, want %d", i, len(q.Options), len(model.Categories))
		}
		seen := make(map[model.Category]bool, len(q.Options))
		for _, opt := range q.Options {
			if !opt.Category.Valid() {
				return nil, fmt.Errorf("question %d: unknown category %q", i, opt.Category)
			}
			if seen[opt.Category] {
				return nil, fmt.Errorf("question %d: duplicate category %q", i, opt.Category)
			}
			seen[opt.Category] = true
		}
	}
	return &Bank{questions: questions}, nil
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Question returns the question at the given 0-based index.
func (b *Bank) Question(index int) (model.Question, bool) {
	if index < 0 || index >= len(b.questions) {
		return model.Question{}, false
	}
	return b.questions[index], true
}

// ShuffleOptions returns a shuffled copy of the options for rendering.
// The original order stays untouched, and because each button carries
// its category code, shuffling never affects how answers are scored.
func ShuffleOptions(options []model.Option) []model.Option {
	shuffled := make([]model.Option, len(options))
	copy(shuffled, options)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
