package quiz

import (
	"ConflictBot/model"
)

// Flow drives a user's assessment from first question to scored result.
// It is the only component that mutates sessions, and every mutation
// runs inside the store's per-user critical section. Outbound rendering
// happens after the caller gets the outcome back, never under the lock.
type Flow struct {
	store *Store
	bank  *Bank
}

func NewFlow(store *Store, bank *Bank) *Flow {
	return &Flow{store: store, bank: bank}
}

// Advance is the outcome of applying one answer event.
type Advance struct {
	// Stale means the event referred to a question the session already
	// advanced past (duplicate tap, delayed retry). State is unchanged.
	Stale bool
	// Completed means this answer was the last one; Result carries the
	// scored outcome and the session has been destroyed.
	Completed bool
	Result    *model.Result
	// Next is the question to render when the session continues.
	Next *model.Question
	// Index is the session's current index after the event was applied.
	Index int
	// Total is the bank size, for "question X of Y" rendering.
	Total int
}

// Start opens a fresh session at index 0, overwriting any prior session
// for the user, and returns the first question.
func (f *Flow) Start(userID int64) model.Question {
	f.store.Create(userID)
	q, _ := f.bank.Question(0)
	return q
}

// Apply validates and applies one inbound answer event. questionIndex is
// the index of the question the tapped keyboard was rendered for; the
// event is admitted only when it equals the session's current index, so
// each question is answered at most once no matter how often the
// transport redelivers the event.
//
// Errors: model.ErrInvalidCategory for a code outside A..E,
// model.ErrNoActiveSession when the user has no session (one is never
// created as a side effect), model.ErrUndetermined when a completing
// session somehow has no answers.
func (f *Flow) Apply(userID int64, category model.Category, questionIndex int) (Advance, error) {
	if !category.Valid() {
		return Advance{}, model.ErrInvalidCategory
	}

	out := Advance{Total: f.bank.Len()}
	err := f.store.Mutate(userID, func(s *model.Session) (bool, error) {
		if questionIndex != s.CurrentIndex {
			out.Stale = true
			out.Index = s.CurrentIndex
			return false, nil
		}

		s.Answers = append(s.Answers, category)
		s.CurrentIndex++
		out.Index = s.CurrentIndex

		if s.CurrentIndex < f.bank.Len() {
			q, _ := f.bank.Question(s.CurrentIndex)
			out.Next = &q
			return false, nil
		}

		// Last answer: score and destroy the session atomically.
		out.Completed = true
		dominant, tallies, ok := Score(s.Answers)
		if !ok {
			return true, model.ErrUndetermined
		}
		answers := make([]model.Category, len(s.Answers))
		copy(answers, s.Answers)
		out.Result = &model.Result{Category: dominant, Tallies: tallies, Answers: answers}
		return true, nil
	})
	if err != nil {
		return Advance{}, err
	}
	return out, nil
}

// Reset destroys the user's session from any state and reports whether
// there was anything to reset.
func (f *Flow) Reset(userID int64) bool {
	return f.store.Delete(userID)
}

// Session returns a snapshot of the user's current session.
func (f *Flow) Session(userID int64) (model.Session, error) {
	return f.store.Get(userID)
}
