package quiz

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ConflictBot/model"
)

// testBank builds a small bank with n questions, each carrying one
// option per category.
func testBank(t *testing.T, n int) *Bank {
	t.Helper()
	questions := make([]model.Question, n)
	for i := 0; i < n; i++ {
		opts := make([]model.Option, len(model.Categories))
		for j, c := range model.Categories {
			opts[j] = model.Option{Label: fmt.Sprintf("option %s", c), Category: c}
		}
		questions[i] = model.Question{
			ID:      i,
			Prompt:  fmt.Sprintf("question %d", i+1),
			Options: opts,
		}
	}
	bank, err := NewBank(questions)
	require.NoError(t, err)
	return bank
}

func newTestFlow(t *testing.T, questions int) (*Flow, *Store) {
	t.Helper()
	st := NewStore()
	return NewFlow(st, testBank(t, questions)), st
}

func TestStartReturnsFirstQuestion(t *testing.T) {
	flow, _ := newTestFlow(t, 5)
	q := flow.Start(1)
	assert.Equal(t, 0, q.ID)

	s, err := flow.Session(1)
	require.NoError(t, err)
	assert.Equal(t, 0, s.CurrentIndex)
	assert.Empty(t, s.Answers)
}

func TestStartOverwritesMidQuiz(t *testing.T) {
	flow, _ := newTestFlow(t, 5)
	flow.Start(1)

	_, err := flow.Apply(1, "A", 0)
	require.NoError(t, err)
	_, err = flow.Apply(1, "B", 1)
	require.NoError(t, err)

	q := flow.Start(1)
	assert.Equal(t, 0, q.ID)

	s, err := flow.Session(1)
	require.NoError(t, err)
	assert.Equal(t, 0, s.CurrentIndex)
	assert.Empty(t, s.Answers)
}

func TestApplyAdvancesAndKeepsInvariant(t *testing.T) {
	flow, _ := newTestFlow(t, 5)
	flow.Start(1)

	for i := 0; i < 4; i++ {
		adv, err := flow.Apply(1, "C", i)
		require.NoError(t, err)
		assert.False(t, adv.Stale)
		assert.False(t, adv.Completed)
		require.NotNil(t, adv.Next)
		assert.Equal(t, i+1, adv.Next.ID)
		assert.Equal(t, i+1, adv.Index)

		s, err := flow.Session(1)
		require.NoError(t, err)
		assert.Equal(t, len(s.Answers), s.CurrentIndex)
	}
}

func TestApplyNoActiveSession(t *testing.T) {
	flow, st := newTestFlow(t, 5)

	_, err := flow.Apply(1, "A", 0)
	require.ErrorIs(t, err, model.ErrNoActiveSession)

	// Failure must not create a session as a side effect.
	_, err = st.Get(1)
	require.ErrorIs(t, err, model.ErrNoActiveSession)
}

func TestApplyInvalidCategory(t *testing.T) {
	flow, _ := newTestFlow(t, 5)
	flow.Start(1)

	_, err := flow.Apply(1, "X", 0)
	require.ErrorIs(t, err, model.ErrInvalidCategory)

	s, err := flow.Session(1)
	require.NoError(t, err)
	assert.Equal(t, 0, s.CurrentIndex)
	assert.Empty(t, s.Answers)
}

func TestApplyRejectsStaleEvent(t *testing.T) {
	flow, _ := newTestFlow(t, 5)
	flow.Start(1)

	adv, err := flow.Apply(1, "A", 0)
	require.NoError(t, err)
	require.False(t, adv.Stale)

	// Duplicate tap on the already-answered question.
	adv, err = flow.Apply(1, "A", 0)
	require.NoError(t, err)
	assert.True(t, adv.Stale)

	// An event for a question that was never rendered is just as stale.
	adv, err = flow.Apply(1, "B", 3)
	require.NoError(t, err)
	assert.True(t, adv.Stale)

	s, err := flow.Session(1)
	require.NoError(t, err)
	assert.Equal(t, []model.Category{"A"}, s.Answers)
	assert.Equal(t, 1, s.CurrentIndex)
}

func TestApplyIdempotentAdmission(t *testing.T) {
	flow, _ := newTestFlow(t, 5)
	flow.Start(1)

	// Same (user, category, index) event delivered twice: admitted once.
	first, err := flow.Apply(1, "D", 0)
	require.NoError(t, err)
	second, err := flow.Apply(1, "D", 0)
	require.NoError(t, err)

	assert.False(t, first.Stale)
	assert.True(t, second.Stale)

	s, err := flow.Session(1)
	require.NoError(t, err)
	assert.Equal(t, []model.Category{"D"}, s.Answers)
}

func TestCompletionScoresAndDestroysSession(t *testing.T) {
	flow, st := newTestFlow(t, 5)
	flow.Start(1)

	answers := []model.Category{"A", "A", "B", "C", "A"}
	var last Advance
	for i, c := range answers {
		adv, err := flow.Apply(1, c, i)
		require.NoError(t, err)
		last = adv
	}

	require.True(t, last.Completed)
	require.NotNil(t, last.Result)
	assert.Equal(t, model.Category("A"), last.Result.Category)
	assert.Equal(t, 3, last.Result.Tallies["A"])
	assert.Equal(t, answers, last.Result.Answers)
	assert.Nil(t, last.Next)

	_, err := st.Get(1)
	require.ErrorIs(t, err, model.ErrNoActiveSession)

	// Further events land on a destroyed session.
	_, err = flow.Apply(1, "A", 5)
	require.ErrorIs(t, err, model.ErrNoActiveSession)
}

func TestResetReportsWhetherSessionExisted(t *testing.T) {
	flow, _ := newTestFlow(t, 5)

	assert.False(t, flow.Reset(1), "reset with no session is a no-op")

	flow.Start(1)
	assert.True(t, flow.Reset(1))

	_, err := flow.Session(1)
	require.ErrorIs(t, err, model.ErrNoActiveSession)
}

func TestConcurrentDuplicateEventsAdmittedOnce(t *testing.T) {
	flow, _ := newTestFlow(t, 5)
	flow.Start(1)

	const deliveries = 25
	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0

	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			adv, err := flow.Apply(1, "E", 0)
			require.NoError(t, err)
			if !adv.Stale {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, admitted)

	s, err := flow.Session(1)
	require.NoError(t, err)
	assert.Equal(t, []model.Category{"E"}, s.Answers)
	assert.Equal(t, 1, s.CurrentIndex)
}

func TestIndependentUsers(t *testing.T) {
	flow, _ := newTestFlow(t, 5)
	flow.Start(1)
	flow.Start(2)

	_, err := flow.Apply(1, "A", 0)
	require.NoError(t, err)

	s2, err := flow.Session(2)
	require.NoError(t, err)
	assert.Equal(t, 0, s2.CurrentIndex, "another user's session is untouched")
}
