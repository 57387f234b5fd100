package quiz

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ConflictBot/model"
)

func TestStoreCreateGetDelete(t *testing.T) {
	st := NewStore()

	_, err := st.Get(42)
	require.ErrorIs(t, err, model.ErrNoActiveSession)

	created := st.Create(42)
	assert.Equal(t, int64(42), created.UserID)
	assert.Equal(t, 0, created.CurrentIndex)
	assert.Empty(t, created.Answers)

	got, err := st.Get(42)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	assert.True(t, st.Delete(42))
	_, err = st.Get(42)
	require.ErrorIs(t, err, model.ErrNoActiveSession)

	// Deleting again is a no-op and says so.
	assert.False(t, st.Delete(42))
}

func TestStoreCreateOverwrites(t *testing.T) {
	st := NewStore()
	st.Create(7)

	err := st.Mutate(7, func(s *model.Session) (bool, error) {
		s.Answers = append(s.Answers, "A", "B")
		s.CurrentIndex = 2
		return false, nil
	})
	require.NoError(t, err)

	fresh := st.Create(7)
	assert.Equal(t, 0, fresh.CurrentIndex)
	assert.Empty(t, fresh.Answers)
}

func TestStoreGetReturnsSnapshot(t *testing.T) {
	st := NewStore()
	st.Create(1)
	require.NoError(t, st.Mutate(1, func(s *model.Session) (bool, error) {
		s.Answers = append(s.Answers, "A")
		s.CurrentIndex = 1
		return false, nil
	}))

	snap, err := st.Get(1)
	require.NoError(t, err)
	snap.Answers[0] = "E"
	snap.CurrentIndex = 99

	again, err := st.Get(1)
	require.NoError(t, err)
	assert.Equal(t, []model.Category{"A"}, again.Answers)
	assert.Equal(t, 1, again.CurrentIndex)
}

func TestStoreMutateNoSession(t *testing.T) {
	st := NewStore()
	called := false
	err := st.Mutate(5, func(s *model.Session) (bool, error) {
		called = true
		return false, nil
	})
	require.ErrorIs(t, err, model.ErrNoActiveSession)
	assert.False(t, called)

	// Mutate never creates a session as a side effect.
	_, err = st.Get(5)
	require.ErrorIs(t, err, model.ErrNoActiveSession)
}

func TestStoreMutateRemove(t *testing.T) {
	st := NewStore()
	st.Create(3)
	require.NoError(t, st.Mutate(3, func(s *model.Session) (bool, error) {
		return true, nil
	}))
	_, err := st.Get(3)
	require.ErrorIs(t, err, model.ErrNoActiveSession)
}

func TestStoreConcurrentUsers(t *testing.T) {
	st := NewStore()
	const users = 50
	const increments = 100

	var wg sync.WaitGroup
	for u := int64(0); u < users; u++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			st.Create(userID)
			for i := 0; i < increments; i++ {
				_ = st.Mutate(userID, func(s *model.Session) (bool, error) {
					s.Answers = append(s.Answers, "A")
					s.CurrentIndex++
					return false, nil
				})
			}
		}(u)
	}
	wg.Wait()

	for u := int64(0); u < users; u++ {
		got, err := st.Get(u)
		require.NoError(t, err)
		assert.Equal(t, increments, got.CurrentIndex)
		assert.Len(t, got.Answers, increments)
	}
}

func TestStoreConcurrentSameUser(t *testing.T) {
	st := NewStore()
	st.Create(9)

	const events = 200
	var wg sync.WaitGroup
	for i := 0; i < events; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Mutate(9, func(s *model.Session) (bool, error) {
				// Read-modify-write inside the critical section must
				// preserve the answers/index invariant.
				s.Answers = append(s.Answers, "B")
				s.CurrentIndex = len(s.Answers)
				return false, nil
			})
		}()
	}
	wg.Wait()

	got, err := st.Get(9)
	require.NoError(t, err)
	assert.Equal(t, events, got.CurrentIndex)
	assert.Len(t, got.Answers, events)
}
