package quiz

import (
	"sync"

	"ConflictBot/model"
)

// Store owns every live quiz session, keyed by the platform-supplied
// user ID. Slot lookup is guarded by mu; each slot carries its own mutex
// so all operations for one user are linearizable while unrelated users
// never contend. Slots outlive their sessions: deleting a session keeps
// the per-user lock in place for later events.
type Store struct {
	mu    sync.Mutex
	users map[int64]*slot
}

type slot struct {
	mu      sync.Mutex
	session *model.Session // nil when the user has no active session
}

func NewStore() *Store {
	return &Store{users: make(map[int64]*slot)}
}

func (st *Store) slot(userID int64) *slot {
	st.mu.Lock()
	defer st.mu.Unlock()
	sl, ok := st.users[userID]
	if !ok {
		sl = &slot{}
		st.users[userID] = sl
	}
	return sl
}

// Create opens a fresh session at index 0, overwriting any prior session
// for the user and discarding its progress. Returns a snapshot copy.
func (st *Store) Create(userID int64) model.Session {
	sl := st.slot(userID)
	sl.mu.Lock()
	defer sl.mu.Unlock()
	sl.session = &model.Session{UserID: userID, Answers: []model.Category{}}
	return sl.session.Clone()
}

// Get returns a snapshot copy of the user's session, or
// model.ErrNoActiveSession when there is none.
func (st *Store) Get(userID int64) (model.Session, error) {
	sl := st.slot(userID)
	sl.mu.Lock()
	defer sl.mu.Unlock()
	if sl.session == nil {
		return model.Session{}, model.ErrNoActiveSession
	}
	return sl.session.Clone(), nil
}

// Delete removes the user's session and reports whether one existed.
func (st *Store) Delete(userID int64) bool {
	sl := st.slot(userID)
	sl.mu.Lock()
	defer sl.mu.Unlock()
	existed := sl.session != nil
	sl.session = nil
	return existed
}

// Mutate runs fn inside the user's critical section, giving it exclusive
// access to the live session for a read-modify-write. fn returning
// remove=true deletes the session in the same critical section, so a
// completing answer and the destruction of its session are one atomic
// step. Returns model.ErrNoActiveSession without calling fn when the
// user has no session.
func (st *Store) Mutate(userID int64, fn func(s *model.Session) (remove bool, err error)) error {
	sl := st.slot(userID)
	sl.mu.Lock()
	defer sl.mu.Unlock()
	if sl.session == nil {
		return model.ErrNoActiveSession
	}
	remove, err := fn(sl.session)
	if remove {
		sl.session = nil
	}
	return err
}
