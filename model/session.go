package model

import "time"

// Session is the per-user in-progress assessment state. The store owns
// every live Session; other components only ever see snapshot copies.
//
// Invariant: len(Answers) == CurrentIndex at all times.
type Session struct {
	UserID       int64
	CurrentIndex int
	Answers      []Category
}

// Clone returns a snapshot copy with its own answer slice.
func (s *Session) Clone() Session {
	cp := *s
	cp.Answers = make([]Category, len(s.Answers))
	copy(cp.Answers, s.Answers)
	return cp
}

// Result is the outcome of a completed assessment. It is derived from a
// session's answer history and never stored alongside the session.
type Result struct {
	Category Category
	Tallies  map[Category]int
	Answers  []Category
}

// StyleRecord is the archived form of a completed result.
type StyleRecord struct {
	UserID   int64            `json:"userID"`
	Category Category         `json:"category"`
	Tallies  map[Category]int `json:"tallies"`
	TakenAt  time.Time        `json:"takenAt"`
}
