package model

import "errors"

var (
	// ErrNoActiveSession means the user interacted without an open quiz
	// session, e.g. after completion or before any /test.
	ErrNoActiveSession = errors.New("no active quiz session")

	// ErrInvalidCategory means an answer event carried a code outside A..E.
	ErrInvalidCategory = errors.New("invalid category code")

	// ErrUndetermined means scoring was reached with an empty answer
	// history. Normal flow never produces this.
	ErrUndetermined = errors.New("no answers to score")
)
