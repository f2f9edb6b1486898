// Package entity defines the core domain entities and validation logic for the board.
// It contains the Article entity along with its validation rules and domain-specific errors.
package entity

import "time"

// Article represents a text post on the board.
// ID is assigned by the store on first insert and never changes afterwards.
// CreatedAt is written once at insert; ModifiedAt is refreshed on every write.
type Article struct {
	ID         int64
	Title      string
	Content    string
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// IsNew reports whether the article has not been persisted yet.
func (a *Article) IsNew() bool {
	return a.ID == 0
}

// Stamp applies the store write-path timestamps.
// A new article gets both timestamps set to now; an existing one only has ModifiedAt refreshed.
func (a *Article) Stamp(now time.Time) {
	if a.IsNew() || a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.ModifiedAt = now
}
