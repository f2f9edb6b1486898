// Package article provides use cases for managing article entities.
// It implements the read, write and delete flows of the board on top of
// the article repository.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	// It is returned when reading or updating an id that does not exist,
	// and for ids that can never exist (zero or negative).
	ErrArticleNotFound = errors.New("article not found")
)
