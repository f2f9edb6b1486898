// Package repository declares the persistence contracts used by the use case layer.
package repository

import (
	"context"

	"simple-board/internal/domain/entity"
)

// ArticleRepository is a generic CRUD store over article rows keyed by an auto-assigned id.
//
// Implementations own the timestamp write path: Save sets CreatedAt on insert only
// and ModifiedAt on every write.
type ArticleRepository interface {
	// FindAll returns every stored article in store-native (ascending id) order.
	FindAll(ctx context.Context) ([]*entity.Article, error)
	// FindByID returns (nil, nil) when no row has the given id.
	FindByID(ctx context.Context, id int64) (*entity.Article, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// Save inserts the article when its ID is zero and updates title/content otherwise.
	// The returned article carries the stored id and timestamps.
	Save(ctx context.Context, article *entity.Article) (*entity.Article, error)
	// DeleteByID is a no-op when the id does not exist.
	DeleteByID(ctx context.Context, id int64) error
	// DeleteAllByIDInBatch removes every matching row in one statement; unknown ids are ignored.
	DeleteAllByIDInBatch(ctx context.Context, ids []int64) error
	Count(ctx context.Context) (int64, error)
}

// Transactor runs fn against a repository bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(repo ArticleRepository) error) error
}
