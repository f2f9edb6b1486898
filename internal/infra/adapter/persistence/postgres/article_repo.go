// Package postgres provides PostgreSQL implementations of repository interfaces
// on top of database/sql and the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"simple-board/internal/domain/entity"
	"simple-board/internal/repository"

	"github.com/lib/pq"
)

// DBTX is the query surface shared by *sql.DB, *sql.Tx and the circuit breaker wrapper.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Clock returns the timestamp written on insert and update.
type Clock func() time.Time

// DefaultClock truncates to microseconds, the resolution of a postgres TIMESTAMP.
func DefaultClock() time.Time {
	return time.Now().Truncate(time.Microsecond)
}

type ArticleRepo struct {
	db  DBTX
	now Clock
}

func NewArticleRepo(db DBTX) repository.ArticleRepository {
	return NewArticleRepoWithClock(db, DefaultClock)
}

func NewArticleRepoWithClock(db DBTX, now Clock) repository.ArticleRepository {
	if now == nil {
		now = DefaultClock
	}
	return &ArticleRepo{db: db, now: now}
}

func (repo *ArticleRepo) FindAll(ctx context.Context) ([]*entity.Article, error) {
	const query = `
SELECT id, title, content, created_at, modified_at
FROM articles
ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("FindAll: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 32)
	for rows.Next() {
		var article entity.Article
		if err := rows.Scan(&article.ID, &article.Title, &article.Content,
			&article.CreatedAt, &article.ModifiedAt); err != nil {
			return nil, fmt.Errorf("FindAll: Scan: %w", err)
		}
		articles = append(articles, &article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("FindAll: rows.Err: %w", err)
	}
	return articles, nil
}

func (repo *ArticleRepo) FindByID(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT id, title, content, created_at, modified_at
FROM articles
WHERE id = $1
LIMIT 1`
	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.Title, &article.Content,
			&article.CreatedAt, &article.ModifiedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("FindByID: %w", err)
	}
	return &article, nil
}

func (repo *ArticleRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM articles WHERE id = $1)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("ExistsByID: %w", err)
	}
	return exists, nil
}

// Save inserts when article.ID is zero, otherwise overwrites title and content.
// created_at is never part of the UPDATE statement.
func (repo *ArticleRepo) Save(ctx context.Context, article *entity.Article) (*entity.Article, error) {
	if err := article.Validate(); err != nil {
		return nil, fmt.Errorf("Save: %w", err)
	}

	saved := *article
	saved.Stamp(repo.now())

	if saved.IsNew() {
		const query = `
INSERT INTO articles (title, content, created_at, modified_at)
VALUES ($1, $2, $3, $4)
RETURNING id`
		err := repo.db.QueryRowContext(ctx, query,
			saved.Title, saved.Content, saved.CreatedAt, saved.ModifiedAt).
			Scan(&saved.ID)
		if err != nil {
			return nil, fmt.Errorf("Save: insert: %w", err)
		}
		return &saved, nil
	}

	const query = `
UPDATE articles
SET    title = $1, content = $2, modified_at = $3
WHERE  id = $4
RETURNING created_at`
	err := repo.db.QueryRowContext(ctx, query,
		saved.Title, saved.Content, saved.ModifiedAt, saved.ID).
		Scan(&saved.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("Save: update id=%d: %w", saved.ID, entity.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("Save: update: %w", err)
	}
	return &saved, nil
}

func (repo *ArticleRepo) DeleteByID(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = $1`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("DeleteByID: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) DeleteAllByIDInBatch(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	const query = `DELETE FROM articles WHERE id = ANY($1)`
	if _, err := repo.db.ExecContext(ctx, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("DeleteAllByIDInBatch: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}
