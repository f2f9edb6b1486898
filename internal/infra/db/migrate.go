package db

import (
	"context"
	"database/sql"
)

var upStatements = []string{
	`CREATE TABLE IF NOT EXISTS articles (
    id          BIGSERIAL PRIMARY KEY,
    title       TEXT NOT NULL,
    content     TEXT NOT NULL,
    created_at  TIMESTAMP NOT NULL,
    modified_at TIMESTAMP NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_modified_at ON articles(modified_at DESC)`,
}

// MigrateUp creates the schema. Every statement is idempotent, so it is safe
// to run on each startup.
func MigrateUp(ctx context.Context, db *sql.DB) error {
	for _, stmt := range upStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// MigrateDown drops the schema.
// Use with caution: this will delete all articles.
func MigrateDown(ctx context.Context, db *sql.DB) error {
	dropStatements := []string{
		`DROP INDEX IF EXISTS idx_articles_modified_at`,
		`DROP TABLE IF EXISTS articles`,
	}
	for _, stmt := range dropStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
