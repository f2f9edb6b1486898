package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"simple-board/internal/repository"
)

// TxManager opens one database transaction per call and hands the callback
// an ArticleRepo bound to it.
type TxManager struct {
	db  *sql.DB
	now Clock
}

func NewTxManager(db *sql.DB) *TxManager {
	return NewTxManagerWithClock(db, DefaultClock)
}

func NewTxManagerWithClock(db *sql.DB, now Clock) *TxManager {
	if now == nil {
		now = DefaultClock
	}
	return &TxManager{db: db, now: now}
}

var _ repository.Transactor = (*TxManager)(nil)

// WithinTx commits when fn returns nil and rolls back on error or panic.
func (m *TxManager) WithinTx(ctx context.Context, fn func(repo repository.ArticleRepository) error) (err error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("WithinTx: begin: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&ArticleRepo{db: tx, now: m.now}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, fmt.Errorf("WithinTx: rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("WithinTx: commit: %w", err)
	}
	return nil
}
