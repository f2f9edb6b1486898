package sqlite

import (
	"context"
	"time"

	"gorm.io/gorm"

	"simple-board/internal/repository"
)

// TxManager runs callbacks inside a GORM transaction.
type TxManager struct {
	db  *gorm.DB
	now Clock
}

// NewTxManager creates a TxManager using the wall clock.
func NewTxManager(db *gorm.DB) *TxManager {
	return NewTxManagerWithClock(db, time.Now)
}

// NewTxManagerWithClock creates a TxManager with an injectable clock.
func NewTxManagerWithClock(db *gorm.DB, now Clock) *TxManager {
	if now == nil {
		now = time.Now
	}
	return &TxManager{db: db, now: now}
}

var _ repository.Transactor = (*TxManager)(nil)

// WithinTx commits when fn returns nil and rolls back otherwise, including on panic.
func (m *TxManager) WithinTx(ctx context.Context, fn func(repo repository.ArticleRepository) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ArticleRepo{db: tx, now: m.now})
	})
}
