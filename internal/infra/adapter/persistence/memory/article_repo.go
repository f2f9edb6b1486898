// Package memory provides an in-memory implementation of the article repository.
// It is safe for concurrent use and is primarily intended for tests and local
// development.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"simple-board/internal/domain/entity"
	"simple-board/internal/repository"
)

// Clock returns the timestamp written on insert and update.
type Clock func() time.Time

// state is the data a transaction copies and swaps back on commit.
type state struct {
	articles  map[int64]entity.Article
	nextID    int64
	lastStamp time.Time
}

func newState() *state {
	return &state{articles: make(map[int64]entity.Article), nextID: 1}
}

func (st *state) clone() *state {
	cp := &state{
		articles:  make(map[int64]entity.Article, len(st.articles)),
		nextID:    st.nextID,
		lastStamp: st.lastStamp,
	}
	for id, a := range st.articles {
		cp.articles[id] = a
	}
	return cp
}

// stamp returns now, bumped past the last issued stamp so ModifiedAt always
// moves forward even when the clock stalls or goes backwards.
func (st *state) stamp(now time.Time) time.Time {
	if !now.After(st.lastStamp) {
		now = st.lastStamp.Add(time.Nanosecond)
	}
	st.lastStamp = now
	return now
}

func (st *state) findAll() []*entity.Article {
	out := make([]*entity.Article, 0, len(st.articles))
	for _, a := range st.articles {
		out = append(out, &a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (st *state) findByID(id int64) *entity.Article {
	a, ok := st.articles[id]
	if !ok {
		return nil
	}
	return &a
}

func (st *state) save(article *entity.Article, now Clock) (*entity.Article, error) {
	if err := article.Validate(); err != nil {
		return nil, fmt.Errorf("Save: %w", err)
	}

	if article.IsNew() {
		ts := st.stamp(now())
		a := entity.Article{
			ID:         st.nextID,
			Title:      article.Title,
			Content:    article.Content,
			CreatedAt:  ts,
			ModifiedAt: ts,
		}
		st.nextID++
		st.articles[a.ID] = a
		return &a, nil
	}

	existing, ok := st.articles[article.ID]
	if !ok {
		return nil, fmt.Errorf("Save: update id=%d: %w", article.ID, entity.ErrNotFound)
	}
	existing.Title = article.Title
	existing.Content = article.Content
	existing.ModifiedAt = st.stamp(now())
	st.articles[existing.ID] = existing
	return &existing, nil
}

func (st *state) deleteAll(ids []int64) {
	for _, id := range ids {
		delete(st.articles, id)
	}
}

// Store is a map-backed ArticleRepository and Transactor.
type Store struct {
	mu  sync.RWMutex
	st  *state
	now Clock
}

var (
	_ repository.ArticleRepository = (*Store)(nil)
	_ repository.Transactor        = (*Store)(nil)
)

// New creates an empty store using the wall clock.
func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock creates an empty store with an injectable clock.
func NewWithClock(now Clock) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{st: newState(), now: now}
}

func (s *Store) FindAll(ctx context.Context) ([]*entity.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.findAll(), nil
}

func (s *Store) FindByID(ctx context.Context, id int64) (*entity.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.findByID(id), nil
}

func (s *Store) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.st.articles[id]
	return ok, nil
}

func (s *Store) Save(ctx context.Context, article *entity.Article) (*entity.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.save(article, s.now)
}

func (s *Store) DeleteByID(ctx context.Context, id int64) error {
	return s.DeleteAllByIDInBatch(ctx, []int64{id})
}

func (s *Store) DeleteAllByIDInBatch(ctx context.Context, ids []int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.deleteAll(ids)
	return nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.st.articles)), nil
}

// WithinTx runs fn against a private copy of the store. The copy replaces the
// live data only when fn returns nil. Transactions are serialized and block
// other callers until they finish.
func (s *Store) WithinTx(ctx context.Context, fn func(repo repository.ArticleRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &txRepo{st: s.st.clone(), now: s.now}
	if err := fn(tx); err != nil {
		return err
	}
	s.st = tx.st
	return nil
}

// txRepo operates on a transaction's copy without locking; the owning
// Store holds its lock for the lifetime of the transaction.
type txRepo struct {
	st  *state
	now Clock
}

func (r *txRepo) FindAll(ctx context.Context) ([]*entity.Article, error) {
	return r.st.findAll(), ctx.Err()
}

func (r *txRepo) FindByID(ctx context.Context, id int64) (*entity.Article, error) {
	return r.st.findByID(id), ctx.Err()
}

func (r *txRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := r.st.articles[id]
	return ok, ctx.Err()
}

func (r *txRepo) Save(ctx context.Context, article *entity.Article) (*entity.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.st.save(article, r.now)
}

func (r *txRepo) DeleteByID(ctx context.Context, id int64) error {
	return r.DeleteAllByIDInBatch(ctx, []int64{id})
}

func (r *txRepo) DeleteAllByIDInBatch(ctx context.Context, ids []int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.st.deleteAll(ids)
	return nil
}

func (r *txRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.st.articles)), ctx.Err()
}
