package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simple-board/internal/domain/entity"
	"simple-board/internal/infra/adapter/persistence/memory"
	"simple-board/internal/repository"
)

var frozen = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func frozenClock() time.Time { return frozen }

func TestStore_SaveAssignsIDsAndTimestamps(t *testing.T) {
	ctx := context.Background()
	s := memory.NewWithClock(frozenClock)

	a, err := s.Save(ctx, &entity.Article{Title: "a", Content: "x"})
	require.NoError(t, err)
	b, err := s.Save(ctx, &entity.Article{Title: "b", Content: "y"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
	assert.Equal(t, a.CreatedAt, a.ModifiedAt)
	assert.True(t, b.CreatedAt.After(a.CreatedAt))
}

func TestStore_UpdateMovesModifiedAtForwardWithFrozenClock(t *testing.T) {
	ctx := context.Background()
	s := memory.NewWithClock(frozenClock)

	saved, err := s.Save(ctx, &entity.Article{Title: "t", Content: "c"})
	require.NoError(t, err)

	prev := saved.ModifiedAt
	for i := 0; i < 3; i++ {
		updated, err := s.Save(ctx, &entity.Article{ID: saved.ID, Title: "t", Content: "c"})
		require.NoError(t, err)
		assert.Equal(t, saved.CreatedAt, updated.CreatedAt)
		assert.True(t, updated.ModifiedAt.After(prev))
		prev = updated.ModifiedAt
	}
}

func TestStore_UpdateMissing(t *testing.T) {
	s := memory.New()

	_, err := s.Save(context.Background(), &entity.Article{ID: 5, Title: "t", Content: "c"})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestStore_SaveRejectsInvalid(t *testing.T) {
	s := memory.New()

	_, err := s.Save(context.Background(), &entity.Article{Title: "t"})
	assert.ErrorIs(t, err, entity.ErrValidationFailed)
}

func TestStore_FindAllOrderAndCopies(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	for _, title := range []string{"one", "two", "three"} {
		_, err := s.Save(ctx, &entity.Article{Title: title, Content: "c"})
		require.NoError(t, err)
	}

	all, err = s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{all[0].ID, all[1].ID, all[2].ID})

	all[0].Title = "mutated"
	got, err := s.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "one", got.Title)
}

func TestStore_FindByIDMissing(t *testing.T) {
	got, err := memory.New().FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Deletes(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	for i := 0; i < 3; i++ {
		_, err := s.Save(ctx, &entity.Article{Title: "t", Content: "c"})
		require.NoError(t, err)
	}

	require.NoError(t, s.DeleteByID(ctx, 2))
	require.NoError(t, s.DeleteByID(ctx, 2))
	require.NoError(t, s.DeleteAllByIDInBatch(ctx, []int64{1, 1, 42}))
	require.NoError(t, s.DeleteAllByIDInBatch(ctx, nil))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	ok, err := s.ExistsByID(ctx, 3)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_WithinTx(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	err := s.WithinTx(ctx, func(r repository.ArticleRepository) error {
		_, err := r.Save(ctx, &entity.Article{Title: "kept", Content: "c"})
		return err
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = s.WithinTx(ctx, func(r repository.ArticleRepository) error {
		if _, err := r.Save(ctx, &entity.Article{Title: "dropped", Content: "c"}); err != nil {
			return err
		}
		require.NoError(t, r.DeleteByID(ctx, 1))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "kept", all[0].Title)

	// ids handed out inside a rolled back transaction are reused
	next, err := s.Save(ctx, &entity.Article{Title: "next", Content: "c"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.ID)
}

func TestStore_WithinTxPanicLeavesDataUntouched(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	assert.Panics(t, func() {
		_ = s.WithinTx(ctx, func(r repository.ArticleRepository) error {
			_, _ = r.Save(ctx, &entity.Article{Title: "t", Content: "c"})
			panic("boom")
		})
	})

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := memory.New().Save(ctx, &entity.Article{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.WithinTx(ctx, func(r repository.ArticleRepository) error {
				_, err := r.Save(ctx, &entity.Article{Title: "t", Content: "c"})
				return err
			})
		}()
	}
	wg.Wait()

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(50), n)
}
