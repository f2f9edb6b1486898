package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"simple-board/internal/domain/entity"
	pg "simple-board/internal/infra/adapter/persistence/postgres"
)

/* ─────────────────────────── helpers ─────────────────────────── */

var fixedNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func artRows(arts ...*entity.Article) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "title", "content", "created_at", "modified_at"})
	for _, a := range arts {
		rows.AddRow(a.ID, a.Title, a.Content, a.CreatedAt, a.ModifiedAt)
	}
	return rows
}

/* ─────────────────────────── 1. FindByID ─────────────────────────── */

func TestArticleRepo_FindByID(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := &entity.Article{
		ID: 1, Title: "hello", Content: "world",
		CreatedAt: fixedNow, ModifiedAt: fixedNow,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, content, created_at, modified_at")).
		WithArgs(int64(1)).
		WillReturnRows(artRows(want))

	repo := pg.NewArticleRepo(db)
	got, err := repo.FindByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindByID err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_FindByID_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM articles").
		WithArgs(int64(999999)).
		WillReturnRows(artRows())

	repo := pg.NewArticleRepo(db)
	got, err := repo.FindByID(context.Background(), 999999)
	if err != nil {
		t.Fatalf("FindByID err=%v", err)
	}
	if got != nil {
		t.Fatalf("FindByID got=%+v, want nil", got)
	}
}

/* ─────────────────────────── 2. FindAll ─────────────────────────── */

func TestArticleRepo_FindAll(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id")).
		WillReturnRows(artRows(
			&entity.Article{ID: 1, Title: "a", Content: "x", CreatedAt: fixedNow, ModifiedAt: fixedNow},
			&entity.Article{ID: 2, Title: "b", Content: "y", CreatedAt: fixedNow, ModifiedAt: fixedNow},
		))

	repo := pg.NewArticleRepo(db)
	got, err := repo.FindAll(context.Background())
	if err != nil || len(got) != 2 {
		t.Fatalf("FindAll err=%v len=%d", err, len(got))
	}
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("FindAll order = [%d %d], want [1 2]", got[0].ID, got[1].ID)
	}
}

func TestArticleRepo_FindAll_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM articles").WillReturnRows(artRows())

	repo := pg.NewArticleRepo(db)
	got, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll err=%v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("FindAll got=%v, want empty non-nil slice", got)
	}
}

/* ─────────────────────────── 3. ExistsByID ─────────────────────────── */

func TestArticleRepo_ExistsByID(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := pg.NewArticleRepo(db)
	ok, err := repo.ExistsByID(context.Background(), 3)
	if err != nil || !ok {
		t.Fatalf("ExistsByID ok=%v err=%v", ok, err)
	}
}

/* ─────────────────────────── 4. Save ─────────────────────────── */

func TestArticleRepo_Save_Insert(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO articles")).
		WithArgs("t", "c", fixedNow, fixedNow).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(10)))

	repo := pg.NewArticleRepoWithClock(db, fixedClock)
	got, err := repo.Save(context.Background(), &entity.Article{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("Save err=%v", err)
	}

	want := &entity.Article{ID: 10, Title: "t", Content: "c", CreatedAt: fixedNow, ModifiedAt: fixedNow}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Save_UpdateKeepsCreatedAt(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	created := fixedNow.Add(-time.Hour)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE articles")).
		WithArgs("new title", "new content", fixedNow, int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	repo := pg.NewArticleRepoWithClock(db, fixedClock)
	got, err := repo.Save(context.Background(), &entity.Article{ID: 4, Title: "new title", Content: "new content"})
	if err != nil {
		t.Fatalf("Save err=%v", err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
	}
	if !got.ModifiedAt.Equal(fixedNow) {
		t.Errorf("ModifiedAt = %v, want %v", got.ModifiedAt, fixedNow)
	}
}

func TestArticleRepo_Save_UpdateMissingRow(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("UPDATE articles").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}))

	repo := pg.NewArticleRepoWithClock(db, fixedClock)
	_, err := repo.Save(context.Background(), &entity.Article{ID: 77, Title: "t", Content: "c"})
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("Save err=%v, want ErrNotFound", err)
	}
}

func TestArticleRepo_Save_RejectsEmptyFields(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	repo := pg.NewArticleRepo(db)
	_, err := repo.Save(context.Background(), &entity.Article{})
	if !errors.Is(err, entity.ErrValidationFailed) {
		t.Fatalf("Save err=%v, want validation failure", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ─────────────────────────── 5. Delete ─────────────────────────── */

func TestArticleRepo_DeleteByID(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM articles WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewArticleRepo(db)
	if err := repo.DeleteByID(context.Background(), 3); err != nil {
		t.Fatalf("DeleteByID err=%v", err)
	}
}

func TestArticleRepo_DeleteAllByIDInBatch(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM articles WHERE id = ANY($1)")).
		WithArgs("{1,2,3}").
		WillReturnResult(sqlmock.NewResult(0, 2))

	repo := pg.NewArticleRepo(db)
	if err := repo.DeleteAllByIDInBatch(context.Background(), []int64{1, 2, 3}); err != nil {
		t.Fatalf("DeleteAllByIDInBatch err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_DeleteAllByIDInBatch_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	repo := pg.NewArticleRepo(db)
	if err := repo.DeleteAllByIDInBatch(context.Background(), nil); err != nil {
		t.Fatalf("DeleteAllByIDInBatch err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ─────────────────────────── 6. Count ─────────────────────────── */

func TestArticleRepo_Count(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM articles")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(5)))

	repo := pg.NewArticleRepo(db)
	n, err := repo.Count(context.Background())
	if err != nil || n != 5 {
		t.Fatalf("Count n=%d err=%v", n, err)
	}
}
