package article_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"simple-board/internal/domain/entity"
	"simple-board/internal/handler/http/article"
	"simple-board/internal/infra/adapter/persistence/memory"
	artUC "simple-board/internal/usecase/article"
)

var errStoreDown = errors.New("connection refused")

/* ───────── テスト用ヘルパー ───────── */

// steppingClock advances one second per call.
func steppingClock() memory.Clock {
	t := time.Date(2025, 10, 26, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

type fixture struct {
	store *memory.Store
	mux   *http.ServeMux
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewWithClock(steppingClock())
	mux := http.NewServeMux()
	article.Register(mux, &artUC.Service{Repo: store, Tx: store})
	return &fixture{store: store, mux: mux}
}

// brokenFixture routes to a service whose store always fails.
func brokenFixture(t *testing.T) *fixture {
	t.Helper()
	mux := http.NewServeMux()
	article.Register(mux, &artUC.Service{Repo: failingRepo{}})
	return &fixture{mux: mux}
}

func (f *fixture) seed(t *testing.T, title, content string) *entity.Article {
	t.Helper()
	a, err := f.store.Save(context.Background(), &entity.Article{Title: title, Content: content})
	require.NoError(t, err)
	return a
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	f.mux.ServeHTTP(rr, req)
	return rr
}

// envelope decodes into a map so the presence of "result" can be asserted.
func envelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func decodeField[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

type failingRepo struct{}

func (failingRepo) FindAll(context.Context) ([]*entity.Article, error) { return nil, errStoreDown }
func (failingRepo) FindByID(context.Context, int64) (*entity.Article, error) {
	return nil, errStoreDown
}
func (failingRepo) ExistsByID(context.Context, int64) (bool, error) { return false, errStoreDown }
func (failingRepo) Save(context.Context, *entity.Article) (*entity.Article, error) {
	return nil, errStoreDown
}
func (failingRepo) DeleteByID(context.Context, int64) error             { return errStoreDown }
func (failingRepo) DeleteAllByIDInBatch(context.Context, []int64) error { return errStoreDown }
func (failingRepo) Count(context.Context) (int64, error)                { return 0, errStoreDown }
