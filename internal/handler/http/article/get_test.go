package article_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simple-board/internal/handler/http/article"
)

func TestGetHandler_Success(t *testing.T) {
	f := newFixture(t)
	saved := f.seed(t, "t", "c")

	rr := f.do(http.MethodGet, "/articles/"+strconv.FormatInt(saved.ID, 10), "")

	require.Equal(t, http.StatusOK, rr.Code)
	env := envelope(t, rr)
	assert.True(t, decodeField[bool](t, env["status"]))
	assert.Equal(t, article.MsgGet(saved.ID), decodeField[string](t, env["message"]))

	dto := decodeField[article.DTO](t, env["result"])
	assert.Equal(t, saved.ID, dto.ID)
	assert.Equal(t, "t", dto.Title)
	assert.Equal(t, "c", dto.Content)
	assert.True(t, dto.CreatedAt.Time().Equal(dto.ModifiedAt.Time()))
}

func TestGetHandler_NotFound(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "absent id", path: "/articles/999999"},
		{name: "non numeric id", path: "/articles/abc"},
		{name: "zero id", path: "/articles/0"},
		{name: "negative id", path: "/articles/-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			rr := f.do(http.MethodGet, tt.path, "")

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, `{"status":false,"message":"잘못된 게시글 번호입니다."}`, rr.Body.String())
		})
	}
}

func TestGetHandler_StoreError(t *testing.T) {
	rr := brokenFixture(t).do(http.MethodGet, "/articles/1", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
