package article

import (
	"net/http"

	"simple-board/internal/handler/http/pathutil"
	"simple-board/internal/handler/http/respond"
	artUC "simple-board/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP 게시글 조회 - 1개
// @Summary      게시글 조회 - 1개
// @Description  지정한 id의 게시글을 반환합니다
// @Tags         articles
// @Produce      json
// @Param        id path int true "게시글 id"
// @Success      200 {object} respond.Envelope[DTO] "게시글"
// @Failure      400 {object} respond.Envelope[string] "잘못된 게시글 번호"
// @Failure      500 {object} respond.Envelope[string] "서버 에러"
// @Router       /articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		writeError(w, err)
		return
	}

	article, err := h.Svc.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.Success(w, http.StatusOK, MsgGet(id), FromEntity(article))
}
