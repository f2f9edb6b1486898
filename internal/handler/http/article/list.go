package article

import (
	"net/http"

	"simple-board/internal/handler/http/respond"
	artUC "simple-board/internal/usecase/article"
)

type ListHandler struct{ Svc *artUC.Service }

// ServeHTTP 게시글 조회 - 전체
// @Summary      게시글 조회 - 전체
// @Description  저장된 모든 게시글을 id 순으로 반환합니다
// @Tags         articles
// @Produce      json
// @Success      200 {object} respond.Envelope[[]DTO] "게시글 목록"
// @Failure      500 {object} respond.Envelope[string] "서버 에러"
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Svc.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	respond.Success(w, http.StatusOK, MsgList, FromEntities(articles))
}
