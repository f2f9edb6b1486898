package article

import (
	"net/http"

	"simple-board/internal/handler/http/pathutil"
	artUC "simple-board/internal/usecase/article"
)

const collectionPath = "/articles"

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP 게시글 삭제 - 한개
// @Summary      게시글 삭제 - 한개
// @Description  게시글을 삭제합니다. 없는 id도 성공으로 처리합니다
// @Tags         articles
// @Param        id path int true "게시글 id"
// @Success      204 "No Content"
// @Header       204 {string} Location "/articles"
// @Failure      400 {object} respond.Envelope[string] "잘못된 게시글 번호"
// @Failure      500 {object} respond.Envelope[string] "서버 에러"
// @Router       /articles/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.Svc.DeleteOne(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", collectionPath)
	w.WriteHeader(http.StatusNoContent)
}

type DeleteManyHandler struct{ Svc *artUC.Service }

// ServeHTTP 게시글 삭제 - 여러개
// @Summary      게시글 삭제 - 여러개
// @Description  게시글 id를 담은 정수형 Json Array로 여러 게시글을 삭제합니다. 없는 id는 무시합니다
// @Tags         articles
// @Accept       json
// @Param        ids body []int64 true "게시글 id 목록"
// @Success      204 "No Content"
// @Header       204 {string} Location "/articles"
// @Failure      400 {object} respond.Envelope[string] "invalid request body"
// @Failure      500 {object} respond.Envelope[string] "서버 에러"
// @Router       /articles [delete]
func (h DeleteManyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var ids []int64
	if err := decodeBody(r, &ids); err != nil {
		writeError(w, err)
		return
	}
	if err := h.Svc.DeleteMany(r.Context(), ids); err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", collectionPath)
	w.WriteHeader(http.StatusNoContent)
}
