package article

import (
	"net/http"
	"strconv"

	"simple-board/internal/handler/http/pathutil"
	"simple-board/internal/handler/http/respond"
	"simple-board/internal/handler/http/validate"
	artUC "simple-board/internal/usecase/article"
)

type UpdateHandler struct {
	Svc       *artUC.Service
	Validator *validate.Validator
}

// ServeHTTP 게시글 수정
// @Summary      게시글 수정
// @Description  게시글 id, 제목, 내용을 담은 Json Object로 게시글을 수정합니다. 경로의 id가 본문의 id보다 우선합니다
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id path int true "게시글 id"
// @Param        article body artUC.UpdateRequest true "게시글 id, 제목, 내용"
// @Success      201 {object} respond.Envelope[string] "수정되었습니다."
// @Header       201 {string} Location "/articles/{id}"
// @Failure      400 {object} respond.Envelope[entity.ValidationErrors] "valid error 또는 잘못된 게시글 번호"
// @Failure      500 {object} respond.Envelope[string] "서버 에러"
// @Router       /articles/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req artUC.UpdateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(w, err)
		return
	}

	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		writeError(w, err)
		return
	}
	req.ID = id

	if _, err := h.Svc.Update(r.Context(), req); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Location", "/articles/"+strconv.FormatInt(id, 10))
	respond.Message(w, http.StatusCreated, MsgUpdated)
}
