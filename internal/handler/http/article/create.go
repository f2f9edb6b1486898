package article

import (
	"net/http"
	"strconv"

	"simple-board/internal/handler/http/respond"
	"simple-board/internal/handler/http/validate"
	artUC "simple-board/internal/usecase/article"
)

type CreateHandler struct {
	Svc       *artUC.Service
	Validator *validate.Validator
}

// ServeHTTP 게시글 등록
// @Summary      게시글 등록
// @Description  제목과 내용을 담은 Json Object로 게시글을 등록합니다
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article body artUC.CreateRequest true "제목과 내용"
// @Success      201 {object} respond.Envelope[string] "등록되었습니다."
// @Header       201 {string} Location "/articles/{id}"
// @Failure      400 {object} respond.Envelope[entity.ValidationErrors] "valid error"
// @Failure      500 {object} respond.Envelope[string] "서버 에러"
// @Router       /article [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req artUC.CreateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(w, err)
		return
	}

	id, err := h.Svc.Save(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Location", "/articles/"+strconv.FormatInt(id, 10))
	respond.Message(w, http.StatusCreated, MsgCreated)
}
