package article

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"simple-board/internal/domain/entity"
	"simple-board/internal/handler/http/pathutil"
	"simple-board/internal/handler/http/respond"
	artUC "simple-board/internal/usecase/article"
)

// Envelope messages.
const (
	MsgList        = "article 전체 조회"
	MsgCreated     = "등록되었습니다."
	MsgUpdated     = "수정되었습니다."
	MsgNotFound    = "잘못된 게시글 번호입니다."
	MsgValidError  = "valid error"
	MsgInvalidBody = "invalid request body"
)

// MsgGet returns the message for a single article lookup.
func MsgGet(id int64) string {
	return fmt.Sprintf("article %d 조회", id)
}

var errMalformedBody = errors.New("malformed request body")

// decodeBody reads one JSON value from the request body into v.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", errMalformedBody, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("%w: trailing data", errMalformedBody)
	}
	return nil
}

// writeError translates err into the envelope. Validation failures carry the
// field list; unknown ids and malformed ids share the not-found message.
func writeError(w http.ResponseWriter, err error) {
	var verrs entity.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		respond.Failure(w, http.StatusBadRequest, MsgValidError, verrs.Sorted())
	case errors.Is(err, artUC.ErrArticleNotFound), errors.Is(err, pathutil.ErrInvalidID):
		respond.Fail(w, http.StatusBadRequest, MsgNotFound)
	case errors.Is(err, errMalformedBody):
		respond.Fail(w, http.StatusBadRequest, MsgInvalidBody)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
