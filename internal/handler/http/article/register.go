package article

import (
	"net/http"

	"simple-board/internal/handler/http/validate"
	artUC "simple-board/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
// Creation lives at the singular /article; everything else under /articles.
func Register(mux *http.ServeMux, svc *artUC.Service) {
	v := validate.New()

	mux.Handle("GET    /articles", ListHandler{Svc: svc})
	mux.Handle("GET    /articles/", GetHandler{Svc: svc})

	mux.Handle("POST   /article", CreateHandler{Svc: svc, Validator: v})
	mux.Handle("PUT    /articles/", UpdateHandler{Svc: svc, Validator: v})
	mux.Handle("DELETE /articles/", DeleteHandler{Svc: svc})
	mux.Handle("DELETE /articles", DeleteManyHandler{Svc: svc})
}
