package article

import "simple-board/internal/domain/entity"

// CreateRequest is the body of an article creation call.
type CreateRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// ToArticle maps the request to a not yet persisted article.
func (r CreateRequest) ToArticle() *entity.Article {
	return &entity.Article{
		Title:   r.Title,
		Content: r.Content,
	}
}

// UpdateRequest is the body of an article update call.
// The handler overwrites ID with the id taken from the path.
type UpdateRequest struct {
	ID      int64  `json:"id"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// ToArticle maps the request to an article carrying an existing id.
func (r UpdateRequest) ToArticle() *entity.Article {
	return &entity.Article{
		ID:      r.ID,
		Title:   r.Title,
		Content: r.Content,
	}
}
