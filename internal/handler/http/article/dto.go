// Package article provides HTTP handlers for article-related endpoints.
// It includes handlers for listing, fetching, creating, updating, and deleting articles.
package article

import (
	"strconv"
	"time"

	"github.com/samber/lo"

	"simple-board/internal/domain/entity"
)

// LocalDateTimeLayout renders wall-clock time without a zone offset.
// Trailing zero fractions are dropped.
const LocalDateTimeLayout = "2006-01-02T15:04:05.999999999"

// LocalDateTime is a time encoded as a zone-less ISO-8601 date-time.
type LocalDateTime time.Time

// MarshalJSON implements json.Marshaler.
func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(time.Time(t).Format(LocalDateTimeLayout))), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *LocalDateTime) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	parsed, err := time.Parse(LocalDateTimeLayout, s)
	if err != nil {
		return err
	}
	*t = LocalDateTime(parsed)
	return nil
}

// Time returns the underlying time.
func (t LocalDateTime) Time() time.Time { return time.Time(t) }

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID         int64         `json:"id" example:"1"`
	Title      string        `json:"title" example:"첫 번째 글"`
	Content    string        `json:"content" example:"안녕하세요"`
	CreatedAt  LocalDateTime `json:"createdAt" swaggertype:"string" example:"2025-10-26T12:00:00.123456"`
	ModifiedAt LocalDateTime `json:"modifiedAt" swaggertype:"string" example:"2025-10-26T12:00:00.123456"`
}

// FromEntity maps a stored article to its wire form.
func FromEntity(a *entity.Article) DTO {
	return DTO{
		ID:         a.ID,
		Title:      a.Title,
		Content:    a.Content,
		CreatedAt:  LocalDateTime(a.CreatedAt),
		ModifiedAt: LocalDateTime(a.ModifiedAt),
	}
}

// FromEntities maps a list, returning an empty non-nil slice for no input.
func FromEntities(articles []*entity.Article) []DTO {
	return lo.Map(articles, func(a *entity.Article, _ int) DTO {
		return FromEntity(a)
	})
}
