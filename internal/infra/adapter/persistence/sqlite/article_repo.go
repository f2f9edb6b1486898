// Package sqlite provides a GORM-backed SQLite implementation of the article repository.
// It is meant for single-node deployments and local development where running
// PostgreSQL is not worth it.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"simple-board/internal/domain/entity"
	"simple-board/internal/repository"
)

// articleModel is the GORM row shape. Timestamps are written by Save, so GORM's
// automatic time tracking is switched off.
type articleModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Title      string    `gorm:"not null"`
	Content    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime:false"`
	ModifiedAt time.Time `gorm:"not null"`
}

func (articleModel) TableName() string {
	return "articles"
}

func (m *articleModel) toEntity() *entity.Article {
	return &entity.Article{
		ID:         m.ID,
		Title:      m.Title,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
		ModifiedAt: m.ModifiedAt,
	}
}

// Clock returns the timestamp written on insert and update.
type Clock func() time.Time

// ArticleRepo implements repository.ArticleRepository with GORM.
type ArticleRepo struct {
	db  *gorm.DB
	now Clock
}

// NewArticleRepo creates a new SQLite-backed article repository.
func NewArticleRepo(db *gorm.DB) repository.ArticleRepository {
	return NewArticleRepoWithClock(db, time.Now)
}

// NewArticleRepoWithClock is NewArticleRepo with an injectable clock.
func NewArticleRepoWithClock(db *gorm.DB, now Clock) *ArticleRepo {
	if now == nil {
		now = time.Now
	}
	return &ArticleRepo{db: db, now: now}
}

// FindAll retrieves all articles ordered by id.
func (repo *ArticleRepo) FindAll(ctx context.Context) ([]*entity.Article, error) {
	var rows []articleModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("FindAll: %w", err)
	}
	articles := make([]*entity.Article, 0, len(rows))
	for i := range rows {
		articles = append(articles, rows[i].toEntity())
	}
	return articles, nil
}

// FindByID returns (nil, nil) when the row does not exist.
func (repo *ArticleRepo) FindByID(ctx context.Context, id int64) (*entity.Article, error) {
	var row articleModel
	err := repo.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("FindByID: %w", err)
	}
	return row.toEntity(), nil
}

// ExistsByID reports whether a row with id exists.
func (repo *ArticleRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&articleModel{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("ExistsByID: %w", err)
	}
	return count > 0, nil
}

// Save inserts a new row or overwrites title, content and modified_at of an existing one.
func (repo *ArticleRepo) Save(ctx context.Context, article *entity.Article) (*entity.Article, error) {
	if err := article.Validate(); err != nil {
		return nil, fmt.Errorf("Save: %w", err)
	}
	now := repo.now()
	db := repo.db.WithContext(ctx)

	if article.IsNew() {
		row := articleModel{
			Title:      article.Title,
			Content:    article.Content,
			CreatedAt:  now,
			ModifiedAt: now,
		}
		if err := db.Create(&row).Error; err != nil {
			return nil, fmt.Errorf("Save: insert: %w", err)
		}
		return row.toEntity(), nil
	}

	res := db.Model(&articleModel{}).
		Where("id = ?", article.ID).
		Updates(map[string]interface{}{
			"title":       article.Title,
			"content":     article.Content,
			"modified_at": now,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("Save: update: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("Save: update id=%d: %w", article.ID, entity.ErrNotFound)
	}

	var row articleModel
	if err := db.First(&row, article.ID).Error; err != nil {
		return nil, fmt.Errorf("Save: reload: %w", err)
	}
	return row.toEntity(), nil
}

// DeleteByID removes the row if present.
func (repo *ArticleRepo) DeleteByID(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).Delete(&articleModel{}, id).Error; err != nil {
		return fmt.Errorf("DeleteByID: %w", err)
	}
	return nil
}

// DeleteAllByIDInBatch removes all rows whose id is in ids with a single statement.
func (repo *ArticleRepo) DeleteAllByIDInBatch(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Delete(&articleModel{}).Error; err != nil {
		return fmt.Errorf("DeleteAllByIDInBatch: %w", err)
	}
	return nil
}

// Count returns the number of stored articles.
func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&articleModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}
