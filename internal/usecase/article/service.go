package article

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"

	"simple-board/internal/domain/entity"
	"simple-board/internal/observability/metrics"
	"simple-board/internal/repository"
)

// Service provides article management use cases.
// Reads go straight to Repo. Writes run inside Tx when it is set,
// otherwise directly against Repo.
type Service struct {
	Repo repository.ArticleRepository
	Tx   repository.Transactor
}

// FindAll returns every article in ascending id order.
// An empty store yields an empty, non-nil slice.
func (s *Service) FindAll(ctx context.Context) (articles []*entity.Article, err error) {
	defer func() { metrics.RecordArticleOperation(metrics.OpList, err, nil) }()

	articles, err = s.Repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find all articles: %w", err)
	}
	if articles == nil {
		articles = []*entity.Article{}
	}
	return articles, nil
}

// FindByID returns ErrArticleNotFound if the article does not exist.
func (s *Service) FindByID(ctx context.Context, id int64) (article *entity.Article, err error) {
	defer func() { metrics.RecordArticleOperation(metrics.OpGet, err, ErrArticleNotFound) }()

	if id <= 0 {
		return nil, ErrArticleNotFound
	}
	article, err = s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Save stores a new article and returns its id.
func (s *Service) Save(ctx context.Context, req CreateRequest) (id int64, err error) {
	defer func() { metrics.RecordArticleOperation(metrics.OpCreate, err, nil) }()

	err = s.withinTx(ctx, func(repo repository.ArticleRepository) error {
		saved, err := repo.Save(ctx, req.ToArticle())
		if err != nil {
			return err
		}
		id = saved.ID
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("create article: %w", err)
	}
	return id, nil
}

// Update overwrites title and content of an existing article and returns its id.
// Returns ErrArticleNotFound without writing anything if the id does not exist.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (id int64, err error) {
	defer func() { metrics.RecordArticleOperation(metrics.OpUpdate, err, ErrArticleNotFound) }()

	if req.ID <= 0 {
		return 0, ErrArticleNotFound
	}

	err = s.withinTx(ctx, func(repo repository.ArticleRepository) error {
		exists, err := repo.ExistsByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrArticleNotFound
		}
		saved, err := repo.Save(ctx, req.ToArticle())
		if errors.Is(err, entity.ErrNotFound) {
			return ErrArticleNotFound
		}
		if err != nil {
			return err
		}
		id = saved.ID
		return nil
	})
	if errors.Is(err, ErrArticleNotFound) {
		return 0, ErrArticleNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("update article: %w", err)
	}
	return id, nil
}

// DeleteOne removes an article. Deleting a missing id is not an error.
func (s *Service) DeleteOne(ctx context.Context, id int64) (err error) {
	defer func() { metrics.RecordArticleOperation(metrics.OpDelete, err, nil) }()

	err = s.withinTx(ctx, func(repo repository.ArticleRepository) error {
		return repo.DeleteByID(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// DeleteMany removes every article in ids with one batch statement.
// Duplicates are collapsed and missing ids are ignored. An empty set is a no-op.
func (s *Service) DeleteMany(ctx context.Context, ids []int64) (err error) {
	defer func() { metrics.RecordArticleOperation(metrics.OpDeleteMany, err, nil) }()

	unique := lo.Uniq(ids)
	if len(unique) == 0 {
		return nil
	}

	err = s.withinTx(ctx, func(repo repository.ArticleRepository) error {
		return repo.DeleteAllByIDInBatch(ctx, unique)
	})
	if err != nil {
		return fmt.Errorf("delete articles: %w", err)
	}
	return nil
}

// Count returns the number of stored articles.
func (s *Service) Count(ctx context.Context) (int64, error) {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return n, nil
}

func (s *Service) withinTx(ctx context.Context, fn func(repo repository.ArticleRepository) error) error {
	if s.Tx == nil {
		return fn(s.Repo)
	}
	return s.Tx.WithinTx(ctx, fn)
}
