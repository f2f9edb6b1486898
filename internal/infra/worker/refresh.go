package worker

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"simple-board/internal/observability/metrics"
)

// ArticleCounter is satisfied by the article service and every repository.
type ArticleCounter interface {
	Count(ctx context.Context) (int64, error)
}

// RefreshMetricsJob returns the job that keeps the articles_total gauge and,
// when stats is non-nil, the connection pool gauges current.
func RefreshMetricsJob(counter ArticleCounter, stats func() sql.DBStats) Job {
	return Job{
		Name:    "refresh_article_metrics",
		Timeout: 10 * time.Second,
		Run: func(ctx context.Context) error {
			if stats != nil {
				metrics.RecordDBPoolStats(stats())
			}
			n, err := counter.Count(ctx)
			if err != nil {
				return fmt.Errorf("count articles: %w", err)
			}
			metrics.UpdateArticlesTotal(n)
			return nil
		},
	}
}
