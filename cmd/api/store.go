package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"simple-board/internal/config"
	hhttp "simple-board/internal/handler/http"
	"simple-board/internal/infra/adapter/persistence/memory"
	pgRepo "simple-board/internal/infra/adapter/persistence/postgres"
	sqliteRepo "simple-board/internal/infra/adapter/persistence/sqlite"
	"simple-board/internal/infra/db"
	"simple-board/internal/resilience/circuitbreaker"
	artUC "simple-board/internal/usecase/article"
)

// store bundles the service with what the probes and the metrics job need
// from the backing database.
type store struct {
	Svc    *artUC.Service
	Pinger hhttp.Pinger
	Stats  func() sql.DBStats
	Driver string
	close  func() error
}

func (s *store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// openStore opens and migrates the configured driver.
func openStore(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) (*store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, logger)
	case config.DriverSQLite:
		return openSQLite(cfg, logger)
	case config.DriverMemory:
		logger.Warn("using in-memory store, data is lost on restart")
		mem := memory.New()
		return &store{Svc: &artUC.Service{Repo: mem, Tx: mem}, Driver: cfg.Driver}, nil
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.Driver)
	}
}

func openPostgres(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) (*store, error) {
	database, err := db.Open(ctx, cfg.DSN, db.ConnectionConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.MigrateUp(ctx, database); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("migrate postgres: %w", err)
	}

	// Writes run in transactions on the raw pool; only the read path goes
	// through the breaker.
	var conn pgRepo.DBTX = database
	if cfg.CircuitBreaker {
		conn = circuitbreaker.NewDBCircuitBreaker(database)
		logger.Info("database circuit breaker enabled")
	}

	return &store{
		Svc: &artUC.Service{
			Repo: pgRepo.NewArticleRepo(conn),
			Tx:   pgRepo.NewTxManager(database),
		},
		Pinger: database,
		Stats:  database.Stats,
		Driver: cfg.Driver,
		close:  database.Close,
	}, nil
}

func openSQLite(cfg config.DBConfig, logger *slog.Logger) (*store, error) {
	gdb, err := sqliteRepo.Open(cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	if err := sqliteRepo.Migrate(gdb); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	return &store{
		Svc: &artUC.Service{
			Repo: sqliteRepo.NewArticleRepo(gdb),
			Tx:   sqliteRepo.NewTxManager(gdb),
		},
		Pinger: sqlDB,
		Stats:  sqlDB.Stats,
		Driver: cfg.Driver,
		close:  sqlDB.Close,
	}, nil
}
