package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	"simple-board/internal/config"
	hhttp "simple-board/internal/handler/http"
	harticle "simple-board/internal/handler/http/article"
	"simple-board/internal/handler/http/requestid"
	"simple-board/internal/infra/worker"
	"simple-board/internal/observability/logging"
	"simple-board/internal/observability/tracing"
	envcfg "simple-board/pkg/config"

	_ "simple-board/docs" // swagger docs
)

// @title           Simple Board API
// @version         1.0
// @description     게시글 등록, 조회, 수정, 삭제 기능을 제공하는 REST API
// @description     모든 응답은 {status, message, result} 형태로 감싸집니다.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", envcfg.GetEnvString("CONFIG_FILE", ""), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	slog.SetDefault(logger)

	shutdownTracing := tracing.Init(cfg.Tracing.ServiceName, cfg.Tracing.SampleRatio)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg.DB, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	scheduler := worker.NewScheduler(logger)
	refresh := worker.RefreshMetricsJob(st.Svc, st.Stats)
	_ = scheduler.RunNow(ctx, refresh)
	if err := scheduler.Add(cfg.Metrics.RefreshSpec, refresh); err != nil {
		return err
	}
	scheduler.Start()

	version := envcfg.GetEnvString("VERSION", "dev")
	handler := hhttp.Chain(setupRoutes(st, version),
		hhttp.CORS(hhttp.DefaultCORSConfig(cfg.HTTP.CORSAllowedOrigins), logger),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.MetricsMiddleware,
		hhttp.Logging(logger),
		hhttp.Recover(logger),
		hhttp.LimitRequestBody(cfg.HTTP.MaxBodyBytes),
	)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout, // Prevent Slowloris attacks
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTP.Addr),
			slog.String("driver", st.Driver),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		if serr := scheduler.Stop(shutdownCtx); serr != nil {
			logger.Warn("scheduler did not stop in time", slog.Any("error", serr))
		}
		if terr := shutdownTracing(shutdownCtx); terr != nil {
			logger.Warn("tracer shutdown failed", slog.Any("error", terr))
		}
		logger.Info("server stopped")
		return err
	})

	return g.Wait()
}

// setupRoutes registers the article API and the operational endpoints.
func setupRoutes(st *store, version string) *http.ServeMux {
	mux := http.NewServeMux()

	harticle.Register(mux, st.Svc)

	mux.Handle("GET    /health", &hhttp.HealthHandler{
		DB:      st.Pinger,
		Stats:   st.Stats,
		Driver:  st.Driver,
		Version: version,
	})
	mux.Handle("GET    /ready", &hhttp.ReadyHandler{DB: st.Pinger})
	mux.Handle("GET    /live", &hhttp.LiveHandler{})
	mux.Handle("GET    /metrics", hhttp.MetricsHandler())
	mux.Handle("GET    /swagger/", httpSwagger.WrapHandler)

	return mux
}
