package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"escrutinio/internal/electoral/handler"
	"escrutinio/internal/electoral/metrics"
	"escrutinio/internal/electoral/seed"
	"escrutinio/internal/electoral/service"
	"escrutinio/internal/electoral/session"
	"escrutinio/internal/electoral/store"
	"escrutinio/internal/platform/config"
	"escrutinio/internal/platform/httpserver"
	"escrutinio/internal/platform/logger"
	"escrutinio/pkg/platform/httputil"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal/electoral.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	data, err := loadSeed(cfg.SeedFile)
	if err != nil {
		return err
	}

	st := store.New(data)
	sessions := session.NewRegistry(session.NewResolver(data.Admins, st))
	svc := service.New(st, sessions,
		service.WithLogger(log),
		service.WithMetrics(metrics.New(prometheus.DefaultRegisterer)),
	)

	router := chi.NewRouter()
	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if cfg.MetricsAddr == "" {
		router.Handle("/metrics", promhttp.Handler())
	}
	handler.New(svc, log).Register(router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	serve(ctx, g, log, "api", cfg, cfg.Addr, router)
	if cfg.MetricsAddr != "" {
		metricsRouter := chi.NewRouter()
		metricsRouter.Handle("/metrics", promhttp.Handler())
		serve(ctx, g, log, "metrics", cfg, cfg.MetricsAddr, metricsRouter)
	}
	return g.Wait()
}

func serve(ctx context.Context, g *errgroup.Group, log *slog.Logger, name string, cfg config.Server, addr string, h http.Handler) {
	g.Go(func() error {
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			return err
		}
		log.Info("listening", "server", name, "addr", ln.Addr().String())
		err = httpserver.Run(ctx, httpserver.New(addr, h), ln, cfg.ShutdownTimeout)
		log.Info("server closed", "server", name)
		return err
	})
}

func loadSeed(path string) (*seed.Data, error) {
	if path == "" {
		return seed.Default()
	}
	return seed.Load(path)
}
