package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"connectrpc.com/connect"
	"github.com/joho/godotenv"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/tiptop/internal/config"
	"github.com/mmynk/tiptop/internal/metrics"
	"github.com/mmynk/tiptop/internal/middleware"
	"github.com/mmynk/tiptop/internal/service"
	"github.com/mmynk/tiptop/internal/storage/memory"
	"github.com/mmynk/tiptop/internal/web"
	"github.com/mmynk/tiptop/pkg/api"
	"github.com/mmynk/tiptop/pkg/logging"
)

func main() {
	// A missing .env is fine; the environment wins either way
	_ = godotenv.Load()

	cfg := config.Load()
	logging.SetupWithOptions(logging.Options{
		Level: logging.ParseLevel(cfg.LogLevel),
		JSON:  strings.EqualFold(cfg.LogFormat, "json"),
	})
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	store := memory.New(memory.WithMaxSessions(cfg.MaxSessions))
	defer store.Close()
	m := metrics.New()

	mux := http.NewServeMux()

	// Register Connect service
	interceptors := connect.WithInterceptors(middleware.MetricsInterceptor(m), middleware.LoggingInterceptor())
	tipPath, tipHandler := api.NewTipServiceHandler(service.NewTipService(store, m), interceptors)
	mux.Handle(tipPath, tipHandler)

	// Server-rendered widget
	widget, err := web.NewHandler(m)
	if err != nil {
		slog.Error("Failed to initialize widget", "error", err)
		os.Exit(1)
	}
	mux.Handle("/", widget)

	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Add logging and CORS middleware, then h2c for HTTP/2 without TLS
	handler := h2c.NewHandler(middleware.HTTPLogging(middleware.CORS(mux)), &http2.Server{})

	srv := &http.Server{
		Addr:           cfg.Addr(),
		Handler:        handler,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		MaxHeaderBytes: 1 << 16,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("TipTop server starting", "address", srv.Addr, "url", "http://localhost"+srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return service.NewSweeper(store, m, cfg.SessionTTL).Run(gctx, cfg.SweepInterval)
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped gracefully")
}
