package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/xtding233/cricket-sim/internal/config"
	"github.com/xtding233/cricket-sim/internal/service"
	"github.com/xtding233/cricket-sim/internal/tables"
	"github.com/xtding233/cricket-sim/internal/transport/grpcapi"
	"github.com/xtding233/cricket-sim/internal/transport/httpapi"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	store, err := tables.NewStore(tables.NewLoader(cfg.TablesDir), cfg.Competition, logger)
	if err != nil {
		return err
	}
	if err := store.Watch(cfg.ReloadInterval); err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("Error stopping tables watcher", "error", err)
		}
	}()
	logger.Info("tables loaded", "dir", cfg.TablesDir, "competition", cfg.Competition, "version", store.Rules().Version)

	svc := service.New(store, cfg.Workers, logger)

	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(grpcapi.RecoverUnary(logger)))
	grpcapi.Register(gs, grpcapi.NewServer(svc, logger))
	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return err
	}

	hs := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.New(svc, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("grpc listening", "addr", lis.Addr().String())
		return gs.Serve(lis)
	})
	g.Go(func() error {
		logger.Info("http listening", "addr", cfg.HTTPAddr)
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		gs.GracefulStop()
		return hs.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
