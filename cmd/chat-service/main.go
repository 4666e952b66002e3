package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"marketchat/internal/app/bootstrap"
	"marketchat/internal/infra/config"
	grpcserver "marketchat/internal/infra/grpc"
	"marketchat/internal/infra/grpc/chatv1"
	"marketchat/internal/infra/obs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.LoadDotEnv(); err != nil {
		obs.NewLogger("dev", "info").Warn("dotenv load failed", "error", err)
	}
	cfg, err := config.Load()
	if err != nil {
		obs.NewLogger("dev", "info").Error("config load failed", "error", err)
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.Env, cfg.LogLevel).With("service", "chat-service")

	stores, err := bootstrap.OpenStores(ctx, cfg, logger)
	if err != nil {
		logger.Error("store init failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := bootstrap.ShutdownContext()
		defer cancel()
		if err := stores.Close(shutdownCtx); err != nil {
			logger.Error("store close failed", "error", err)
		}
	}()
	if _, err := bootstrap.LoadListingFixtures(ctx, cfg.ListingsFixtures, stores.Catalog, logger); err != nil {
		logger.Warn("listing fixtures load failed", "error", err)
	}

	accounts, err := bootstrap.OpenAccounts(ctx, cfg, stores.Users, logger)
	if err != nil {
		logger.Error("auth init failed", "error", err)
		os.Exit(1)
	}
	defer accounts.Close()

	chat := stores.ChatService(cfg, logger)
	grpcSrv, health := grpcserver.New(
		&grpcserver.Server{Chat: chat, Logger: logger},
		grpcserver.Authenticator{Verifier: accounts.Verifier, Logger: logger},
		logger,
	)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "error", err, "addr", cfg.GRPCAddr)
		os.Exit(1)
	}

	g, gctx := errgroup.WithContext(ctx)
	releaseWorkers, err := bootstrap.StartEventWorkers(gctx, g, cfg, stores, logger)
	if err != nil {
		logger.Error("event workers init failed", "error", err)
		os.Exit(1)
	}
	defer releaseWorkers()

	g.Go(func() error {
		logger.Info("chat-service starting", "addr", cfg.GRPCAddr, "env", cfg.Env, "store", cfg.StoreDriver)
		if err := grpcSrv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down grpc server")
		health.Shutdown()
		grpcSrv.GracefulStop()
		return nil
	})
	g.Go(func() error {
		return watchReadiness(gctx, stores, health, logger)
	})

	if err := g.Wait(); err != nil {
		logger.Error("chat-service failed", "error", err)
		os.Exit(1)
	}
	logger.Info("chat-service stopped")
}

// watchReadiness mirrors store reachability into the gRPC health service.
func watchReadiness(ctx context.Context, stores *bootstrap.Stores, health interface {
	SetServingStatus(string, healthpb.HealthCheckResponse_ServingStatus)
}, logger *slog.Logger) error {
	ticker := time.NewTicker(readinessInterval)
	defer ticker.Stop()
	serving := true
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		pingCtx, cancel := context.WithTimeout(ctx, readinessInterval/2)
		err := stores.Ready(pingCtx)
		cancel()
		if (err == nil) == serving {
			continue
		}
		serving = err == nil
		status := healthpb.HealthCheckResponse_SERVING
		if !serving {
			status = healthpb.HealthCheckResponse_NOT_SERVING
			logger.Warn("store unreachable, reporting not serving", "error", err)
		} else {
			logger.Info("store reachable again")
		}
		health.SetServingStatus("", status)
		health.SetServingStatus(chatv1.ServiceName, status)
	}
}

const readinessInterval = 10 * time.Second
