package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"marketchat/internal/app/bootstrap"
	chatsvc "marketchat/internal/app/services/chat"
	domainuser "marketchat/internal/domain/user"
	"marketchat/internal/infra/config"
	ginserver "marketchat/internal/infra/http/gin"
	"marketchat/internal/infra/messaging"
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
	logger := obs.NewLogger(cfg.Env, cfg.LogLevel).With("service", "marketchat")

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("marketchat failed", "error", err)
		os.Exit(1)
	}
	logger.Info("marketchat stopped")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	var (
		chat  chatsvc.API
		ready func(context.Context) error
		users domainuser.Repository
	)
	switch cfg.Gateway.Backend {
	case config.BackendGRPC:
		client, err := messaging.NewClient(messaging.Config{Addr: cfg.Gateway.GRPCAddr, CallTimeout: cfg.Gateway.GRPCTimeout}, logger)
		if err != nil {
			return err
		}
		defer client.Close()
		chat, ready = client, client.Ping
		logger.Info("chat core is remote", "addr", cfg.Gateway.GRPCAddr)
	default:
		stores, err := bootstrap.OpenStores(ctx, cfg, logger)
		if err != nil {
			return err
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
		release, err := bootstrap.StartEventWorkers(gctx, g, cfg, stores, logger)
		if err != nil {
			return err
		}
		defer release()
		chat, ready, users = stores.ChatService(cfg, logger), stores.Ready, stores.Users
	}

	accounts, err := bootstrap.OpenAccounts(ctx, cfg, users, logger)
	if err != nil {
		return err
	}
	defer accounts.Close()

	limiter := ginserver.NewKeyedRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst)
	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{Ready: ready}, ginserver.Handlers{
		Auth:           &ginserver.AuthHandler{Service: accounts.Sessions, Logger: logger},
		Chat:           &ginserver.ChatHandler{Chat: chat, Logger: logger},
		AuthMiddleware: ginserver.NewAuthMiddleware(ginserver.AuthMiddleware{Verifier: accounts.Verifier, Logger: logger}),
		SendLimiter:    limiter,
	})

	g.Go(func() error { return limiter.Run(gctx) })
	g.Go(func() error {
		logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "backend", cfg.Gateway.Backend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := bootstrap.ShutdownContext()
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
		return nil
	})
	return g.Wait()
}
