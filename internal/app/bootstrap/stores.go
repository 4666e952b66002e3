package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	catalogapp "marketchat/internal/app/handlers/catalog"
	"marketchat/internal/app/idempotency"
	chatsvc "marketchat/internal/app/services/chat"
	appoutbox "marketchat/internal/app/outbox"
	"marketchat/internal/domain/catalog"
	domainchat "marketchat/internal/domain/chat"
	domainuser "marketchat/internal/domain/user"
	"marketchat/internal/infra/config"
	"marketchat/internal/infra/db/mongo"
	"marketchat/internal/infra/db/scylla"
	"marketchat/internal/infra/storage/memory"
)

// outboxQueue is an outbox that a relay worker can also drain.
type outboxQueue interface {
	appoutbox.Outbox
	appoutbox.Queue
}

// Stores is the persistence selected by STORE_DRIVER. Scylla keeps the chat itself; the
// outbox, inbox, idempotency and catalog collections live in Mongo when MONGO_URI is set
// and in memory otherwise.
type Stores struct {
	Chat        domainchat.Store
	Outbox      outboxQueue
	Idempotency idempotency.Store
	Catalog     catalog.Catalog
	Inbox       catalogapp.Inbox
	Users       domainuser.Repository

	closers []func(context.Context) error
}

func OpenStores(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Stores, error) {
	s := &Stores{}
	switch cfg.StoreDriver {
	case config.StoreMemory:
		s.Chat = memory.NewChatStore()
	case config.StoreScylla:
		session, err := scylla.NewSession(ctx, cfg.Scylla, logger)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func(context.Context) error { session.Close(); return nil })
		s.Chat = scylla.NewChatStore(session, cfg.Scylla.PollInterval, logger)
	}

	if cfg.StoreDriver == config.StoreMongo || (cfg.StoreDriver == config.StoreScylla && cfg.Mongo.URI != "") {
		if err := s.openMongo(ctx, cfg, logger); err != nil {
			_ = s.Close(context.Background())
			return nil, err
		}
	} else {
		s.Outbox = memory.NewOutbox()
		s.Idempotency = memory.NewIdempotencyStore(cfg.IdempotencyTTL)
		s.Catalog = memory.NewCatalog()
		s.Inbox = memory.NewInbox()
		s.Users = memory.NewUserRepository()
	}
	logger.Info("stores ready", "driver", cfg.StoreDriver)
	return s, nil
}

func (s *Stores) openMongo(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	client, err := mongo.New(ctx, cfg.Mongo.URI, cfg.Mongo.DB)
	if err != nil {
		return err
	}
	s.closers = append(s.closers, client.Close)
	db := client.DB

	if s.Chat == nil {
		chat, err := mongo.NewChatStore(ctx, db)
		if err != nil {
			return err
		}
		s.Chat = chat
	}
	if s.Outbox, err = mongo.NewOutboxStore(ctx, db); err != nil {
		return err
	}
	if s.Idempotency, err = mongo.NewIdempotencyStore(ctx, db, cfg.IdempotencyTTL); err != nil {
		return err
	}
	if s.Inbox, err = mongo.NewInboxStore(ctx, db, cfg.Kafka.GroupID); err != nil {
		return err
	}
	if s.Users, err = mongo.NewUserRepository(ctx, db); err != nil {
		return err
	}
	s.Catalog = mongo.NewCatalogStore(db)
	logger.Info("mongo connected", "db", cfg.Mongo.DB)
	return nil
}

func (s *Stores) Close(ctx context.Context) error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i](ctx))
	}
	s.closers = nil
	return errors.Join(errs...)
}

// Ready pings the chat store for readiness checks.
func (s *Stores) Ready(ctx context.Context) error {
	if s.Chat == nil {
		return fmt.Errorf("chat store not configured")
	}
	return s.Chat.Ping(ctx)
}

// shutdownTimeout bounds closing connections after the servers stop.
const shutdownTimeout = 5 * time.Second

func ShutdownContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), shutdownTimeout)
}

// ChatService assembles the chat core over the opened stores.
func (s *Stores) ChatService(cfg config.Config, logger *slog.Logger) *chatsvc.Service {
	return &chatsvc.Service{
		Store:       s.Chat,
		Catalog:     s.Catalog,
		Outbox:      s.Outbox,
		Encoder:     appoutbox.JSONEventEncoder{},
		Idempotency: s.Idempotency,
		Limits: chatsvc.Limits{
			MaxMessageLength: cfg.Chat.MaxMessageLength,
			WindowSize:       cfg.Chat.WindowSize,
			PageSize:         cfg.Chat.PageSize,
			MaxPageSize:      cfg.Chat.MaxPageSize,
		},
		Logger: logger.With("component", "chat"),
	}
}
