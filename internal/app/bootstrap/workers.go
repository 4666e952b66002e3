package bootstrap

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	catalogapp "marketchat/internal/app/handlers/catalog"
	"marketchat/internal/infra/broker/kafka"
	"marketchat/internal/infra/config"
	"marketchat/internal/infra/outbox"
)

// StartEventWorkers runs the outbox relay and the listing consumer in g when Kafka brokers
// are configured. The returned func releases the broker clients once g has finished.
func StartEventWorkers(ctx context.Context, g *errgroup.Group, cfg config.Config, stores *Stores, logger *slog.Logger) (func(), error) {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Warn("KAFKA_BROKERS not set; chat events stay in the outbox and listings come from fixtures only")
		return func() {}, nil
	}

	producer, err := kafka.NewProducer(cfg.Kafka.Brokers, "marketchat-outbox")
	if err != nil {
		return nil, err
	}
	worker := &outbox.Worker{
		Queue:       stores.Outbox,
		Producer:    producer,
		Interval:    cfg.Kafka.OutboxPollInterval,
		TopicPrefix: cfg.Kafka.TopicPrefix,
		Backoff:     cfg.Kafka.RetryBackoff,
		Logger:      logger.With("component", "outbox"),
	}

	handler := &catalogapp.ListingEventsHandler{
		Catalog: stores.Catalog,
		Inbox:   stores.Inbox,
		Logger:  logger.With("component", "catalog"),
	}
	consumer, err := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, handler, logger.With("component", "kafka"))
	if err != nil {
		_ = producer.Close()
		return nil, err
	}

	g.Go(func() error { return worker.Run(ctx) })
	g.Go(func() error {
		return consumer.Run(ctx, []string{cfg.Kafka.TopicPrefix + catalogapp.TopicListingEvents})
	})
	logger.Info("event workers started", "brokers", cfg.Kafka.Brokers)
	return func() {
		if err := consumer.Close(); err != nil {
			logger.Warn("kafka consumer close failed", "error", err)
		}
		if err := producer.Close(); err != nil {
			logger.Warn("kafka producer close failed", "error", err)
		}
	}, nil
}
