package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"grocery/internal/adapters/out/events"
	"grocery/internal/adapters/out/events/kafka"
	"grocery/internal/adapters/out/events/rabbitmq"
	"grocery/internal/adapters/out/identity"
	"grocery/internal/adapters/out/memory"
	"grocery/internal/adapters/out/postgres"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/clock"

	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

// BuildDependencies connects the adapters selected by cfg. On error every
// adapter opened so far is closed.
func BuildDependencies(ctx context.Context, cfg Config, logger *slog.Logger) (deps Dependencies, err error) {
	deps.Clock = clock.System{}
	deps.Registry = prometheus.NewRegistry()
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	defer func() {
		if err != nil {
			for i := len(deps.Closers) - 1; i >= 0; i-- {
				_ = deps.Closers[i]()
			}
		}
	}()

	if deps.UoWFactory, err = openStorage(ctx, cfg, logger, &deps); err != nil {
		return deps, err
	}

	broker, err := openBroker(ctx, cfg, logger, &deps)
	if err != nil {
		return deps, err
	}
	metrics, err := events.NewMetricsPublisher(deps.Registry)
	if err != nil {
		return deps, err
	}
	deps.Publisher = events.Fanout{broker, metrics}

	if deps.Codes, err = openCodeStore(ctx, cfg, logger, &deps); err != nil {
		return deps, err
	}
	deps.Users = identity.NewMemoryUserDirectory()

	return deps, nil
}

func openStorage(ctx context.Context, cfg Config, logger *slog.Logger, deps *Dependencies) (ports.UnitOfWorkFactory, error) {
	if cfg.Storage == StorageMemory {
		logger.InfoContext(ctx, "Using in-memory storage")
		return memory.NewUnitOfWorkFactory(memory.NewStore()), nil
	}

	if err := ensureDatabase(ctx, cfg); err != nil {
		return nil, err
	}

	db, err := postgres.Open(cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	deps.Closers = append(deps.Closers, sqlDB.Close)

	if err = postgres.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate postgres: %w", err)
	}

	logger.InfoContext(ctx, "Using postgres storage", "host", cfg.DBHost, "db", cfg.DBName)
	return postgres.NewGormUnitOfWorkFactory(db), nil
}

// ensureDatabase creates the configured database when the server does not
// have it yet.
func ensureDatabase(ctx context.Context, cfg Config) error {
	admin := cfg
	admin.DBName = "postgres"

	db, err := sql.Open("postgres", admin.PostgresDSN())
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database %q: %w", cfg.DBName, err)
	}
	if exists {
		return nil
	}

	if _, err = db.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(cfg.DBName)); err != nil {
		return fmt.Errorf("create database %q: %w", cfg.DBName, err)
	}
	return nil
}

func openBroker(ctx context.Context, cfg Config, logger *slog.Logger, deps *Dependencies) (ports.OrderEventPublisher, error) {
	switch cfg.EventBroker {
	case BrokerKafka:
		publisher, err := kafka.NewPublisher(cfg.KafkaHost, cfg.KafkaOrderChangedTopic, logger)
		if err != nil {
			return nil, err
		}
		deps.Closers = append(deps.Closers, publisher.Close)
		logger.InfoContext(ctx, "Publishing order events to kafka", "topic", cfg.KafkaOrderChangedTopic)
		return publisher, nil
	case BrokerRabbitMQ:
		publisher, err := rabbitmq.Dial(ctx, cfg.RabbitMQURL, cfg.RabbitMQExchange, logger)
		if err != nil {
			return nil, err
		}
		deps.Closers = append(deps.Closers, publisher.Close)
		logger.InfoContext(ctx, "Publishing order events to rabbitmq", "exchange", cfg.RabbitMQExchange)
		return publisher, nil
	default:
		return events.NewLogPublisher(logger), nil
	}
}

func openCodeStore(ctx context.Context, cfg Config, logger *slog.Logger, deps *Dependencies) (ports.OTPCodeStore, error) {
	if cfg.RedisAddr == "" {
		return identity.NewMemoryCodeStore(deps.Clock), nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis at %s: %w", cfg.RedisAddr, err)
	}
	deps.Closers = append(deps.Closers, client.Close)

	logger.InfoContext(ctx, "Storing OTP codes in redis", "addr", cfg.RedisAddr)
	return identity.NewRedisCodeStore(client), nil
}
